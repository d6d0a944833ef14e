package utils

import (
    "os"
    "time"

    "github.com/golang-jwt/jwt/v5"
)

// GenerateJWT issues a short-lived access token. Session longevity comes from
// the refresh flow, not from this token.
func GenerateJWT(userID uint, email string) (string, error) {
    token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
        "userId": userID,
        "email":  email,
        "exp":    time.Now().Add(time.Hour).Unix(),
    })

    return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
