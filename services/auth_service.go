package services

import (
	"errors"
	"time"

	"backend/config"
	"backend/models"
	"backend/utils"

	"github.com/google/uuid"
)

const refreshTokenTTL = 30 * 24 * time.Hour

var ErrInvalidSession = errors.New("invalid or expired session")

func RegisterUser(email, password, fullName string) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:    email,
		Password: hashedPassword,
		FullName: fullName,
	}

	return config.DB.Create(&user).Error
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

// AuthenticateUser checks credentials and, on success, returns a short-lived
// access token plus an opaque refresh token the client stores for silent
// session restore.
func AuthenticateUser(email, password string) (accessToken, refreshToken string, err error) {
	user, err := FindUserByEmail(email)
	if err != nil || !utils.CheckPasswordHash(password, user.Password) {
		return "", "", errors.New("invalid email or password")
	}

	accessToken, err = utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = issueSession(user.ID)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

// RestoreSession exchanges a refresh token for a new access token, rotating
// the refresh token. One attempt only: any failure invalidates nothing on
// the client beyond routing it back to login.
func RestoreSession(refreshToken string) (accessToken, newRefreshToken string, err error) {
	hash := utils.HashToken(refreshToken)

	var sess models.RefreshSession
	if err := config.DB.Where("token_hash = ?", hash).First(&sess).Error; err != nil {
		return "", "", ErrInvalidSession
	}
	if time.Now().After(sess.ExpiresAt) {
		config.DB.Delete(&sess)
		return "", "", ErrInvalidSession
	}

	var user models.User
	if err := config.DB.First(&user, sess.UserID).Error; err != nil {
		return "", "", ErrInvalidSession
	}

	accessToken, err = utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return "", "", err
	}

	// rotate: the presented token is spent either way
	config.DB.Delete(&sess)
	newRefreshToken, err = issueSession(user.ID)
	if err != nil {
		return "", "", err
	}
	return accessToken, newRefreshToken, nil
}

func RevokeSession(refreshToken string) error {
	return config.DB.
		Where("token_hash = ?", utils.HashToken(refreshToken)).
		Delete(&models.RefreshSession{}).Error
}

func issueSession(userID uint) (string, error) {
	token := uuid.NewString()
	sess := models.RefreshSession{
		UserID:    userID,
		TokenHash: utils.HashToken(token),
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := config.DB.Create(&sess).Error; err != nil {
		return "", err
	}
	return token, nil
}
