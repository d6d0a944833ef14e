package services

import (
	"errors"
	"strings"

	"backend/config"
	"backend/models"
	"backend/utils"
)

type ProfileInput struct {
	FullName       string `json:"full_name"`
	ProfilePicture string `json:"profile_picture"` // data-URI base64 image, uploaded on change
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}

	return map[string]interface{}{
		"id":              user.ID,
		"email":           user.Email,
		"full_name":       user.FullName,
		"profile_picture": user.ProfilePicture,
		"member_since":    user.CreatedAt.Format("2006-01-02"),
	}, nil
}

func UpdateUserProfile(userID uint, input ProfileInput) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return errors.New("user not found")
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if strings.HasPrefix(input.ProfilePicture, "data:") {
		url, err := utils.UploadBase64Image(input.ProfilePicture, "profile-pictures")
		if err != nil {
			return err
		}
		user.ProfilePicture = url
	}

	return config.DB.Save(&user).Error
}
