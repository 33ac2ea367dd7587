package services

import (
	"errors"

	"gorm.io/gorm"

	"nutrifind/models"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}

	var savedCount int64
	s.db.Model(&models.SavedRecord{}).Where("user_id = ?", userID).Count(&savedCount)

	return map[string]interface{}{
		"id":            user.ID,
		"email":         user.Email,
		"full_name":     user.FullName,
		"saved_records": savedCount,
		"member_since":  user.CreatedAt.Format("2006-01-02"),
	}, nil
}

func (s *UserService) UpdateProfile(userID uint, fullName string) error {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return errors.New("user not found")
	}
	user.FullName = fullName
	return s.db.Save(&user).Error
}
