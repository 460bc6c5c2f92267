package models

import "gorm.io/gorm"

// User represents an account on the platform.
type User struct {
	gorm.Model
	FullName         string `gorm:"size:255;not null"`
	Email            string `gorm:"size:255;unique;not null"`
	PasswordHash     string `gorm:"size:255;not null"`
	Bio              string `gorm:"type:text"`
	ProfilePic       string `gorm:"size:512"`
	NativeLanguage   string `gorm:"size:64"`
	LearningLanguage string `gorm:"size:64"`
	Location         string `gorm:"size:255"`

	// IsOnboarded flips to true once the profile form has been completed.
	// Only onboarded users show up in partner recommendations.
	IsOnboarded bool `gorm:"not null;default:false"`
}
