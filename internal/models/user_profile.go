package models

import "time"

const DefaultSkillLevel = "Intermediate"

type UserProfile struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	FullName string `json:"name" gorm:"type:varchar(255);not null"`
	Email    string `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`

	// Password holds a bcrypt hash, or a legacy plaintext credential that is
	// rewritten as a hash on the next successful login.
	Password string `json:"-" gorm:"type:text;not null"`

	DateOfBirth *string    `json:"dateOfBirth,omitempty" gorm:"type:varchar(32)"`
	Gender      *string    `json:"gender,omitempty" gorm:"type:varchar(32)"`
	Position    *string    `json:"position,omitempty" gorm:"type:varchar(64)"`
	SkillLevel  string     `json:"skillLevel" gorm:"type:varchar(32);not null;default:'Intermediate'"`
	AvatarPath  *string    `json:"avatarPath,omitempty" gorm:"type:text"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	Favorites   []Favorite `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
