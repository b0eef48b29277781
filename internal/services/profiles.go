package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/courtlab/backend/internal/models"
	"github.com/courtlab/backend/pkg/logger"
	"github.com/courtlab/backend/pkg/utils"
	"gorm.io/gorm"
)

type ProfileService struct {
	DB *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{DB: db}
}

// ProfilePayload carries the client-writable profile fields. Nil pointers mean
// "not present" so partial updates only touch what the client sent.
type ProfilePayload struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Password    *string `json:"password"`
	DateOfBirth *string `json:"dateOfBirth"`
	Gender      *string `json:"gender"`
	Position    *string `json:"position"`
	SkillLevel  *string `json:"skillLevel"`
}

func (p ProfilePayload) name() string {
	if p.Name == nil {
		return ""
	}
	return strings.TrimSpace(*p.Name)
}

func (p ProfilePayload) email() string {
	if p.Email == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(*p.Email))
}

func (p ProfilePayload) password() string {
	if p.Password == nil {
		return ""
	}
	return *p.Password
}

func (s *ProfileService) Create(payload ProfilePayload) (*models.UserProfile, error) {
	var missing []string
	if payload.name() == "" {
		missing = append(missing, "name")
	}
	if payload.email() == "" {
		missing = append(missing, "email")
	}
	if payload.password() == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Message: fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", "))}
	}

	email := payload.email()

	var existing models.UserProfile
	if err := s.DB.First(&existing, "email = ?", email).Error; err == nil {
		return nil, newEmailConflict()
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(payload.password())
	if err != nil {
		return nil, err
	}

	skillLevel := models.DefaultSkillLevel
	if payload.SkillLevel != nil && strings.TrimSpace(*payload.SkillLevel) != "" {
		skillLevel = strings.TrimSpace(*payload.SkillLevel)
	}

	profile := models.UserProfile{
		FullName:    payload.name(),
		Email:       email,
		Password:    hash,
		DateOfBirth: payload.DateOfBirth,
		Gender:      payload.Gender,
		Position:    payload.Position,
		SkillLevel:  skillLevel,
	}

	if err := s.DB.Create(&profile).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, newEmailConflict()
		}
		return nil, err
	}

	return &profile, nil
}

func (s *ProfileService) GetByID(id uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.DB.First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// GetByEmailWithCredentials returns the profile including the stored password.
// Authentication use only; everything else goes through GetByID.
func (s *ProfileService) GetByEmailWithCredentials(email string) (*models.UserProfile, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var profile models.UserProfile
	if err := s.DB.First(&profile, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (s *ProfileService) Update(id uint, payload ProfilePayload) (*models.UserProfile, error) {
	updates := map[string]interface{}{}

	if payload.Name != nil {
		value := strings.TrimSpace(*payload.Name)
		if value == "" {
			return nil, &ValidationError{Message: "name cannot be empty"}
		}
		updates["full_name"] = value
	}
	if payload.Email != nil {
		value := strings.ToLower(strings.TrimSpace(*payload.Email))
		if value == "" {
			return nil, &ValidationError{Message: "email cannot be empty"}
		}
		var existing models.UserProfile
		if err := s.DB.First(&existing, "email = ? AND id <> ?", value, id).Error; err == nil {
			return nil, newEmailConflict()
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		updates["email"] = value
	}
	if payload.Password != nil && *payload.Password != "" {
		hash, err := utils.HashPassword(*payload.Password)
		if err != nil {
			return nil, err
		}
		updates["password"] = hash
	}
	if payload.DateOfBirth != nil {
		updates["date_of_birth"] = *payload.DateOfBirth
	}
	if payload.Gender != nil {
		updates["gender"] = *payload.Gender
	}
	if payload.Position != nil {
		updates["position"] = *payload.Position
	}
	if payload.SkillLevel != nil && strings.TrimSpace(*payload.SkillLevel) != "" {
		updates["skill_level"] = strings.TrimSpace(*payload.SkillLevel)
	}

	// A payload with no recognized fields reads back the current profile.
	if len(updates) == 0 {
		return s.GetByID(id)
	}

	result := s.DB.Model(&models.UserProfile{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return nil, newEmailConflict()
		}
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	return s.GetByID(id)
}

func (s *ProfileService) GetAvatar(id uint) (string, error) {
	profile, err := s.GetByID(id)
	if err != nil {
		return "", err
	}
	if profile.AvatarPath == nil {
		return "", nil
	}
	return *profile.AvatarPath, nil
}

func (s *ProfileService) SetAvatar(id uint, path string) error {
	var value interface{}
	if path != "" {
		value = path
	}

	result := s.DB.Model(&models.UserProfile{}).Where("id = ?", id).Update("avatar_path", value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// VerifyCredentials authenticates an email/password pair. Unknown email and
// wrong password both return ErrInvalidCredentials so callers cannot tell the
// cases apart. A legacy plaintext credential that matches exactly is accepted
// and rewritten as a bcrypt hash; the login succeeds even if that rewrite
// fails.
func (s *ProfileService) VerifyCredentials(email, password string) (*models.UserProfile, error) {
	profile, err := s.GetByEmailWithCredentials(email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if utils.IsBcryptHash(profile.Password) {
		if !utils.CheckPassword(password, profile.Password) {
			return nil, ErrInvalidCredentials
		}
		return profile, nil
	}

	if profile.Password != password {
		return nil, ErrInvalidCredentials
	}

	if hash, hashErr := utils.HashPassword(password); hashErr == nil {
		if updateErr := s.DB.Model(&models.UserProfile{}).Where("id = ?", profile.ID).Update("password", hash).Error; updateErr != nil {
			logger.ErrorWithProfile(fmt.Sprint(profile.ID), "legacy_password_upgrade_failed", updateErr, nil)
		} else {
			profile.Password = hash
			logger.InfoWithProfile(fmt.Sprint(profile.ID), "legacy_password_upgraded", nil)
		}
	}

	return profile, nil
}
