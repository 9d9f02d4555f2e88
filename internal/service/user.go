package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/bhojanbuddy/backend/internal/models"
	"github.com/bhojanbuddy/backend/internal/types"
)

// UserService handles profile reads and partial updates.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Get returns a user by id. Any authenticated caller may look up any
// profile; absence fails with ErrUserNotFound.
func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Update applies the non-nil fields of the patch to the user. An email
// change is checked for global uniqueness first; keeping the current email
// is not a conflict. A password change stores only the bcrypt hash.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, patch *types.UserPatch) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if patch.Email != nil && *patch.Email != user.Email {
		var other models.User
		if err := s.db.WithContext(ctx).Where("email = ?", *patch.Email).First(&other).Error; err == nil {
			return nil, ErrEmailTaken
		}
		user.Email = *patch.Email
	}
	if patch.FullName != nil {
		user.FullName = *patch.FullName
	}
	if patch.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hashed)
	}
	if patch.Age != nil {
		user.Age = patch.Age
	}
	if patch.Gender != nil {
		user.Gender = patch.Gender
	}
	if patch.Height != nil {
		user.Height = patch.Height
	}
	if patch.Weight != nil {
		user.Weight = patch.Weight
	}
	if patch.PreferredMode != nil {
		user.PreferredMode = *patch.PreferredMode
	}

	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}
