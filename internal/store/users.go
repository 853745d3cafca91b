package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/martinwilchesdev/backend-web-app/internal/models"

	"gorm.io/gorm"
)

var (
	// ErrUsernameTaken is returned when an insert violates the unique
	// username constraint.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("user not found")
)

// UserStore owns all access to the users table.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Create inserts a new user record and returns it with the assigned ID.
// Uniqueness is enforced by the database, so concurrent registrations of
// the same username resolve to exactly one winner.
func (s *UserStore) Create(username, passwordHash string) (*models.User, error) {
	user := models.User{
		Username:     username,
		PasswordHash: passwordHash,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &user, nil
}

// FindByUsername looks up a user by exact username.
func (s *UserStore) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := s.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	return &user, nil
}

// FindByID looks up a user by primary key.
func (s *UserStore) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &user, nil
}

func isUniqueViolation(err error) bool {
	// gorm translates driver errors when TranslateError is on; the string
	// check covers sqlite connections opened without it (tests).
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
