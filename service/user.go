package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"rockrev/auth"
	"rockrev/entity"
)

// Users handles registration and account linking
type Users struct {
	db *gorm.DB
}

// NewUsers makes the user service
func NewUsers(conn *gorm.DB) *Users {
	return &Users{db: conn}
}

// SignupInput is a registration payload
type SignupInput struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates a user and its profile in one unit of work. The profile
// is created here explicitly rather than by a store-level hook.
func (s *Users) Register(input SignupInput) (*entity.User, error) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.Username = strings.TrimSpace(input.Username)
	if input.Email == "" || !strings.Contains(input.Email, "@") {
		return nil, &ValidationError{Reason: "a valid email is required"}
	}
	if input.Username == "" {
		return nil, &ValidationError{Reason: "username is required"}
	}
	if len(input.Password) < 8 {
		return nil, &ValidationError{Reason: "password must be at least 8 characters"}
	}
	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}
	user := entity.User{
		Email:    input.Email,
		Username: input.Username,
		Password: hash,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&entity.Profile{UserID: user.ID}).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, &ValidationError{Reason: "email or username is already taken"}
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate checks credentials and returns the user
func (s *Users) Authenticate(email, password string) (*entity.User, error) {
	user, err := entity.GetUserByEmail(s.db, strings.TrimSpace(strings.ToLower(email)))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &ValidationError{Reason: "wrong email or password"}
	}
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(user.Password, password) {
		return nil, &ValidationError{Reason: "wrong email or password"}
	}
	return user, nil
}

// Get returns a user by id
func (s *Users) Get(userID uint) (*entity.User, error) {
	var user entity.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "user"}
		}
		return nil, err
	}
	return &user, nil
}

// LinkTelegram attaches a chat id to the account registered under email
func (s *Users) LinkTelegram(email string, chatID int64) (*entity.User, error) {
	user, err := entity.GetUserByEmail(s.db, strings.TrimSpace(strings.ToLower(email)))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Entity: "user"}
	}
	if err != nil {
		return nil, err
	}
	err = s.db.Model(user).Update("telegram_id", chatID).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, &ValidationError{Reason: "this chat is already linked to another account"}
	}
	if err != nil {
		return nil, err
	}
	user.TelegramID = &chatID
	return user, nil
}

// Linked reports whether a chat id is attached to any account
func (s *Users) Linked(chatID int64) (bool, error) {
	_, err := entity.GetUserByTelegramID(s.db, chatID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes an account; reviews, comments and follows cascade with it
func (s *Users) Delete(actor entity.User, userID uint) error {
	if actor.ID != userID && !actor.IsStaff {
		return &PermissionError{Reason: "only the owner or staff may delete an account"}
	}
	result := s.db.Delete(&entity.User{}, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Entity: "user"}
	}
	return nil
}
