package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserModel represents the users table: admins, teachers and students alike.
type UserModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"size:120;not null" json:"name"`

	Email    string `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"type:varchar(20);not null" json:"role"`

	// Human-readable id (admission / staff number), unique per deployment.
	UserID string `gorm:"column:user_id;size:50;not null;uniqueIndex" json:"user_id"`

	SchoolID *uuid.UUID `gorm:"type:uuid;index" json:"school_id,omitempty"`

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// SetPassword hashes and stores the plaintext password.
func (m *UserModel) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	m.Password = string(hash)
	return nil
}

// CheckPassword compares a plaintext candidate with the stored hash.
func (m *UserModel) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(m.Password), []byte(plain)) == nil
}
