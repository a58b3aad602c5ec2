package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SchoolClassModel represents the classes table.
// (name, grade, section) is unique among active classes; uniqueness is
// enforced by the create handler, not by a partial index.
type SchoolClassModel struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name    string    `gorm:"size:80;not null" json:"name"`
	Grade   string    `gorm:"size:30;not null" json:"grade"`
	Section string    `gorm:"size:10;not null" json:"section"`

	MaxStudents int  `gorm:"not null;default:40" json:"max_students"`
	IsActive    bool `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SchoolClassModel) TableName() string {
	return "classes"
}

func (m *SchoolClassModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
