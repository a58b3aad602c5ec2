package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubjectModel represents the subjects table. Codes are stored upper-cased.
type SubjectModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"size:120;not null" json:"name"`
	Code string    `gorm:"size:20;not null;uniqueIndex" json:"code"`

	IsActive bool `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SubjectModel) TableName() string {
	return "subjects"
}

func (m *SubjectModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.Code = strings.ToUpper(strings.TrimSpace(m.Code))
	return nil
}
