package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SchoolModel represents the schools table (one tenant per row).
type SchoolModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Code string    `gorm:"size:30;not null;uniqueIndex" json:"code"`
	Name string    `gorm:"size:150;not null" json:"name"`

	Domain  string `gorm:"size:120" json:"domain,omitempty"`
	Email   string `gorm:"size:255" json:"email,omitempty"`
	Address string `gorm:"size:255" json:"address,omitempty"`
	City    string `gorm:"size:80" json:"city,omitempty"`
	State   string `gorm:"size:80" json:"state,omitempty"`
	Country string `gorm:"size:80" json:"country,omitempty"`

	// Provisioning locks: block new teacher/student accounts for this school.
	LockTeacherCreation bool `gorm:"not null;default:false" json:"lock_teacher_creation"`
	LockStudentCreation bool `gorm:"not null;default:false" json:"lock_student_creation"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (SchoolModel) TableName() string {
	return "schools"
}

// BeforeCreate fills the uuid when the DB default is unavailable (sqlite tests).
func (m *SchoolModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
