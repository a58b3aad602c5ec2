package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassSubjectTeacherModel links one teacher to one subject inside one class.
// The triple is unique: a teacher cannot be assigned twice to the same
// subject in the same class.
type ClassSubjectTeacherModel struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	ClassID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_class_subject_teacher,priority:1" json:"class_id"`
	SubjectID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_class_subject_teacher,priority:2" json:"subject_id"`
	TeacherID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_class_subject_teacher,priority:3" json:"teacher_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ClassSubjectTeacherModel) TableName() string {
	return "class_subject_teacher"
}

func (m *ClassSubjectTeacherModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
