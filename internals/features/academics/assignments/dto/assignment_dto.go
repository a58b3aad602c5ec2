// file: internals/features/academics/assignments/dto/assignment_dto.go
package dto

import "github.com/google/uuid"

type AssignTeacherRequest struct {
	TeacherID uuid.UUID `json:"teacherId" validate:"required"`
	SubjectID uuid.UUID `json:"subjectId" validate:"required"`
}

type RemoveTeacherRequest struct {
	TeacherID uuid.UUID `json:"teacherId" validate:"required"`
	SubjectID uuid.UUID `json:"subjectId" validate:"required"`
}
