// file: internals/features/academics/classes/dto/class_dto.go
package dto

type CreateClassRequest struct {
	Name    string `json:"name" validate:"required,max=80"`
	Grade   string `json:"grade" validate:"required,max=30"`
	Section string `json:"section" validate:"required,max=10"`

	MaxStudents int `json:"max_students" validate:"omitempty,min=1,max=200"`
}
