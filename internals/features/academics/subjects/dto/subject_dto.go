// file: internals/features/academics/subjects/dto/subject_dto.go
package dto

type CreateSubjectRequest struct {
	Name string `json:"name" validate:"required,max=120"`
	Code string `json:"code" validate:"required,max=20"`
}
