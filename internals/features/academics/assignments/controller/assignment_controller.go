// file: internals/features/academics/assignments/controller/assignment_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schools24_backend/internals/constants"
	assignDTO "schools24_backend/internals/features/academics/assignments/dto"
	assignModel "schools24_backend/internals/features/academics/assignments/model"
	classModel "schools24_backend/internals/features/academics/classes/model"
	subjectModel "schools24_backend/internals/features/academics/subjects/model"
	userModel "schools24_backend/internals/features/users/user/model"
	helper "schools24_backend/internals/helpers"
)

type AssignmentController struct {
	DB *gorm.DB
}

func NewAssignmentController(db *gorm.DB) *AssignmentController {
	return &AssignmentController{DB: db}
}

var validate = validator.New()

// GET /api/admin/classes/:id/assignments
func (ctl *AssignmentController) ListForClass(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid class id")
	}

	var assignments []assignModel.ClassSubjectTeacherModel
	if err := ctl.DB.
		Where("class_id = ?", classID).
		Order("created_at ASC").
		Find(&assignments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "assignments", fiber.Map{"assignments": assignments})
}

// PUT /api/admin/classes/:id/assign-teacher
func (ctl *AssignmentController) AssignTeacher(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid class id")
	}

	var in assignDTO.AssignTeacherRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var cls classModel.SchoolClassModel
	if err := ctl.DB.First(&cls, "id = ? AND is_active = ?", classID, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var teacher userModel.UserModel
	if err := ctl.DB.First(&teacher,
		"id = ? AND role = ? AND is_active = ?", in.TeacherID, constants.RoleTeacher, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "teacher not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var subject subjectModel.SubjectModel
	if err := ctl.DB.First(&subject, "id = ? AND is_active = ?", in.SubjectID, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "subject not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var dup int64
	if err := ctl.DB.Model(&assignModel.ClassSubjectTeacherModel{}).
		Where("class_id = ? AND subject_id = ? AND teacher_id = ?",
			classID, in.SubjectID, in.TeacherID).
		Count(&dup).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusConflict,
			"teacher is already assigned to this subject in this class")
	}

	a := assignModel.ClassSubjectTeacherModel{
		ClassID:   classID,
		SubjectID: in.SubjectID,
		TeacherID: in.TeacherID,
	}
	if err := ctl.DB.Create(&a).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict,
				"teacher is already assigned to this subject in this class")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "teacher assigned successfully", fiber.Map{"assignment": a})
}

// DELETE /api/admin/classes/:id/remove-teacher
func (ctl *AssignmentController) RemoveTeacher(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid class id")
	}

	var in assignDTO.RemoveTeacherRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	res := ctl.DB.
		Where("class_id = ? AND subject_id = ? AND teacher_id = ?",
			classID, in.SubjectID, in.TeacherID).
		Delete(&assignModel.ClassSubjectTeacherModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "assignment not found")
	}
	return helper.JsonOK(c, "teacher removed successfully", nil)
}
