// file: internals/features/academics/subjects/controller/subject_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	subjectDTO "schools24_backend/internals/features/academics/subjects/dto"
	subjectModel "schools24_backend/internals/features/academics/subjects/model"
	helper "schools24_backend/internals/helpers"
)

type SubjectController struct {
	DB *gorm.DB
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db}
}

var validate = validator.New()

// GET /api/admin/subjects
func (ctl *SubjectController) ListSubjects(c *fiber.Ctx) error {
	var subjects []subjectModel.SubjectModel
	if err := ctl.DB.Order("code ASC").Find(&subjects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "subjects", fiber.Map{"subjects": subjects})
}

// POST /api/admin/subjects
func (ctl *SubjectController) CreateSubject(c *fiber.Ctx) error {
	var in subjectDTO.CreateSubjectRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	code := strings.ToUpper(strings.TrimSpace(in.Code))

	var dup int64
	if err := ctl.DB.Model(&subjectModel.SubjectModel{}).
		Where("code = ?", code).
		Count(&dup).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "subject with this code already exists")
	}

	subj := subjectModel.SubjectModel{
		Name:     in.Name,
		Code:     code,
		IsActive: true,
	}
	if err := ctl.DB.Create(&subj).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "subject with this code already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "subject created successfully", fiber.Map{"subject": subj})
}
