// file: internals/features/academics/classes/controller/class_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classDTO "schools24_backend/internals/features/academics/classes/dto"
	classModel "schools24_backend/internals/features/academics/classes/model"
	helper "schools24_backend/internals/helpers"
)

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

var validate = validator.New()

// GET /api/admin/classes
func (ctl *ClassController) ListClasses(c *fiber.Ctx) error {
	var classes []classModel.SchoolClassModel
	if err := ctl.DB.Order("grade ASC, section ASC").Find(&classes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "classes", fiber.Map{"classes": classes})
}

// POST /api/admin/classes
func (ctl *ClassController) CreateClass(c *fiber.Ctx) error {
	var in classDTO.CreateClassRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	// (name, grade, section) must be unique among active classes
	var dup int64
	if err := ctl.DB.Model(&classModel.SchoolClassModel{}).
		Where("name = ? AND grade = ? AND section = ? AND is_active = ?",
			in.Name, in.Grade, in.Section, true).
		Count(&dup).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusConflict,
			"class with this name, grade, and section already exists")
	}

	cls := classModel.SchoolClassModel{
		Name:        in.Name,
		Grade:       in.Grade,
		Section:     in.Section,
		MaxStudents: in.MaxStudents,
		IsActive:    true,
	}
	if cls.MaxStudents == 0 {
		cls.MaxStudents = 40
	}
	if err := ctl.DB.Create(&cls).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "class created successfully", fiber.Map{"class": cls})
}
