// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schools24_backend/internals/constants"
	userDTO "schools24_backend/internals/features/users/user/dto"
	userModel "schools24_backend/internals/features/users/user/model"
	helper "schools24_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

var validate = validator.New()

// POST /api/admin/users
func (ctl *UserController) CreateUser(c *fiber.Ctx) error {
	var in userDTO.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var dup int64
	if err := ctl.DB.Model(&userModel.UserModel{}).
		Where("email = ? OR user_id = ?", in.Email, in.UserID).
		Count(&dup).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "email or user id already exists")
	}

	u := userModel.UserModel{
		Name:     in.Name,
		Email:    in.Email,
		Role:     in.Role,
		UserID:   in.UserID,
		SchoolID: in.SchoolID,
		IsActive: true,
	}
	if err := u.SetPassword(in.Password); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := ctl.DB.Create(&u).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "email or user id already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, fmt.Sprintf("%s created successfully", in.Role), fiber.Map{
		"user": userDTO.ToUserResponse(u),
	})
}

// GET /api/admin/teachers
func (ctl *UserController) ListTeachers(c *fiber.Ctx) error {
	var teachers []userModel.UserModel
	if err := ctl.DB.
		Where("role = ? AND is_active = ?", constants.RoleTeacher, true).
		Order("created_at DESC").
		Find(&teachers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "teachers", fiber.Map{"teachers": userDTO.ToUserResponses(teachers)})
}
