// file: internals/features/admin/dashboard/controller/dashboard_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schools24_backend/internals/constants"
	classModel "schools24_backend/internals/features/academics/classes/model"
	subjectModel "schools24_backend/internals/features/academics/subjects/model"
	userDTO "schools24_backend/internals/features/users/user/dto"
	userModel "schools24_backend/internals/features/users/user/model"
	helper "schools24_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GET /api/admin/dashboard
// Stats are plain aggregate queries against the store; nothing is cached
// in-process.
func (ctl *DashboardController) Dashboard(c *fiber.Ctx) error {
	countActive := func(q *gorm.DB) (int64, error) {
		var n int64
		err := q.Count(&n).Error
		return n, err
	}

	students, err := countActive(ctl.DB.Model(&userModel.UserModel{}).
		Where("role = ? AND is_active = ?", constants.RoleStudent, true))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	teachers, err := countActive(ctl.DB.Model(&userModel.UserModel{}).
		Where("role = ? AND is_active = ?", constants.RoleTeacher, true))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	classes, err := countActive(ctl.DB.Model(&classModel.SchoolClassModel{}).
		Where("is_active = ?", true))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	subjects, err := countActive(ctl.DB.Model(&subjectModel.SubjectModel{}).
		Where("is_active = ?", true))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var recent []userModel.UserModel
	if err := ctl.DB.
		Where("is_active = ?", true).
		Order("created_at DESC").
		Limit(5).
		Find(&recent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "dashboard", fiber.Map{
		"stats": fiber.Map{
			"totalStudents": students,
			"totalTeachers": teachers,
			"totalClasses":  classes,
			"totalSubjects": subjects,
		},
		"recentUsers": userDTO.ToUserResponses(recent),
	})
}
