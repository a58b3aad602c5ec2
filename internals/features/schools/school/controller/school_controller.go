// file: internals/features/schools/school/controller/school_controller.go
package controller

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schools24_backend/internals/constants"
	schoolDTO "schools24_backend/internals/features/schools/school/dto"
	schoolModel "schools24_backend/internals/features/schools/school/model"
	userModel "schools24_backend/internals/features/users/user/model"
	helper "schools24_backend/internals/helpers"
)

type SchoolController struct {
	DB *gorm.DB
}

func NewSchoolController(db *gorm.DB) *SchoolController {
	return &SchoolController{DB: db}
}

var validate = validator.New()

// applySearch narrows a schools query to ?q= (name or code, case-insensitive).
func applySearch(q *gorm.DB, term string) *gorm.DB {
	term = strings.TrimSpace(term)
	if term == "" {
		return q
	}
	like := "%" + strings.ToLower(term) + "%"
	return q.Where("LOWER(name) LIKE ? OR LOWER(code) LIKE ?", like, like)
}

// GET /api/developer/overview
func (ctl *SchoolController) Overview(c *fiber.Ctx) error {
	var schools int64
	if err := ctl.DB.Model(&schoolModel.SchoolModel{}).Count(&schools).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	countRole := func(role string) (int64, error) {
		var n int64
		err := ctl.DB.Model(&userModel.UserModel{}).
			Where("role = ? AND is_active = ?", role, true).
			Count(&n).Error
		return n, err
	}

	admins, err := countRole(constants.RoleAdmin)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	teachers, err := countRole(constants.RoleTeacher)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	students, err := countRole(constants.RoleStudent)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "overview", fiber.Map{
		"schools":  schools,
		"admins":   admins,
		"teachers": teachers,
		"students": students,
	})
}

// GET /api/developer/schools?q=&page=&pageSize=
func (ctl *SchoolController) ListSchools(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 10, 100)

	q := applySearch(ctl.DB.Model(&schoolModel.SchoolModel{}), c.Query("q"))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var schools []schoolModel.SchoolModel
	if err := q.Order("created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&schools).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "schools", fiber.Map{"schools": schools, "total": total}, &pagination)
}

// POST /api/developer/schools
func (ctl *SchoolController) CreateSchool(c *fiber.Ctx) error {
	var in schoolDTO.CreateSchoolRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var dup int64
	if err := ctl.DB.Model(&schoolModel.SchoolModel{}).
		Where("code = ?", in.Code).
		Count(&dup).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "school code already exists")
	}

	s := schoolModel.SchoolModel{
		Code:    in.Code,
		Name:    in.Name,
		Domain:  in.Domain,
		Email:   in.Email,
		Address: in.Address,
		City:    in.City,
		State:   in.State,
		Country: in.Country,
	}
	if err := ctl.DB.Create(&s).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "school code already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "school created", fiber.Map{"school": s})
}

// GET /api/developer/schools/:id/locks
func (ctl *SchoolController) GetLocks(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var s schoolModel.SchoolModel
	if err := ctl.DB.First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "school not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "locks", fiber.Map{
		"lockTeacherCreation": s.LockTeacherCreation,
		"lockStudentCreation": s.LockStudentCreation,
	})
}

// PUT /api/developer/schools/:id/locks
func (ctl *SchoolController) UpdateLocks(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in schoolDTO.UpdateLocksRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}

	var s schoolModel.SchoolModel
	if err := ctl.DB.First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "school not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	s.LockTeacherCreation = in.LockTeacherCreation
	s.LockStudentCreation = in.LockStudentCreation
	if err := ctl.DB.Model(&s).Updates(map[string]any{
		"lock_teacher_creation": s.LockTeacherCreation,
		"lock_student_creation": s.LockStudentCreation,
	}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "locks updated", fiber.Map{
		"lockTeacherCreation": s.LockTeacherCreation,
		"lockStudentCreation": s.LockStudentCreation,
	})
}

// GET /api/developer/schools/export?q=
func (ctl *SchoolController) ExportCSV(c *fiber.Ctx) error {
	var schools []schoolModel.SchoolModel
	if err := applySearch(ctl.DB.Model(&schoolModel.SchoolModel{}), c.Query("q")).
		Order("created_at DESC").
		Find(&schools).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"id", "name", "code", "domain", "email", "city", "country"})
	for _, s := range schools {
		_ = w.Write([]string{s.ID.String(), s.Name, s.Code, s.Domain, s.Email, s.City, s.Country})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="schools.csv"`)
	return c.Send(buf.Bytes())
}

// GET /api/developer/schools/:id/users
func (ctl *SchoolController) ListSchoolUsers(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var users []userModel.UserModel
	if err := ctl.DB.
		Where("school_id = ? AND is_active = ?", id, true).
		Order("created_at DESC").
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "users", fiber.Map{"users": users})
}

// POST /api/developer/schools/:id/users
func (ctl *SchoolController) CreateSchoolUser(c *fiber.Ctx) error {
	return ctl.createUserForSchool(c, "")
}

// POST /api/developer/schools/:id/provision-admin
// Same as user creation but the role is forced to admin.
func (ctl *SchoolController) ProvisionAdmin(c *fiber.Ctx) error {
	return ctl.createUserForSchool(c, constants.RoleAdmin)
}

func (ctl *SchoolController) createUserForSchool(c *fiber.Ctx, forceRole string) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid id")
	}

	var in schoolDTO.CreateSchoolUserRequest
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if forceRole != "" {
		in.Role = forceRole
	}
	if err := validate.Struct(in); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	var school schoolModel.SchoolModel
	if err := ctl.DB.First(&school, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "school not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// Provisioning locks
	if in.Role == constants.RoleTeacher && school.LockTeacherCreation {
		return helper.JsonError(c, fiber.StatusConflict, "teacher creation is locked for this school")
	}
	if in.Role == constants.RoleStudent && school.LockStudentCreation {
		return helper.JsonError(c, fiber.StatusConflict, "student creation is locked for this school")
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
		SchoolID: &school.ID,
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

	return helper.JsonCreated(c, fmt.Sprintf("%s created", in.Role), fiber.Map{
		"user": schoolDTO.SchoolUserResponse{
			ID:     u.ID,
			Name:   u.Name,
			Email:  u.Email,
			Role:   u.Role,
			UserID: u.UserID,
		},
	})
}
