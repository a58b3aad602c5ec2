package demo

import (
	"log"

	"gorm.io/gorm"

	"schools24_backend/internals/constants"
	classModel "schools24_backend/internals/features/academics/classes/model"
	subjectModel "schools24_backend/internals/features/academics/subjects/model"
	feesModel "schools24_backend/internals/features/finance/fees/model"
	schoolModel "schools24_backend/internals/features/schools/school/model"
	userModel "schools24_backend/internals/features/users/user/model"
)

// SeedDemoSchool provisions one demo school with staff, students,
// classes, subjects and a fee head catalog. Idempotent: skips anything
// that already exists.
func SeedDemoSchool(db *gorm.DB) {
	var school schoolModel.SchoolModel
	err := db.Where("code = ?", "DEMO").First(&school).Error
	if err == gorm.ErrRecordNotFound {
		school = schoolModel.SchoolModel{
			Code:    "DEMO",
			Name:    "Demo Public School",
			Email:   "office@demo.school",
			City:    "Pune",
			Country: "IN",
		}
		if err := db.Create(&school).Error; err != nil {
			log.Printf("❌ seed school: %v", err)
			return
		}
		log.Printf("✅ seeded school %s", school.Code)
	} else if err != nil {
		log.Printf("❌ seed school lookup: %v", err)
		return
	}

	users := []struct {
		name, email, userID, role, password string
	}{
		{"Demo Admin", "admin@demo.school", "ADM-001", constants.RoleAdmin, "admin123"},
		{"Tina Teacher", "tina@demo.school", "TCH-001", constants.RoleTeacher, "teach123"},
		{"Sam Student", "sam@demo.school", "STU-001", constants.RoleStudent, "stud123"},
		{"Rita Student", "rita@demo.school", "STU-002", constants.RoleStudent, "stud123"},
	}
	for _, u := range users {
		var existing userModel.UserModel
		if err := db.Where("email = ?", u.email).First(&existing).Error; err == nil {
			continue
		}
		m := userModel.UserModel{
			Name:     u.name,
			Email:    u.email,
			UserID:   u.userID,
			Role:     u.role,
			SchoolID: &school.ID,
			IsActive: true,
		}
		if err := m.SetPassword(u.password); err != nil {
			log.Printf("❌ seed user %s: %v", u.email, err)
			continue
		}
		if err := db.Create(&m).Error; err != nil {
			log.Printf("❌ seed user %s: %v", u.email, err)
		} else {
			log.Printf("✅ seeded user %s (%s)", u.email, u.role)
		}
	}

	classes := []classModel.SchoolClassModel{
		{Name: "5A", Grade: "Class 5", Section: "A", MaxStudents: 40, IsActive: true},
		{Name: "6B", Grade: "Class 6", Section: "B", MaxStudents: 40, IsActive: true},
	}
	for _, cl := range classes {
		var n int64
		db.Model(&classModel.SchoolClassModel{}).
			Where("name = ? AND grade = ? AND section = ?", cl.Name, cl.Grade, cl.Section).
			Count(&n)
		if n == 0 {
			if err := db.Create(&cl).Error; err != nil {
				log.Printf("❌ seed class %s: %v", cl.Name, err)
			}
		}
	}

	subjects := []subjectModel.SubjectModel{
		{Name: "Mathematics", Code: "MATH", IsActive: true},
		{Name: "English", Code: "ENG", IsActive: true},
	}
	for _, sj := range subjects {
		var n int64
		db.Model(&subjectModel.SubjectModel{}).Where("code = ?", sj.Code).Count(&n)
		if n == 0 {
			if err := db.Create(&sj).Error; err != nil {
				log.Printf("❌ seed subject %s: %v", sj.Code, err)
			}
		}
	}

	heads := []feesModel.FeeHead{
		{FeeHeadSchoolID: school.ID, FeeHeadName: "Tuition", FeeHeadAmount: 5000},
		{FeeHeadSchoolID: school.ID, FeeHeadName: "Transport", FeeHeadAmount: 1500},
		{FeeHeadSchoolID: school.ID, FeeHeadName: "Library", FeeHeadAmount: 300},
	}
	for _, h := range heads {
		var n int64
		db.Model(&feesModel.FeeHead{}).
			Where("fee_head_school_id = ? AND fee_head_name = ?", school.ID, h.FeeHeadName).
			Count(&n)
		if n == 0 {
			if err := db.Create(&h).Error; err != nil {
				log.Printf("❌ seed fee head %s: %v", h.FeeHeadName, err)
			}
		}
	}
}
