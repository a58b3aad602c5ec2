package database

import (
	"log"

	"gorm.io/gorm"

	classModel "schools24_backend/internals/features/academics/classes/model"
	assignModel "schools24_backend/internals/features/academics/assignments/model"
	subjectModel "schools24_backend/internals/features/academics/subjects/model"
	feesModel "schools24_backend/internals/features/finance/fees/model"
	schoolModel "schools24_backend/internals/features/schools/school/model"
	userModel "schools24_backend/internals/features/users/user/model"
)

// AutoMigrate runs schema migration for every registered model.
// Order matters: parents before children (FK targets first).
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&schoolModel.SchoolModel{},
		&userModel.UserModel{},
		&classModel.SchoolClassModel{},
		&subjectModel.SubjectModel{},
		&assignModel.ClassSubjectTeacherModel{},
		&feesModel.FeeHead{},
		&feesModel.FeeInvoice{},
		&feesModel.FeeInvoiceItem{},
		&feesModel.Payment{},
	)
}

func MigrateDB() {
	if err := AutoMigrate(DB); err != nil {
		log.Fatalf("❌ migrate failed: %v", err)
	}
	log.Println("✅ Migration done.")
}
