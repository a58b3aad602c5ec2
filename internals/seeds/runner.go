package seeds

import (
	"log"

	"gorm.io/gorm"

	demo "schools24_backend/internals/seeds/demo"
)

// RunAllSeeds loads the demo dataset. Gated by RUN_SEEDS=true in main.
func RunAllSeeds(db *gorm.DB) {
	log.Println("🌱 Running seeds...")
	demo.SeedDemoSchool(db)
	log.Println("🌱 Seeds done.")
}
