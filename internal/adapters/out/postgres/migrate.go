package postgres

import (
	"devbook/internal/adapters/out/postgres/bookingrepo"
	"devbook/internal/adapters/out/postgres/developerrepo"
	"devbook/internal/adapters/out/postgres/projectrepo"
	"devbook/internal/adapters/out/postgres/skillrepo"

	"gorm.io/gorm"
)

// Models lists every persisted DTO in dependency order.
func Models() []any {
	return []any{
		&skillrepo.SkillDTO{},
		&developerrepo.DeveloperDTO{},
		&developerrepo.DeveloperSkillDTO{},
		&bookingrepo.BookingDTO{},
		&projectrepo.ProjectDTO{},
	}
}

// Migrate creates or updates the tables with GORM's auto migration.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// Truncate empties every table. Used by integration tests between cases.
func Truncate(db *gorm.DB) error {
	return db.Exec("TRUNCATE TABLE developer_skills, bookings, projects, developers, skills").Error
}
