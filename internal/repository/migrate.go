package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for every table the repositories
// own. Row models keep the schema definition next to the queries that use it.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userRow{},
		&workerProfileRow{},
		&appointmentRow{},
		&reviewRow{},
		&reportRow{},
		&sessionRow{},
	)
}
