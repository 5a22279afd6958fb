package sqlite

import (
	"fmt"

	"gorm.io/gorm"

	"weather-task-tracker/internal/task/repository"
	"weather-task-tracker/pkg/log"
)

type implRepository struct {
	db *gorm.DB
	l  log.Logger
}

// New creates the SQLite-backed Repository for the task domain and runs
// its migration.
func New(db *gorm.DB, l log.Logger) (repository.Repository, error) {
	if db == nil {
		return nil, fmt.Errorf("task/repository/sqlite: db is required")
	}
	if err := db.AutoMigrate(&taskRow{}); err != nil {
		return nil, fmt.Errorf("migrate tasks: %w", err)
	}
	return &implRepository{db: db, l: l}, nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/sqlite.%s", method)
}
