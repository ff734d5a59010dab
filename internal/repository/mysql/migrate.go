package mysql

import (
	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/mysql/model"
)

// AutoMigrate creates or updates every forum table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(model.All()...)
}
