// Package statusrepo persists the order status registry.
// The registry is a closed set defined by the domain; this package seeds it
// into the order_statuses table so queries can join on status names and the
// API can list them.
package statusrepo

import (
	"context"

	"packtrack/internal/core/domain/model/order"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StatusDTO represents one row of the status registry.
type StatusDTO struct {
	ID   int    `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null"`
}

// TableName specifies the database table name for status entities.
func (StatusDTO) TableName() string {
	return "order_statuses"
}

// Seed upserts the registry rows for every domain status. Idempotent: an
// existing row with the same id gets its name refreshed, nothing else is
// touched. Called once at startup after migration.
func Seed(ctx context.Context, db *gorm.DB) error {
	statuses := order.AllStatuses()
	dtos := make([]StatusDTO, 0, len(statuses))
	for _, s := range statuses {
		dtos = append(dtos, StatusDTO{ID: int(s), Name: s.String()})
	}

	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name"}),
		}).
		Create(&dtos).Error
}
