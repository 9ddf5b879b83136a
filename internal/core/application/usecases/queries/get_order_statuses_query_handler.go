package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrderStatusesQueryHandler lists the seeded status registry.
type GetOrderStatusesQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatusesQueryHandler creates a handler for registry listings.
func NewGetOrderStatusesQueryHandler(db *gorm.DB) GetOrderStatusesQueryHandler {
	return GetOrderStatusesQueryHandler{db: db}
}

// Handle executes the registry listing in stable identifier order.
func (h GetOrderStatusesQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusesQuery,
) ([]StatusRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statuses := make([]StatusRow, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name
		FROM order_statuses
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var status StatusRow
		if err = rows.Scan(&status.ID, &status.Name); err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return statuses, nil
}
