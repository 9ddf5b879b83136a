package queries

import (
	"context"
	"database/sql"
	"errors"

	"packtrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetClientProfileQueryHandler serves the owner profile endpoint.
type GetClientProfileQueryHandler struct {
	db *gorm.DB
}

// NewGetClientProfileQueryHandler creates a handler for profile reads.
func NewGetClientProfileQueryHandler(db *gorm.DB) GetClientProfileQueryHandler {
	return GetClientProfileQueryHandler{db: db}
}

// Handle executes the profile query.
func (h GetClientProfileQueryHandler) Handle(
	ctx context.Context,
	query GetClientProfileQuery,
) (ClientProfile, error) {
	if err := query.Validate(); err != nil {
		return ClientProfile{}, err
	}

	var profile ClientProfile

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, name, lastname, id_number, email, phone
		FROM clients
		WHERE id = ?
	`, query.ClientID()).Row()

	err := row.Scan(
		&profile.ID,
		&profile.Name,
		&profile.Lastname,
		&profile.IDNumber,
		&profile.Email,
		&profile.Phone,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ClientProfile{}, errs.NewObjectNotFoundError("client id", query.ClientID())
		}
		return ClientProfile{}, err
	}

	counts, err := h.orderCounts(ctx, query.ClientID())
	if err != nil {
		return ClientProfile{}, err
	}

	profile.OrderCounts = counts
	for _, c := range counts {
		profile.TotalOrders += c.Count
	}

	return profile, nil
}

func (h GetClientProfileQueryHandler) orderCounts(ctx context.Context, clientID uint64) ([]OrderCount, error) {
	counts := make([]OrderCount, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT s.name, COUNT(*)
		FROM orders o
		JOIN order_statuses s ON s.id = o.status_id
		WHERE o.client_id = ? AND o.deleted_at IS NULL
		GROUP BY s.id, s.name
		ORDER BY s.id
	`, clientID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var count OrderCount
		if err = rows.Scan(&count.StatusName, &count.Count); err != nil {
			return nil, err
		}
		counts = append(counts, count)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
