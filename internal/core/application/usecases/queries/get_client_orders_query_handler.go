package queries

import (
	"context"

	"packtrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetClientOrdersQueryHandler lists an owner's orders, newest first.
// Soft-deleted rows never appear in the listing.
type GetClientOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetClientOrdersQueryHandler creates a handler for owner order listings.
func NewGetClientOrdersQueryHandler(db *gorm.DB) GetClientOrdersQueryHandler {
	return GetClientOrdersQueryHandler{db: db}
}

// Handle executes the listing query.
// An owner without a single visible order gets a not-found error rather
// than an empty list; the API maps it to 404.
func (h GetClientOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetClientOrdersQuery,
) ([]ClientOrderRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]ClientOrderRow, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.track_code,
			s.name,
			o.package_type,
			o.recipient_name,
			o.destination_department,
			o.destination_municipality,
			o.destination_address,
			c.name,
			c.email,
			o.created_at
		FROM orders o
		JOIN order_statuses s ON s.id = o.status_id
		JOIN clients c ON c.id = o.client_id
		WHERE o.client_id = ? AND o.deleted_at IS NULL
		ORDER BY o.created_at DESC, o.id DESC
	`, query.ClientID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row ClientOrderRow
		var trackCode uuid.UUID

		err = rows.Scan(
			&row.ID,
			&trackCode,
			&row.StatusName,
			&row.PackageType,
			&row.RecipientName,
			&row.DestinationDepartment,
			&row.DestinationMunicipality,
			&row.DestinationAddress,
			&row.ClientName,
			&row.ClientEmail,
			&row.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		row.TrackCode = trackCode.String()
		orders = append(orders, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return nil, errs.NewObjectNotFoundError("orders for client", query.ClientID())
	}

	return orders, nil
}
