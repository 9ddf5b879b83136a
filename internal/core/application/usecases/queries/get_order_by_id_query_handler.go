package queries

import (
	"context"
	"database/sql"
	"errors"

	"packtrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderByIDQueryHandler retrieves one order in full for its owner.
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for single-order reads.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle executes the single-order query.
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) (OrderDetails, error) {
	if err := query.Validate(); err != nil {
		return OrderDetails{}, err
	}

	var details OrderDetails
	var trackCode uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.track_code,
			s.name,
			o.package_type,
			o.sender_name,
			o.sender_lastname,
			o.sender_phone,
			o.sender_email,
			o.sender_department,
			o.sender_municipality,
			o.sender_address,
			o.recipient_name,
			o.destination_department,
			o.destination_municipality,
			o.destination_address,
			o.created_at
		FROM orders o
		JOIN order_statuses s ON s.id = o.status_id
		WHERE o.id = ? AND o.client_id = ? AND o.deleted_at IS NULL
	`, query.OrderID(), query.ClientID()).Row()

	err := row.Scan(
		&details.ID,
		&trackCode,
		&details.StatusName,
		&details.PackageType,
		&details.SenderName,
		&details.SenderLastname,
		&details.SenderPhone,
		&details.SenderEmail,
		&details.SenderDepartment,
		&details.SenderMunicipality,
		&details.SenderAddress,
		&details.RecipientName,
		&details.DestinationDepartment,
		&details.DestinationMunicipality,
		&details.DestinationAddress,
		&details.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderDetails{}, errs.NewObjectNotFoundError("order id", query.OrderID())
		}
		return OrderDetails{}, err
	}

	details.TrackCode = trackCode.String()
	return details, nil
}
