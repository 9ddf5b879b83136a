package queries

import (
	"context"
	"database/sql"
	"errors"

	"packtrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// TrackOrderByCodeQueryHandler serves the public tracking endpoint.
type TrackOrderByCodeQueryHandler struct {
	db *gorm.DB
}

// NewTrackOrderByCodeQueryHandler creates a handler for tracking lookups.
func NewTrackOrderByCodeQueryHandler(db *gorm.DB) TrackOrderByCodeQueryHandler {
	return TrackOrderByCodeQueryHandler{db: db}
}

// Handle executes the tracking lookup.
// A well-formed code with no matching order returns a not-found error.
func (h TrackOrderByCodeQueryHandler) Handle(
	ctx context.Context,
	query TrackOrderByCodeQuery,
) (TrackingInfo, error) {
	if err := query.Validate(); err != nil {
		return TrackingInfo{}, err
	}

	var info TrackingInfo

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			s.name,
			o.package_type,
			o.recipient_name,
			o.destination_department,
			o.destination_municipality,
			o.destination_address,
			o.created_at
		FROM orders o
		JOIN order_statuses s ON s.id = o.status_id
		WHERE o.track_code = ? AND o.deleted_at IS NULL
	`, query.Code().UUID()).Row()

	err := row.Scan(
		&info.StatusName,
		&info.PackageType,
		&info.RecipientName,
		&info.DestinationDepartment,
		&info.DestinationMunicipality,
		&info.DestinationAddress,
		&info.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TrackingInfo{}, errs.NewObjectNotFoundError("track code", query.Code().String())
		}
		return TrackingInfo{}, err
	}

	info.TrackCode = query.Code().String()
	return info, nil
}
