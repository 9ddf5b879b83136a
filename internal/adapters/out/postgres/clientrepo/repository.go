package clientrepo

import (
	"context"
	"errors"

	"packtrack/internal/core/domain/model/client"
	"packtrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormClientRepository implements ports.ClientRepository using GORM.
// Requires the connection to run with TranslateError enabled so unique-index
// violations surface as gorm.ErrDuplicatedKey.
type GormClientRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id uint64, aggregate any)
}

// NewGormClientRepository creates a new GORM client repository.
func NewGormClientRepository(db *gorm.DB, tracker aggregateTracker) *GormClientRepository {
	return &GormClientRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new client and binds the generated id to the aggregate.
// A concurrent registration that slips past the application-level uniqueness
// check trips the unique index here and comes back as a conflict error.
func (r *GormClientRepository) Add(ctx context.Context, aggregate *client.Client) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("email or ID number is already registered", err)
		}
		return err
	}

	if err := aggregate.AssignID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing client to the database.
func (r *GormClientRepository) Update(ctx context.Context, aggregate *client.Client) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ClientDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("email or ID number is already registered", result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause("client id", aggregate.ID(), gorm.ErrRecordNotFound)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a client by numeric id.
func (r *GormClientRepository) Get(ctx context.Context, id uint64) (*client.Client, error) {
	var dto ClientDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("client id", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail retrieves a client by its unique email address.
func (r *GormClientRepository) GetByEmail(ctx context.Context, email string) (*client.Client, error) {
	var dto ClientDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("email", email)
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsByEmailOrIDNumber reports whether any client already uses the email
// or the ID number. Empty arguments are skipped so callers can probe one
// attribute alone.
func (r *GormClientRepository) ExistsByEmailOrIDNumber(ctx context.Context, email, idNumber string) (bool, error) {
	query := r.db.WithContext(ctx).Model(&ClientDTO{})
	switch {
	case email != "" && idNumber != "":
		query = query.Where("email = ? OR id_number = ?", email, idNumber)
	case email != "":
		query = query.Where("email = ?", email)
	case idNumber != "":
		query = query.Where("id_number = ?", idNumber)
	default:
		return false, errs.NewValueIsRequiredError("email or ID number")
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}
