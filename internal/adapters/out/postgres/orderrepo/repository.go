package orderrepo

import (
	"context"
	"errors"
	"time"

	"packtrack/internal/core/domain/model/kernel"
	"packtrack/internal/core/domain/model/order"
	"packtrack/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// trackCodeRetries bounds the insert retry loop on tracking-code collisions.
// A collision between two random 128-bit codes is vanishingly rare; more
// than a couple in a row means something else is wrong.
const trackCodeRetries = 3

// GormOrderRepository implements ports.OrderRepository using GORM.
// Requires the connection to run with TranslateError enabled so unique-index
// violations surface as gorm.ErrDuplicatedKey.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id uint64, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and binds the generated id to the aggregate.
// On a tracking-code collision the code is regenerated and the insert
// retried, so a successful Add always leaves a unique code behind.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	var lastErr error
	for range trackCodeRetries {
		dto := fromDomain(aggregate)
		lastErr = r.db.WithContext(ctx).Create(&dto).Error
		if lastErr == nil {
			if err := aggregate.AssignID(dto.ID); err != nil {
				return err
			}
			r.tracker.TrackAggregate(aggregate.ID(), aggregate)
			return nil
		}
		if !errors.Is(lastErr, gorm.ErrDuplicatedKey) {
			return lastErr
		}
		if err := aggregate.RegenerateTrackCode(); err != nil {
			return err
		}
	}

	return lastErr
}

// Update saves an existing order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause("order id", aggregate.ID(), gorm.ErrRecordNotFound)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by its numeric id.
func (r *GormOrderRepository) Get(ctx context.Context, id uint64) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order id", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdate retrieves an order and locks its row until the surrounding
// transaction ends. Callers must run this inside a unit of work; the lock
// is what makes check-then-set lifecycle mutations race-free.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id uint64) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order id", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByTrackCode retrieves an order by its public tracking code.
func (r *GormOrderRepository) GetByTrackCode(ctx context.Context, code kernel.TrackCode) (*order.Order, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "track_code = ?", code.UUID()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("track code", code.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByClient retrieves all orders owned by the given client, newest first.
func (r *GormOrderRepository) GetAllByClient(ctx context.Context, clientID uint64) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC, id DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// Delete soft-deletes an order by id. The row stays in the table with a
// deleted_at marker until the retention job purges it.
func (r *GormOrderRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order id", id)
	}

	return nil
}

// PurgeDeletedBefore permanently removes orders soft-deleted before the
// cutoff and returns the number of rows removed.
func (r *GormOrderRepository) PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Delete(&OrderDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
