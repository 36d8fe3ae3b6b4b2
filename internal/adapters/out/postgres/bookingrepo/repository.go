package bookingrepo

import (
	"context"
	"errors"

	"devbook/internal/core/domain/model/booking"
	"devbook/internal/core/domain/model/kernel"
	"devbook/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBookingRepository implements BookingRepository using GORM.
type GormBookingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBookingRepository creates a new GORM booking repository.
func NewGormBookingRepository(db *gorm.DB, tracker aggregateTracker) *GormBookingRepository {
	return &GormBookingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new booking to the database.
func (r *GormBookingRepository) Add(ctx context.Context, aggregate *booking.Booking) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a booking by ID.
func (r *GormBookingRepository) Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BookingDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("booking", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindByDeveloper lists the bookings of a developer in creation order.
func (r *GormBookingRepository) FindByDeveloper(
	ctx context.Context,
	developerID kernel.UUID,
) ([]*booking.Booking, error) {
	if err := developerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []BookingDTO
	if err := r.db.WithContext(ctx).
		Where("developer_id = ?", developerID.Bytes()).
		Order("created_at ASC, id ASC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	bookings := make([]*booking.Booking, 0, len(dtos))
	for _, dto := range dtos {
		b, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}

	return bookings, nil
}

// DeleteByDeveloper removes every booking of a developer.
func (r *GormBookingRepository) DeleteByDeveloper(ctx context.Context, developerID kernel.UUID) error {
	if err := developerID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("developer_id = ?", developerID.Bytes()).
		Delete(&BookingDTO{}).Error
}
