// Package bookingrepo provides the GORM persistence of bookings.
package bookingrepo

import (
	"time"

	"devbook/internal/core/domain/model/booking"
	"devbook/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BookingDTO represents the database structure for persisting bookings.
type BookingDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DeveloperID uuid.UUID  `gorm:"type:uuid;not null;index"`
	UserID      *uuid.UUID `gorm:"type:uuid;index"`
	StartDate   time.Time  `gorm:"type:date;not null"`
	EndDate     time.Time  `gorm:"type:date;not null"`
	CreatedAt   time.Time
}

// TableName specifies the database table name for bookings.
func (BookingDTO) TableName() string {
	return "bookings"
}

func fromDomain(aggregate *booking.Booking) BookingDTO {
	var userID *uuid.UUID
	if aggregate.UserID() != nil {
		raw := aggregate.UserID().Bytes()
		userID = &raw
	}

	return BookingDTO{
		ID:          aggregate.ID().Bytes(),
		DeveloperID: aggregate.DeveloperID().Bytes(),
		UserID:      userID,
		StartDate:   aggregate.StartDate(),
		EndDate:     aggregate.EndDate(),
	}
}

func toDomain(dto BookingDTO) (*booking.Booking, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	developerID, err := kernel.UUIDFromBytes(dto.DeveloperID[:])
	if err != nil {
		return nil, err
	}

	var userID *kernel.UUID
	if dto.UserID != nil {
		uID, userErr := kernel.UUIDFromBytes((*dto.UserID)[:])
		if userErr != nil {
			return nil, userErr
		}
		userID = &uID
	}

	return booking.RestoreBooking(id, developerID, userID, dto.StartDate, dto.EndDate)
}
