package commands

import (
	"errors"

	"devbook/internal/pkg/guard"
)

var (
	ErrRecountBookingsCommandIsNotConstructed = errors.New(
		"RecountBookingsCommand must be created via NewRecountBookingsCommand constructor",
	)
)

// RecountBookingsCommand realigns every bookings_count with the bookings table.
// Run periodically to repair counters that drifted through direct SQL edits.
//
// Example:
//
//	cmd := NewRecountBookingsCommand()
//	changed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	log.Printf("fixed %d counters", changed)
type RecountBookingsCommand struct {
	guard guard.ConstructorGuard
}

// NewRecountBookingsCommand creates a recount command.
func NewRecountBookingsCommand() RecountBookingsCommand {
	return RecountBookingsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *RecountBookingsCommand) Validate() error {
	return c.guard.Validate(ErrRecountBookingsCommandIsNotConstructed)
}
