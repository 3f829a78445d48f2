// Package clock provides the time source used to stamp exported sheets
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/smkun/MarvelPowers/internal/pkg/clock Clock

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Fixed always returns the same instant. Useful for reproducible output.
type Fixed struct {
	At time.Time
}

// Now returns At
func (c Fixed) Now() time.Time {
	return c.At
}
