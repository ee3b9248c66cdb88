package services

import "errors"

// Sentinel errors; controllers translate these to HTTP statuses.
var (
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrItemNotInCart   = errors.New("item not in cart")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidSchedule = errors.New("invalid delivery date or time")
	ErrInvalidRole     = errors.New("role must be customer or provider")
	ErrInvalidMenuItem = errors.New("invalid meal type or spice level")
	ErrInvalidRating   = errors.New("ratings must be between 1 and 5")
	ErrInvalidCoords   = errors.New("invalid coordinates")
	ErrAlreadyReviewed = errors.New("already reviewed")
	ErrNotDelivered    = errors.New("order is not delivered yet")
	ErrNotCancellable  = errors.New("order can no longer be cancelled")
	ErrProfileExists   = errors.New("profile already exists")
	ErrEmailTaken      = errors.New("email already registered")
)
