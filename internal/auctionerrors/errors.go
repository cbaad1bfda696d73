package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrDuplicateID     = errors.New("auction id already exists")
)

// business logic errors
var (
	ErrValidation    = errors.New("validation failed")
	ErrBidTooLow     = errors.New("bid must be higher than the current price")
	ErrAuctionClosed = errors.New("auction has ended")
)

// identity errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid registration input")
	ErrUnauthenticated    = errors.New("not signed in")
)

// ErrNetwork is a transport-level failure of a simulated round trip.
// It is never returned for business-rule rejections.
var ErrNetwork = errors.New("network request failed")
