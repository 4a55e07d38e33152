package service

import "errors"

// Domain sentinels. The HTTP error handler maps these to status codes;
// services wrap them with context via fmt.Errorf("...: %w", ...).
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrDuplicateDate      = errors.New("sales data already exists for this date")
	ErrInvalidOTP         = errors.New("invalid or expired otp")
	ErrSectionMismatch    = errors.New("section does not belong to store")
	ErrInvalidPrice       = errors.New("discounted price must be between 0 and original price")
	ErrTotalMismatch      = errors.New("total amount does not match items")
)
