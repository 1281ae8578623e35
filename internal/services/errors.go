package services

import "errors"

// Typed business errors. Handlers map these to HTTP statuses in one
// place; anything else surfaces as a 500 with a generic body.
var (
	// ErrAlreadyExists signals a uniqueness violation on create.
	ErrAlreadyExists = errors.New("name is already occupied")
	// ErrForbidden signals an authenticated caller touching a record
	// they do not own.
	ErrForbidden = errors.New("it's not your property")
	// ErrWrongPassword signals a failed password check at login.
	ErrWrongPassword = errors.New("password is wrong")
	// ErrAlreadyReviewed signals a second review for the same
	// (user, product) pair.
	ErrAlreadyReviewed = errors.New("review already has been provided")
	// ErrInvalidToken signals a malformed or badly signed bearer token.
	ErrInvalidToken = errors.New("wrong token")
)
