package service

import "errors"

var ErrNotFound = errors.New("not found")

var (
	ErrDecode     = errors.New("decode")
	ErrValidation = errors.New("validation")

	// ErrUnauthorizedCart covers both "not yours" and "does not exist" so
	// cart probing reveals nothing.
	ErrUnauthorizedCart = errors.New("unauthorized cart access")

	// ErrForbidden is an admin caller whose role does not clear the
	// deletion policy.
	ErrForbidden = errors.New("insufficient role")

	// ErrConflict is a state conflict: the caller must re-drive the step,
	// not retry blindly.
	ErrConflict = errors.New("state conflict")

	// ErrRateLimited covers every tracking-code throttle.
	ErrRateLimited = errors.New("rate limited")

	// ErrDetailsMismatch is deliberately generic: it never reveals which
	// contact field failed to match.
	ErrDetailsMismatch = errors.New("order details do not match")
)
