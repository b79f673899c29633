package rating

import "errors"

var (
	ErrInvalidScore        = errors.New("invalid score")
	ErrMissingField        = errors.New("missing field")
	ErrUnknownCity         = errors.New("unknown city")
	ErrUnknownNeighborhood = errors.New("unknown neighborhood")
	ErrDistrictMismatch    = errors.New("district mismatch")
	ErrInvalidDisplayName  = errors.New("invalid display name")
)
