package landing

import "errors"

var (
	ErrPageNotFound      = errors.New("landing page not found")
	ErrUnknownTemplate   = errors.New("unknown template key")
	ErrUnknownSection    = errors.New("unknown content section")
	ErrUnknownField      = errors.New("unknown field for section")
	ErrInvalidValue      = errors.New("invalid value type for field")
	ErrEmptyFeatureField = errors.New("feature title and description are required")
	ErrBadReorder        = errors.New("reorder ids must be a permutation of existing item ids")
	ErrUnknownSectionKey = errors.New("unknown section key in settings")
)
