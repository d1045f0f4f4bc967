package source

import "errors"

// Sentinel kinds for source errors.
var (
	ErrFetch      = errors.New("recipe fetch failed")
	ErrBadStatus  = errors.New("unexpected upstream status")
	ErrDecode     = errors.New("upstream payload decode failed")
	ErrNoRecipes  = errors.New("upstream returned no usable recipes")
	ErrMissingKey = errors.New("api key not configured")
)
