package sqlbind

import (
	"github.com/pkg/errors"
)

// Render errors. Returned errors wrap one of these with position
// details, use errors.Is to tell them apart.
var (
	// ErrCountMismatch is returned when the number of placeholders
	// differs from the number of parameters.
	ErrCountMismatch = errors.New("placeholder count does not match parameter count")
	// ErrUnbalancedBlock is returned for an unmatched or nested
	// conditional block bracket.
	ErrUnbalancedBlock = errors.New("unbalanced conditional block")
	// ErrUnknownSpecifier is returned for a placeholder specifier
	// other than d, f, a or #.
	ErrUnknownSpecifier = errors.New("unknown specifier")
	// ErrForbiddenSpecifierForNull is returned when a null parameter
	// is bound to an a or # placeholder.
	ErrForbiddenSpecifierForNull = errors.New("forbidden specifier for null value")
	// ErrForbiddenInferredType is returned when a parameter bound to a
	// placeholder without specifier is not a scalar.
	ErrForbiddenInferredType = errors.New("forbidden type of unspecified parameter")
	// ErrInvalidValue is returned when a parameter can not be formatted
	// as the kind its specifier requires.
	ErrInvalidValue = errors.New("invalid parameter value")
	// ErrSkipOutsideBlock is returned when the skip marker is bound to a
	// placeholder that is not covered by a conditional block.
	ErrSkipOutsideBlock = errors.New("skip marker outside of conditional block")
)
