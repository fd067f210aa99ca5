package layout

import "errors"

var (
	// ErrEmptyDocument is returned when a document contributes no sections.
	ErrEmptyDocument = errors.New("document has no sections")

	// ErrAmbiguousSheetName is returned when two supplied sheet names
	// normalize to the same name. The assembler never produces this; it
	// disambiguates with a numeric suffix.
	ErrAmbiguousSheetName = errors.New("ambiguous sheet name")

	// ErrInvalidLayoutMapping is returned when a layout mapping violates a
	// structural invariant. The wrapped message names the first violation.
	ErrInvalidLayoutMapping = errors.New("invalid layout mapping")
)
