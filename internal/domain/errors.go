package domain

import "errors"

var (
	// ErrNotFound signals an absent row or an empty listing page.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateSource signals an article whose source URL is already
	// persisted. Treated as a skip, not a failure.
	ErrDuplicateSource = errors.New("article already saved")

	// ErrMissingReference signals a seeding gap: an agency or category the
	// pipeline expected to exist does not.
	ErrMissingReference = errors.New("referenced row missing")
)
