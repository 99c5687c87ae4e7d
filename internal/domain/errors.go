package domain

import "errors"

var (
	// ErrNotFound is returned by repositories when no row matches.
	ErrNotFound = errors.New("not found")

	// ErrInvalidConstraint marks a size or category outside the closed
	// vocabulary arriving from a caller.
	ErrInvalidConstraint = errors.New("invalid constraint")

	// ErrAlreadyProcessed marks an accept/reject attempt on an order that
	// is no longer pending. The caller must not deduct stock again.
	ErrAlreadyProcessed = errors.New("order already processed")

	// ErrEmptySelection marks a submission with every member set to N/A.
	ErrEmptySelection = errors.New("selection has no sizes")
)
