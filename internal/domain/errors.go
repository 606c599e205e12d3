package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrNothingToUpdate = errors.New("nothing to update")
)
