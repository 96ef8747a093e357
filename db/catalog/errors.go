package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrInvalidID = errors.New("invalid id")
)

type InvalidIDError struct {
	ID     string
	Reason string
}

type NotFoundError struct {
	Bucket string
	ID     string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("invalid id %s: %s", e.ID, e.Reason)
}

func (e *InvalidIDError) Is(target error) bool {
	return target == ErrInvalidID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Bucket, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
