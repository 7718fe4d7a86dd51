package services

import "errors"

var (
	// ErrNotFound is returned by explicit id lookups that miss.
	ErrNotFound = errors.New("not found")
	// ErrOutOfStock is returned when a product has no warehouse stock left.
	ErrOutOfStock = errors.New("out of stock")
)
