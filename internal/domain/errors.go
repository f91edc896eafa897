package domain

import "errors"

var (
	// ErrNilItem is returned when a parsing entry point receives no item.
	ErrNilItem = errors.New("event not defined")
	// ErrNotReady is returned while no board snapshot has been fetched yet.
	ErrNotReady = errors.New("board not ready")
)
