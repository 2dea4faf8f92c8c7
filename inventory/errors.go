// inventory/errors.go
package inventory

import "errors"

var (
	// ErrNotFound means the referenced asset or request does not exist.
	ErrNotFound = errors.New("not found")

	// ErrOutOfStock means the asset has no available units to reserve.
	ErrOutOfStock = errors.New("asset out of stock")

	// ErrInvalidTransition means the request's current status does not
	// permit the target status.
	ErrInvalidTransition = errors.New("invalid status transition")
)
