// SPDX-License-Identifier: MIT

package vector

import "errors"

// Every message is prefixed with "vector: ..." for consistency. Call sites
// wrap these with fmt.Errorf("Vector.<Method>...: %w", ErrX).
var (
	// ErrBadLength is returned when a requested length is negative.
	ErrBadLength = errors.New("vector: invalid length")

	// ErrLengthMismatch indicates two operands of different lengths.
	ErrLengthMismatch = errors.New("vector: length mismatch")

	// ErrOutOfRange indicates an index outside [0, Len()).
	ErrOutOfRange = errors.New("vector: index out of range")
)
