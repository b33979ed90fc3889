// SPDX-License-Identifier: MIT

package device

import "errors"

var (
	// ErrPayload indicates an upload payload that does not follow the binary layout.
	ErrPayload = errors.New("device: malformed payload")

	// ErrNilSource indicates a nil Exporter passed to Upload.
	ErrNilSource = errors.New("device: nil source")

	// ErrDimensionMismatch indicates an operand whose length disagrees with the tensor shape.
	ErrDimensionMismatch = errors.New("device: dimension mismatch")

	// ErrOutOfRange indicates a tensor index outside its shape.
	ErrOutOfRange = errors.New("device: index out of range")
)
