// SPDX-License-Identifier: MIT

// Package vector provides the one-dimensional float32 container that backs
// every matrix in this module.
//
// A Vector owns its storage. Mutating methods (Add, MulScalar, Apply, ...)
// work in place; the package-level Add/Sub/Mul/Div functions clone the left
// operand first and never alias their inputs.
//
// Errors are package sentinels (ErrBadLength, ErrLengthMismatch,
// ErrOutOfRange) wrapped with call-site context; match them with errors.Is.
//
// Bytes produces the export form consumed by accelerator backends: a 4-byte
// length word followed by each element, all as native-endian float32 words.
package vector
