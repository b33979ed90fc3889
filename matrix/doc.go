// SPDX-License-Identifier: MIT

// Package matrix provides a dense float32 Matrix backed by a single
// vector.Vector in column-major order, with an O(1) lazy transpose.
//
// What & Why:
//
//	Storage is one flat buffer plus shape metadata. Transpose flips an
//	orientation flag instead of moving data; every accessor resolves logical
//	(row, col) through a single layout mapping, so the transposed and the
//	untransposed orientation can never disagree.
//
// Layout:
//
//	New takes a slice of columns. For New([][]float32{{3, 2, 4}, {4, 5, 6}})
//	the matrix has 2 columns and 3 rows:
//
//	    [3 4]
//	    [2 5]
//	    [4 6]
//
//	and the backing buffer is [3 2 4 4 5 6] (element (r, c) at c*rows + r).
//
// Mutation semantics:
//
//	Scalar and vector broadcasts mutate in place. Matrix-matrix elementwise
//	ops (AddMat, SubMat, MulMat, DivMat) rebuild storage from the two logical
//	flattenings, clear the transpose flag and adopt the operand's shape. The
//	package-level Add/Sub/Mul/Div clone the left operand first.
//
// Errors:
//
//	Every failure is a sentinel from errors.go wrapped with call-site context;
//	nothing panics on user input. Inverse, eigen decomposition and matrix
//	products are declared but return ErrNotImplemented.
//
// Complexity:
//
//	At/Set/Transpose O(1); Row/Col O(n); Flat O(rows*cols); Det O(n!).
package matrix
