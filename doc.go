// Package densela is a small dense linear-algebra toolkit built around a
// column-major float32 Matrix layered on a float32 Vector.
//
// What is densela?
//
//	A focused, allocation-aware library that brings together:
//		• Vectors: elementwise and scalar arithmetic, dot product, byte form
//		• Matrices: construction from columns, O(1) lazy transpose,
//		  row-broadcast and elementwise kernels, cofactor determinant
//		• Serialization: a fixed f32 binary layout plus a CBOR codec
//		• Interop: a zero-copy gonum mat.Matrix view
//		• Device: a reference backend that consumes the binary layout
//
// Under the hood, everything is organized under these packages:
//
//	vector/          — the 1-D float32 container and its arithmetic
//	matrix/          — the column-major Matrix, kernels, codecs, gonum adapter
//	device/          — backend interface + CPU backend (zerolog, prometheus)
//	internal/wire/   — the shared [rows][cols][elements...] f32 layout
//	internal/rng/    — deterministic seeded random sources
//
// Quick example:
//
//	m, _ := matrix.New([][]float32{{1, 2}, {3, 4}}) // two columns
//	m.Transpose()                                    // O(1), no copy
//	d, _ := m.Det()                                  // -2
//
// Not included: LU/QR solvers, inversion and eigen decomposition; those
// entry points exist and return matrix.ErrNotImplemented.
//
//	go get github.com/katalvlaran/densela
package densela
