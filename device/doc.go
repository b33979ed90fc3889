// SPDX-License-Identifier: MIT

// Package device consumes the binary matrix export on the accelerator side.
//
// A Backend decodes payloads of the form [rows:f32][cols:f32][elements...]
// (see matrix.Bytes) into device-resident Tensors. CPUBackend is the
// reference implementation: tensors live in host memory, are recycled through
// a sync.Pool, and every upload is counted in Prometheus metrics and logged
// through an injected zerolog.Logger.
//
// Tensors keep the column-major element order of the payload, so
// Tensor.At(i, j) and Tensor.MatVec agree with matrix.At and matrix.DotVec
// on the exported matrix.
//
// Concurrency: Upload and Release are safe for concurrent use; a Tensor is
// owned by one goroutine until released.
package device
