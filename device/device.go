// SPDX-License-Identifier: MIT

package device

// Exporter is anything that produces the binary matrix layout
// (*matrix.Matrix satisfies it). A typed nil must return an empty payload
// rather than panic; Upload then fails with ErrPayload.
type Exporter interface {
	Bytes() []byte
}

// Tensor is a decoded matrix resident on a backend.
type Tensor interface {
	// Dims returns the logical (rows, cols) of the uploaded matrix.
	Dims() (rows, cols int)

	// At returns element (i, j), or ErrOutOfRange.
	At(i, j int) (float32, error)

	// Sum returns the total of all elements.
	Sum() float32

	// MatVec returns one dot product per column: out[c] = Σ_r t[r,c]*x[r].
	// len(x) must equal rows (ErrDimensionMismatch).
	MatVec(x []float32) ([]float32, error)

	// ToHost copies the elements to a Go slice in column-major order.
	ToHost() []float32
}

// Backend decodes payloads into tensors and manages their memory.
type Backend interface {
	Name() string

	// Upload decodes src.Bytes() into a Tensor.
	Upload(src Exporter) (Tensor, error)

	// UploadBytes decodes a raw payload into a Tensor.
	UploadBytes(payload []byte) (Tensor, error)

	// Release returns a tensor to the backend. The tensor must not be used
	// afterwards; releasing it again is a no-op.
	Release(t Tensor)
}
