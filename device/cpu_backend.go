// SPDX-License-Identifier: MIT

package device

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/densela/internal/wire"
)

// ensure interface compliance
var (
	_ Backend = (*CPUBackend)(nil)
	_ Tensor  = (*CPUTensor)(nil)
)

const cpuName = "cpu"

// CPUBackend decodes payloads into host-memory tensors.
type CPUBackend struct {
	log     zerolog.Logger
	metrics *metrics
	pool    sync.Pool
}

// NewCPUBackend returns a ready backend. See WithLogger and WithRegisterer.
func NewCPUBackend(opts ...Option) *CPUBackend {
	o := gatherOptions(opts...)
	b := &CPUBackend{
		log:     o.logger.With().Str("backend", cpuName).Logger(),
		metrics: newMetrics(o.registerer, cpuName),
	}
	b.pool.New = func() any { return &CPUTensor{} }

	return b
}

// Name implements Backend.
func (b *CPUBackend) Name() string { return cpuName }

// Upload implements Backend.
func (b *CPUBackend) Upload(src Exporter) (Tensor, error) {
	if src == nil {
		return nil, fmt.Errorf("CPUBackend.Upload: %w", ErrNilSource)
	}

	return b.UploadBytes(src.Bytes())
}

// UploadBytes implements Backend.
//
// Errors:
//   - ErrPayload (wrapping the layout error) for malformed payloads; such
//     payloads are counted as rejected and logged at warn level.
func (b *CPUBackend) UploadBytes(payload []byte) (Tensor, error) {
	t := b.pool.Get().(*CPUTensor)
	rows, cols, data, err := wire.DecodeMatrixInto(payload, t.data)
	if err != nil {
		t.data = data
		b.pool.Put(t)
		b.metrics.rejected.Inc()
		b.log.Warn().Err(err).Int("bytes", len(payload)).Msg("payload rejected")

		return nil, fmt.Errorf("CPUBackend.UploadBytes: %w: %w", ErrPayload, err)
	}
	t.rows, t.cols, t.data = rows, cols, data
	t.live = true

	b.metrics.uploads.Inc()
	b.metrics.uploadBytes.Add(float64(len(payload)))
	b.metrics.liveTensors.Inc()
	b.log.Debug().Int("rows", rows).Int("cols", cols).Int("bytes", len(payload)).Msg("tensor uploaded")

	return t, nil
}

// Release implements Backend. Foreign and already released tensors are ignored.
func (b *CPUBackend) Release(t Tensor) {
	ct, ok := t.(*CPUTensor)
	if !ok || ct == nil || !ct.live {
		return
	}
	ct.live = false
	ct.rows, ct.cols = 0, 0
	ct.data = ct.data[:0]
	b.metrics.liveTensors.Dec()
	b.pool.Put(ct)
}

// CPUTensor is a column-major host tensor: element (i, j) at j*rows + i.
type CPUTensor struct {
	data []float32
	rows int
	cols int
	live bool // handed out by Upload and not yet released
}

// Dims implements Tensor.
func (t *CPUTensor) Dims() (int, int) { return t.rows, t.cols }

// At implements Tensor.
func (t *CPUTensor) At(i, j int) (float32, error) {
	if i < 0 || i >= t.rows || j < 0 || j >= t.cols {
		return 0, fmt.Errorf("CPUTensor.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return t.data[j*t.rows+i], nil
}

// Sum implements Tensor.
func (t *CPUTensor) Sum() float32 {
	var s float32
	for _, v := range t.data {
		s += v
	}

	return s
}

// MatVec implements Tensor. Each column is contiguous, so the inner loop is
// a unit-stride dot product.
func (t *CPUTensor) MatVec(x []float32) ([]float32, error) {
	if len(x) != t.rows {
		return nil, fmt.Errorf("CPUTensor.MatVec: expected %d, got %d: %w", t.rows, len(x), ErrDimensionMismatch)
	}
	out := make([]float32, t.cols)
	for c := 0; c < t.cols; c++ {
		col := t.data[c*t.rows : (c+1)*t.rows]
		var s float32
		for r, v := range col {
			s += v * x[r]
		}
		out[c] = s
	}

	return out, nil
}

// ToHost implements Tensor.
func (t *CPUTensor) ToHost() []float32 {
	out := make([]float32, len(t.data))
	copy(out, t.data)

	return out
}
