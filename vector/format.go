// SPDX-License-Identifier: MIT

package vector

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/densela/internal/wire"
)

const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// Equal reports whether v and other have the same length and bitwise-equal
// float comparisons element by element (NaN is never equal).
func (v *Vector) Equal(other *Vector) bool {
	if other == nil || len(v.data) != len(other.data) {
		return false
	}
	for i, x := range v.data {
		if x != other.data[i] {
			return false
		}
	}

	return true
}

// String renders the vector as "[a, b, c]" using the shortest float32 form.
func (v *Vector) String() string {
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i, x := range v.data {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(strconv.FormatFloat(float64(x), 'g', -1, 32))
	}
	b.WriteString(_fmtClose)

	return b.String()
}

// Bytes returns the export form: the length as a float32 word followed by
// every element, all native-endian.
// Complexity: O(n).
func (v *Vector) Bytes() []byte {
	out := make([]byte, 0, (1+len(v.data))*wire.WordSize)
	out = wire.AppendFloat32(out, float32(len(v.data)))

	return wire.AppendFloat32s(out, v.data)
}
