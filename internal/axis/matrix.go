package axis

import (
	"fmt"
	"strings"
)

// Mat4 is a row-major 4x4 matrix.
type Mat4 [4][4]float32

// Identity returns the 4x4 identity matrix.
func Identity() Mat4 {
	var m Mat4
	for i := range m {
		m[i][i] = 1
	}
	return m
}

// Mul returns m * o.
func (m Mat4) Mul(o Mat4) Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[i][k] * o[k][j]
			}
			r[i][j] = sum
		}
	}
	return r
}

// IsIdentity reports whether m equals Identity().
func (m Mat4) IsIdentity() bool {
	return m == Identity()
}

// String prints one bracketed row per line.
func (m Mat4) String() string {
	var sb strings.Builder
	for i, row := range m {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "[%g %g %g %g]", row[0], row[1], row[2], row[3])
	}
	return sb.String()
}
