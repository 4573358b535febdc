// Package matrix: human-readable rendering.

package matrix

import (
	"fmt"
	"strings"
)

// String renders the matrix as nested brackets, one row per line:
//
//	[[1 2 3]
//	[4 5 6]]
//
// Elements use %v formatting. The zero value renders as "[]".
func (m *Matrix[T]) String() string {
	if m.IsEmpty() {
		return "[]"
	}
	var (
		sb   strings.Builder
		cols = m.Cols()
	)
	sb.WriteByte('[')
	for i := 0; i < m.rows; i++ {
		sb.WriteByte('[')
		for j := 0; j < cols; j++ {
			fmt.Fprintf(&sb, "%v", m.data[i*cols+j])
			if j+1 < cols {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte(']')
		if i+1 < m.rows {
			sb.WriteByte('\n')
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
