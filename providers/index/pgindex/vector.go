package pgindex

import (
	"strconv"
	"strings"
)

// encodeVector renders a vector in pgvector's text input format,
// e.g. "[0.1,0.2,0.3]". float32 precision is preserved exactly by
// FormatFloat with bitSize 32.
func encodeVector(vector []float32) string {
	var sb strings.Builder
	sb.Grow(len(vector)*10 + 2)
	sb.WriteByte('[')
	for i, v := range vector {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatFloat(float64(v), 'f', -1, 32))
	}
	sb.WriteByte(']')
	return sb.String()
}
