package minon

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

// DecimalLen returns the number of characters in the decimal rendering
// of n. n must be non-negative.
func DecimalLen[T constraints.Integer](n T) int {
	digits := 1
	for n >= 10 {
		n /= 10
		digits++
	}
	return digits
}

// AppendDecimal appends the decimal rendering of n to dst and returns
// the extended slice. n must be non-negative.
func AppendDecimal[T constraints.Integer](dst []byte, n T) []byte {
	return strconv.AppendUint(dst, uint64(n), 10)
}

// parseLength parses a length field's text as a non-negative integer
// that fits in an int. Sign characters, non-digits, empty text and
// overflow all fail.
func parseLength(text []byte) (int, error) {
	n, err := strconv.ParseUint(string(text), 10, strconv.IntSize-1)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
