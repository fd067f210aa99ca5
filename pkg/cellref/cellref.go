// Package cellref converts between 1-based (row, column) pairs and Excel
// style cell addresses such as "B7" or "AA103".
package cellref

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidCoordinate is returned for non-positive rows/columns and for
// address strings that do not follow the <letters><digits> form.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Format converts a 1-based (row, col) pair to an Excel address.
// Column letters follow the bijective base-26 sequence A..Z, AA..AZ, ...
func Format(row, col int) (string, error) {
	if row < 1 || col < 1 {
		return "", fmt.Errorf("%w: row=%d col=%d", ErrInvalidCoordinate, row, col)
	}
	return ColumnName(col) + strconv.Itoa(row), nil
}

// ColumnName converts a 1-based column number to its letter form.
// Callers must pass col >= 1; Format validates on their behalf.
func ColumnName(col int) string {
	name := ""
	for col > 0 {
		col--
		name = string(rune('A'+col%26)) + name
		col /= 26
	}
	return name
}

// Parse converts an Excel address back to a 1-based (row, col) pair.
// It is the inverse of Format: Parse(Format(r, c)) == (r, c). Only canonical
// addresses are accepted; row digits with a sign or a leading zero ("A+1",
// "A01") fail, so no two distinct address strings decode to the same cell.
func Parse(addr string) (row, col int, err error) {
	if addr == "" {
		return 0, 0, fmt.Errorf("%w: empty address", ErrInvalidCoordinate)
	}

	i := 0
	for i < len(addr) && addr[i] >= 'A' && addr[i] <= 'Z' {
		col = col*26 + int(addr[i]-'A') + 1
		i++
	}
	if i == 0 || i == len(addr) || addr[i] == '0' {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidCoordinate, addr)
	}
	for j := i; j < len(addr); j++ {
		if addr[j] < '0' || addr[j] > '9' {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidCoordinate, addr)
		}
	}

	row, convErr := strconv.Atoi(addr[i:])
	if convErr != nil || row < 1 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidCoordinate, addr)
	}
	return row, col, nil
}
