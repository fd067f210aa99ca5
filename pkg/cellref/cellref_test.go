package cellref

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		row      int
		col      int
		expected string
	}{
		{1, 1, "A1"},
		{3, 2, "B3"},
		{1, 26, "Z1"},
		{5, 27, "AA5"},
		{10, 28, "AB10"},
		{1, 702, "ZZ1"},
		{1, 703, "AAA1"},
		{1000, 1000, "ALL1000"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			got, err := Format(tt.row, tt.col)
			if err != nil {
				t.Fatalf("Format(%d, %d) failed: %v", tt.row, tt.col, err)
			}
			if got != tt.expected {
				t.Errorf("Format(%d, %d) = %s, want %s", tt.row, tt.col, got, tt.expected)
			}
		})
	}
}

func TestFormatInvalid(t *testing.T) {
	cases := [][2]int{{0, 1}, {1, 0}, {-3, 5}, {5, -1}}
	for _, c := range cases {
		if _, err := Format(c[0], c[1]); !errors.Is(err, ErrInvalidCoordinate) {
			t.Errorf("Format(%d, %d): expected ErrInvalidCoordinate, got %v", c[0], c[1], err)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		addr string
		row  int
		col  int
	}{
		{"A1", 1, 1},
		{"B3", 3, 2},
		{"Z1", 1, 26},
		{"AA5", 5, 27},
		{"ZZ1", 1, 702},
		{"AAA1", 1, 703},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			row, col, err := Parse(tt.addr)
			if err != nil {
				t.Fatalf("Parse(%s) failed: %v", tt.addr, err)
			}
			if row != tt.row || col != tt.col {
				t.Errorf("Parse(%s) = (%d, %d), want (%d, %d)", tt.addr, row, col, tt.row, tt.col)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, addr := range []string{"", "123", "ABC", "a1", "A0", "A01", "A00", "A+1", "A-1", "A1B", "1A"} {
		if _, _, err := Parse(addr); !errors.Is(err, ErrInvalidCoordinate) {
			t.Errorf("Parse(%q): expected ErrInvalidCoordinate, got %v", addr, err)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for row := 1; row <= 1000; row += 7 {
		for col := 1; col <= 1000; col += 13 {
			addr, err := Format(row, col)
			if err != nil {
				t.Fatalf("Format(%d, %d) failed: %v", row, col, err)
			}
			r, c, err := Parse(addr)
			if err != nil {
				t.Fatalf("Parse(%s) failed: %v", addr, err)
			}
			if r != row || c != col {
				t.Fatalf("round trip (%d, %d) -> %s -> (%d, %d)", row, col, addr, r, c)
			}
		}
	}
}

func BenchmarkFormat(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Format(i%1000+1, i%1000+1)
	}
}

func BenchmarkParse(b *testing.B) {
	addrs := []string{"A1", "Z99", "AA5", "ZZ1000", "AAA12"}
	for i := 0; i < b.N; i++ {
		Parse(addrs[i%len(addrs)])
	}
}
