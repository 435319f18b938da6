package domain

import (
	"errors"
	"testing"
)

func TestWallLayout(t *testing.T) {
	want := [WallSize][WallSize]Color{
		{Blue, Yellow, Red, Black, Aqua},
		{Aqua, Blue, Yellow, Red, Black},
		{Black, Aqua, Blue, Yellow, Red},
		{Red, Black, Aqua, Blue, Yellow},
		{Yellow, Red, Black, Aqua, Blue},
	}
	for row := 0; row < WallSize; row++ {
		for col := 0; col < WallSize; col++ {
			if got := WallColor(row, col); got != want[row][col] {
				t.Fatalf("WallColor(%d,%d) = %v, want %v", row, col, got, want[row][col])
			}
		}
	}
}

func TestWallColumnRoundTrip(t *testing.T) {
	for row := 0; row < WallSize; row++ {
		for _, c := range Colors {
			col := WallColumn(row, c)
			if got := WallColor(row, col); got != c {
				t.Fatalf("WallColor(%d, WallColumn(%d, %v)) = %v", row, row, c, got)
			}
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{in: "RED", want: Red},
		{in: "red", want: Red},
		{in: "Aqua", want: Aqua},
		{in: "yellow", want: Yellow},
		{in: "PURPLE", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidColor) {
					t.Fatalf("ParseColor(%q) err = %v, want ErrInvalidColor", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
