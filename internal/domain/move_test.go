package domain

import (
	"errors"
	"testing"
)

func TestParseMove(t *testing.T) {
	const numFactories = 5

	tests := []struct {
		name    string
		token   string
		want    Move
		wantErr error
	}{
		{name: "center red line 3", token: "0_RED_3", want: Move{Source: 0, Color: Red, Line: 3}},
		{name: "factory black line 1", token: "2_BLACK_1", want: Move{Source: 2, Color: Black, Line: 1}},
		{name: "lower case color", token: "1_aqua_0", want: Move{Source: 1, Color: Aqua, Line: 0}},
		{name: "last factory", token: "5_BLUE_4", want: Move{Source: 5, Color: Blue, Line: 4}},
		{name: "one separator", token: "0_RED", wantErr: ErrMalformedToken},
		{name: "three separators", token: "0_RED_3_4", wantErr: ErrMalformedToken},
		{name: "source not a number", token: "x_RED_3", wantErr: ErrInvalidSource},
		{name: "source past factories", token: "6_RED_3", wantErr: ErrInvalidSource},
		{name: "negative source", token: "-1_RED_3", wantErr: ErrInvalidSource},
		{name: "unknown color", token: "0_PURPLE_3", wantErr: ErrInvalidColor},
		{name: "line not a number", token: "0_RED_x", wantErr: ErrInvalidLine},
		{name: "line out of range", token: "0_RED_9", wantErr: ErrInvalidLine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMove(tt.token, numFactories)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseMove(%q) err = %v, want %v", tt.token, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMove(%q) unexpected error: %v", tt.token, err)
			}
			if got != tt.want {
				t.Fatalf("ParseMove(%q) = %+v, want %+v", tt.token, got, tt.want)
			}
		})
	}
}

func TestMoveTokenRoundTrip(t *testing.T) {
	m := Move{Source: 2, Color: Black, Line: 1}
	got, err := ParseMove(m.Token(), 5)
	if err != nil {
		t.Fatalf("ParseMove(%q): %v", m.Token(), err)
	}
	if got != m {
		t.Fatalf("round trip = %+v, want %+v", got, m)
	}
}
