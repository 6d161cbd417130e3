// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestDBToGain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		db   float64
		want float64
	}{
		{
			name: "unity",
			db:   0,
			want: 1.0,
		},
		{
			name: "minus six",
			db:   -6,
			want: 0.5012,
		},
		{
			name: "minus one",
			db:   -1,
			want: 0.8913,
		},
		{
			name: "plus six",
			db:   6,
			want: 1.9953,
		},
		{
			name: "minus twenty",
			db:   -20,
			want: 0.1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := DBToGain(tt.db)
			if math.Abs(got-tt.want) > 1e-3 {
				t.Errorf("DBToGain(%v) = %v, want %v", tt.db, got, tt.want)
			}
		})
	}
}

func TestGainToDB(t *testing.T) {
	t.Parallel()

	if got := GainToDB(1.0); math.Abs(got) > 1e-9 {
		t.Errorf("GainToDB(1) = %v, want 0", got)
	}
	if got := GainToDB(0.1); math.Abs(got+20) > 1e-9 {
		t.Errorf("GainToDB(0.1) = %v, want -20", got)
	}
	if got := GainToDB(0); !math.IsInf(got, -1) {
		t.Errorf("GainToDB(0) = %v, want -Inf", got)
	}
	if got := GainToDB(-1); !math.IsInf(got, -1) {
		t.Errorf("GainToDB(-1) = %v, want -Inf", got)
	}
}

// TestDBGainRoundTrip verifies the conversions invert each other
func TestDBGainRoundTrip(t *testing.T) {
	t.Parallel()

	for _, db := range []float64{-24, -12, -6, -1, 0, 1, 6, 12} {
		got := GainToDB(DBToGain(db))
		if math.Abs(got-db) > 1e-9 {
			t.Errorf("GainToDB(DBToGain(%v)) = %v, want %v", db, got, db)
		}
	}
}
