package services

import (
	"errors"
	"testing"
)

func TestEstimateBurn(t *testing.T) {
	tests := []struct {
		name            string
		activity        string
		durationSeconds int
		want            int
		wantErr         error
	}{
		{"run 30 min", "run", 30 * 60, 330, nil},
		{"cycle 45 min", "cycle", 45 * 60, 360, nil},
		{"swim 20 min", "swim", 20 * 60, 200, nil},
		{"weights 60 min", "weights", 60 * 60, 360, nil},
		{"yoga 90 min", "yoga", 90 * 60, 360, nil},
		{"hiit 15 min", "hiit", 15 * 60, 195, nil},
		{"partial minute rounds", "run", 90, 17, nil}, // 1.5 min * 11 = 16.5
		{"unknown activity", "parkour", 600, 0, ErrUnknownActivity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EstimateBurn(tt.activity, tt.durationSeconds)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("EstimateBurn(%s, %d) = %d, want %d", tt.activity, tt.durationSeconds, got, tt.want)
			}
		})
	}
}
