package service

import (
	"testing"
	"time"
)

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			"wednesday",
			time.Date(2024, 1, 17, 15, 30, 0, 0, time.UTC),
			time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			"monday stays",
			time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			"sunday belongs to the week before",
			time.Date(2024, 1, 21, 23, 0, 0, 0, time.UTC),
			time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := startOfWeek(tt.in); !got.Equal(tt.want) {
				t.Errorf("startOfWeek(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
