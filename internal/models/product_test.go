package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscountPercent(t *testing.T) {
	tests := []struct {
		name     string
		original float64
		sale     float64
		want     int
	}{
		{"ten percent off", 15000000, 13500000, 10},
		{"half off", 200, 100, 50},
		{"no discount", 100, 100, 0},
		{"rounded to nearest", 300, 200, 33},
		{"free", 100, 0, 100},
		{"sale above original", 100, 150, 0},
		{"zero original", 0, 50, 0},
		{"negative sale", 100, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DiscountPercent(tt.original, tt.sale))
		})
	}
}
