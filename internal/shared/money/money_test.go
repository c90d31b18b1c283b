package money_test

import (
	"testing"

	"go-payroll/internal/shared/money"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{88.125, 88.13},
		{29.375, 29.38},
		{1.005, 1.01},
		{2.675, 2.68},
		{-1.005, -1.01},
		{587.5, 587.5},
		{0, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, money.Round2(tc.in), "round2(%v)", tc.in)
	}
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 66.7, money.Round1(200.0/3))
	assert.Equal(t, 0.1, money.Round1(0.05))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 88.13, money.Percent(587.5, 15))
	assert.Equal(t, 29.38, money.Percent(587.5, 5))
}
