// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primes

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJacobiKnownValues(t *testing.T) {
	setUp("info")

	cases := []struct {
		x, y int64
		want int
	}{
		{1, 1, 1},
		{0, 1, 1},
		{2, 1, 1},
		{15, 1, 1},
		{1, 3, 1},
		{2, 3, -1},
		{29, 9, 1},
		{4, 9, 1},
		{5, 21, 1},
		{2, 21, -1},
		{0, 9, 0},
	}

	for _, c := range cases {
		got, err := jacobi(big.NewInt(c.x), big.NewInt(c.y))
		assert.NoError(t, err)
		assert.Equal(t, c.want, got, "jacobi(%d, %d)", c.x, c.y)
	}
}

func TestJacobiRejectsEvenModulus(t *testing.T) {
	setUp("info")

	_, err := jacobi(big.NewInt(3), big.NewInt(4))
	assert.Error(t, err)
}

func TestJacobiNegativeModulus(t *testing.T) {
	setUp("info")

	got, err := jacobi(big.NewInt(-3), big.NewInt(-5))
	assert.NoError(t, err)
	// (-3/-5): j starts at -1 since both a and b are negative, then
	// proceeds over |b|=5.
	assert.Equal(t, -1*mustJacobiAbs(t, 3, 5), got)
}

func mustJacobiAbs(t *testing.T, x, y int64) int {
	t.Helper()
	got, err := jacobi(big.NewInt(x), big.NewInt(y))
	assert.NoError(t, err)
	return got
}
