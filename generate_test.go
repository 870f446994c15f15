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

func TestGeneratePrimeRejectsShortBitLength(t *testing.T) {
	setUp("info")

	_, err := GeneratePrime(64)
	assert.Error(t, err)
	var tooSmall *ErrBitLengthTooSmall
	assert.ErrorAs(t, err, &tooSmall)
}

func TestGeneratePrimeProducesRequestedBitLength(t *testing.T) {
	setUp("info")

	p, err := GeneratePrime(MinBitLength)
	assert.NoError(t, err)
	assert.Equal(t, MinBitLength, p.BitLen())

	ok, err := IsPrime(p)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestGenerateSafePrimeProducesRequestedBitLength(t *testing.T) {
	setUp("info")

	p, err := GenerateSafePrime(MinBitLength)
	assert.NoError(t, err)
	assert.Equal(t, MinBitLength, p.BitLen())

	ok, err := IsSafePrime(p)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestGenerateManyAggregatesResults(t *testing.T) {
	setUp("info")

	const count = 3
	ps, err := GenerateMany(count, MinBitLength)
	assert.NoError(t, err)
	assert.Len(t, ps, count)

	for _, p := range ps {
		ok, err := IsPrime(p)
		assert.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestCheckManyFindsComposites(t *testing.T) {
	setUp("info")

	prime, err := GeneratePrime(MinBitLength)
	assert.NoError(t, err)

	composite := new(big.Int).Mul(prime, big.NewInt(9))

	results, err := CheckMany([]*big.Int{prime, composite})
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, 0, composite.Cmp(results[0]))
}
