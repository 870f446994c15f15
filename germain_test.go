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

func TestTryGermainSafePrimeRoundTrip(t *testing.T) {
	setUp("info")

	p, err := GenerateSafePrime(MinBitLength)
	assert.NoError(t, err)

	// GenerateSafePrime returns the safe prime p itself; its Sophie
	// Germain half is (p-1)/2.
	germainPrime := new(big.Int).Rsh(p, 1)

	g, err := TryGermainSafePrime(germainPrime)
	assert.NoError(t, err)
	assert.Equal(t, 0, g.SafePrime().Cmp(p))
	assert.True(t, g.Validate())
}

func TestTryGermainSafePrimeRejectsComposite(t *testing.T) {
	setUp("info")

	_, err := TryGermainSafePrime(big.NewInt(9))
	assert.Error(t, err)
}

func TestTryGermainSafePrimeRejectsNil(t *testing.T) {
	setUp("info")

	_, err := TryGermainSafePrime(nil)
	assert.Error(t, err)
}
