// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primes

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFermatWitnessBaseTwoAcceptsPrimes(t *testing.T) {
	setUp("info")

	for _, p := range []int64{3, 5, 7, 11, 13, 101, 10007} {
		assert.True(t, fermatWitness(two, big.NewInt(p)), "%d should pass the Fermat test against base 2", p)
	}
}

func TestFermatWitnessBaseTwoRejectsComposite(t *testing.T) {
	setUp("info")

	assert.False(t, fermatWitness(two, big.NewInt(15)))
	assert.False(t, fermatWitness(two, big.NewInt(9)))
}

func TestFermatTestDrawsFromRand(t *testing.T) {
	setUp("info")

	ok, err := fermatTest(big.NewInt(104729), rand.Reader)
	assert.NoError(t, err)
	assert.True(t, ok)
}
