// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primes

import (
	"testing"

	otiaiprimes "github.com/otiai10/primes"
	"github.com/stretchr/testify/assert"
)

// TestSmallPrimeTableMatchesSieve cross-checks the literal small-prime
// table against an independently computed sieve, guarding against
// transcription errors in the hardcoded table.
func TestSmallPrimeTableMatchesSieve(t *testing.T) {
	setUp("info")

	sieved := otiaiprimes.Until(17863).List()

	// The sieve includes 2; the table stores odd primes only.
	odd := make([]int64, 0, len(sieved))
	for _, p := range sieved {
		if p == 2 {
			continue
		}
		odd = append(odd, int64(p))
	}

	assert.Equal(t, odd, smallPrimeValues)
}

func TestSmallPrimesMirrorLiteralTable(t *testing.T) {
	setUp("info")

	assert.Equal(t, len(smallPrimeValues), len(smallPrimes))
	for i, v := range smallPrimeValues {
		assert.Equal(t, v, smallPrimes[i].Int64())
	}
}
