// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primes

import (
	"io"
	"math/big"
)

// requiredChecks returns the number of Miller-Rabin rounds to run against a
// candidate of the given bit length: floor(log2(bits)) + 5.
func requiredChecks(bits int) int {
	return log2Floor(bits) + 5
}

func log2Floor(n int) int {
	k := 0
	for n > 1 {
		n >>= 1
		k++
	}
	return k
}

// rewrite decomposes candidate-1 as 2^trials * d with d odd.
func rewrite(candidate *big.Int) (trials int, d *big.Int) {
	d = new(big.Int).Sub(candidate, one)
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		trials++
	}
	return trials, d
}

// millerRabin runs `limit` rounds of the Miller-Rabin test against
// candidate, drawing bases from rand. If strong is set, 2 is substituted
// as the final base rather than a random draw, matching the Baillie-PSW
// prescription used by the safe-prime oracle and generator.
func millerRabin(candidate *big.Int, limit int, strong bool, rand io.Reader) (bool, error) {
	trials, d := rewrite(candidate)
	if trials < 5 {
		trials = 5
	}

	candMinusOne := new(big.Int).Sub(candidate, one)

	stream := newWitnessStream(two, candidate, limit, rand)
	if strong {
		stream = stream.withAppended(two)
	}

	for {
		basis, ok, err := stream.next()
		if err != nil {
			return false, rngFailure(err)
		}
		if !ok {
			break
		}

		test := new(big.Int).Exp(basis, d, candidate)

		if test.Cmp(one) == 0 || test.Cmp(candMinusOne) == 0 {
			continue
		}

		composite := true
		for i := 1; i < trials; i++ {
			test.Exp(test, two, candidate)
			if test.Cmp(one) == 0 {
				return false, nil
			}
			if test.Cmp(candMinusOne) == 0 {
				composite = false
				break
			}
		}
		if composite {
			return false, nil
		}
	}

	return true, nil
}
