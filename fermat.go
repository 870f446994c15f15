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

// fermatTest draws a base uniformly from [1, n) and reports whether
// base^(n-1) mod n == 1. This is a cheap necessary condition checked
// before the more expensive Miller-Rabin and Lucas stages; a Fermat
// failure is conclusive proof of compositeness.
func fermatTest(n *big.Int, rand io.Reader) (bool, error) {
	base, err := randomBigInt(rand, one, n)
	if err != nil {
		return false, rngFailure(err)
	}
	return fermatWitness(base, n), nil
}

// fermatWitness reports whether base^(n-1) mod n == 1 for a
// caller-supplied base. It is split out from fermatTest so the relation
// can be exercised deterministically in tests.
func fermatWitness(base, n *big.Int) bool {
	nMinusOne := new(big.Int).Sub(n, one)
	result := new(big.Int).Exp(base, nMinusOne, n)
	return result.Cmp(one) == 0
}
