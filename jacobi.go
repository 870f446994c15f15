// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primes

import (
	"math/big"

	"github.com/pkg/errors"
)

var (
	five  = big.NewInt(5)
	eight = big.NewInt(8)
)

// jacobi computes the Jacobi symbol (x/y) for odd y != 0, returning -1,
// 0, or +1. It panics-free on bad input; instead it reports an error,
// since y is required to be odd for the symbol to be defined.
func jacobi(x, y *big.Int) (int, error) {
	if y.Bit(0) == 0 {
		return 0, errors.Errorf("jacobi: y must be odd, got %s", y.String())
	}

	a := new(big.Int).Set(x)
	b := new(big.Int).Set(y)
	j := 1

	if b.Sign() < 0 {
		if a.Sign() < 0 {
			j = -1
		}
		b.Neg(b)
	}

	mod8 := new(big.Int)
	mod4a := new(big.Int)
	mod4b := new(big.Int)

	for {
		if b.Cmp(one) == 0 {
			return j, nil
		}
		if a.Sign() == 0 {
			return 0, nil
		}

		// Floored modulus: math/big's Mod already returns a result with
		// the sign of the (positive) modulus, i.e. it is floored here.
		a.Mod(a, b)
		if a.Sign() == 0 {
			return 0, nil
		}

		// Factor out powers of two from a: a = 2^s * c.
		s := trailingZeros(a)
		if s&1 != 0 {
			mod8.Mod(b, eight)
			if mod8.Cmp(three) == 0 || mod8.Cmp(five) == 0 {
				j = -j
			}
		}
		c := new(big.Int).Rsh(a, uint(s))

		mod4b.Mod(b, four)
		mod4a.Mod(c, four)
		if mod4b.Cmp(three) == 0 && mod4a.Cmp(three) == 0 {
			j = -j
		}

		a, b = b, c
	}
}

// trailingZeros returns the number of least-significant zero bits of n.
// n must be non-zero.
func trailingZeros(n *big.Int) int {
	i := 0
	for n.Bit(i) == 0 {
		i++
	}
	return i
}
