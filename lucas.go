// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primes

import "math/big"

// lucasTest performs Baillie's extra-strong Lucas probable-prime test
// against an odd n > 2. It implements Baillie-OEIS "method C" for
// choosing P (with D = P^2-4 and Q = 1): increasing P >= 3 is tried
// until Jacobi(D, n) = -1, which is expected to succeed within a few
// iterations for any non-square n.
func lucasTest(n *big.Int) (bool, error) {
	p := int64(3)
	d := new(big.Int)

	var j int
	for {
		if p > 10000 {
			return false, ErrLucasSearchExhausted
		}

		d.SetInt64(p * p)
		d.Sub(d, four)

		var err error
		j, err = jacobi(d, n)
		if err != nil {
			return false, err
		}

		if j == -1 {
			break
		}
		if j == 0 {
			// d = p^2-4 = (p-2)(p+2). Since the search proceeds from
			// p=3 upward and p-2 shares no factor with n at earlier
			// steps, the shared factor must be p+2: n is prime only
			// if p+2 == n.
			pPlus2 := big.NewInt(p + 2)
			return pPlus2.Cmp(n) == 0, nil
		}

		if p == 40 {
			sqrt := new(big.Int).Sqrt(n)
			if new(big.Int).Mul(sqrt, sqrt).Cmp(n) == 0 {
				return false, nil
			}
		}

		p++
	}

	// Grantham's "extra strong Lucas pseudoprime": n = 2^r s + Jacobi(D, n)
	// with s odd. Since gcd(n, 2D) = 1, s = (n+1) / 2^r.
	s := new(big.Int).Add(n, one)
	r := trailingZeros(s)
	s.Rsh(s, uint(r))

	nm2 := new(big.Int).Sub(n, two)

	bigP := big.NewInt(p)

	// Double the subscript of the Lucas V-sequence from k=0 up to k=s,
	// processing bits of s from most to least significant:
	//   V(2k)   = V(k)^2 - 2
	//   V(2k+1) = V(k) V(k+1) - P
	vk := new(big.Int).Set(two)
	vk1 := new(big.Int).Set(bigP)

	t1 := new(big.Int)
	t2 := new(big.Int)

	for i := s.BitLen() - 1; i >= 0; i-- {
		t1.Mul(vk, vk1)
		t1.Add(t1, n)
		t1.Sub(t1, bigP)

		if s.Bit(i) != 0 {
			vk.Mod(t1, n)

			t1.Mul(vk1, vk1)
			t1.Add(t1, nm2)
			vk1.Mod(t1, n)
		} else {
			vk1.Mod(t1, n)

			t1.Mul(vk, vk)
			t1.Add(t1, nm2)
			vk.Mod(t1, n)
		}
	}

	// Almost extra strong: check V(s) = +-2 mod n, then verify U(s) = 0
	// via P V(s) - 2 V(s+1) == 0 mod n (Crandall & Pomerance eq. 3.13),
	// avoiding the need to track the U-sequence directly.
	if vk.Cmp(two) == 0 || vk.Cmp(nm2) == 0 {
		t1.Mul(vk, bigP)
		t2.Lsh(vk1, 1)

		if t1.Cmp(t2) < 0 {
			t1, t2 = t2, t1
		}
		t1.Sub(t1, t2)
		t1.Mod(t1, n)

		if t1.Sign() == 0 {
			return true, nil
		}
	}

	// Otherwise check V(2^t s) = 0 mod n for some 0 <= t < r-1.
	for i := 0; i < r-1; i++ {
		if vk.Sign() == 0 {
			return true, nil
		}
		if vk.Cmp(two) == 0 {
			// V(k) = 2 is a fixed point of V(k') = V(k)^2-2: no future
			// term can be zero.
			return false, nil
		}

		t1.Mul(vk, vk)
		t1.Sub(t1, two)
		vk.Mod(t1, n)
	}

	return false, nil
}
