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

// isPrime runs the composite primality oracle against candidate: trial
// division against the small-prime table, a Fermat test with a
// randomly drawn base, and `checks` rounds of Miller-Rabin. When strong
// is set, base 2 is forced as the final Miller-Rabin witness and an
// extra-strong Lucas test is additionally required, giving the full
// Baillie-PSW oracle.
func isPrime(candidate *big.Int, checks int, strong bool, rand io.Reader) (bool, error) {
	if candidate.Cmp(two) == 0 {
		return true, nil
	}
	if candidate.Bit(0) == 0 || candidate.Cmp(one) == 0 {
		return false, nil
	}

	m := new(big.Int)
	for _, p := range smallPrimes {
		m.Mod(candidate, p)
		if m.Sign() == 0 {
			return candidate.Cmp(p) == 0, nil
		}
	}

	fermatOK, err := fermatTest(candidate, rand)
	if err != nil {
		return false, err
	}
	if !fermatOK {
		return false, nil
	}

	ok, err := millerRabin(candidate, checks, strong, rand)
	if err != nil || !ok {
		return ok, err
	}

	if !strong {
		return true, nil
	}

	return lucasTest(candidate)
}

// isSafePrime tests whether candidate is a safe prime: candidate ≡ 2
// (mod 3) per https://eprint.iacr.org/2003/186.pdf, candidate itself is
// prime, and (candidate-1)/2 is prime. The inner primality checks share
// `checks` and `strong` with the caller.
func isSafePrime(candidate *big.Int, checks int, strong bool, rand io.Reader) (bool, error) {
	mod3 := new(big.Int).Mod(candidate, three)
	if mod3.Cmp(two) != 0 {
		return false, nil
	}

	ok, err := isPrime(candidate, checks, strong, rand)
	if err != nil || !ok {
		return ok, err
	}

	germain := new(big.Int).Rsh(candidate, 1)
	return isPrime(germain, checks, strong, rand)
}

// IsPrime reports whether n is probably prime using trial division, a
// Fermat test, and log2(bits)+5 rounds of Miller-Rabin with
// independently random bases. It draws randomness from crypto/rand. For
// the full Baillie-PSW confidence level, use StrongIsPrime.
func IsPrime(n *big.Int) (bool, error) {
	return isPrime(n, requiredChecks(n.BitLen()), false, defaultRand())
}

// StrongIsPrime reports whether n is probably prime using Baillie-PSW:
// base 2 takes the place of the final randomly drawn Miller-Rabin
// witness, and an extra-strong Lucas test is additionally required. This
// matches the oracle used internally by GeneratePrime.
func StrongIsPrime(n *big.Int) (bool, error) {
	return isPrime(n, requiredChecks(n.BitLen()), true, defaultRand())
}

// IsSafePrime reports whether n is a safe prime: n ≡ 2 (mod 3), n itself
// is prime, and (n-1)/2 is also prime. The congruence filter means 7 is
// reported false. Both checks use the full log2(bits)+5
// Miller-Rabin round count; unlike GenerateSafePrime, this standalone
// oracle never reduces the round count for the Sophie Germain half.
func IsSafePrime(n *big.Int) (bool, error) {
	return isSafePrime(n, requiredChecks(n.BitLen()), false, defaultRand())
}

// StrongIsSafePrime reports whether n is a safe prime, using the same
// forced-base-2 strong oracle as GenerateSafePrime.
func StrongIsSafePrime(n *big.Int) (bool, error) {
	return isSafePrime(n, requiredChecks(n.BitLen()), true, defaultRand())
}
