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

// generateCandidate draws a uniform random non-negative integer of
// bitLength bits, forces it odd, and then left-shifts it (re-forcing the
// low bit each time) until its bit length reaches bitLength. This mirrors
// the reference generator's retry-by-shifting behavior instead of simply
// forcing the top bit, so a draw that comes up short is padded from the
// low end rather than pinned at the high end.
func generateCandidate(bitLength int, rand io.Reader) (*big.Int, error) {
	bytes := make([]byte, (bitLength+7)/8)
	if _, err := io.ReadFull(rand, bytes); err != nil {
		return nil, rngFailure(err)
	}

	candidate := new(big.Int).SetBytes(bytes)

	excess := uint(len(bytes)*8 - bitLength)
	candidate.Rsh(candidate, excess)

	candidate.SetBit(candidate, 0, 1)

	for candidate.BitLen() < bitLength {
		candidate.Lsh(candidate, 1)
		candidate.SetBit(candidate, 0, 1)
	}

	return candidate, nil
}

// generatePrime draws candidates of bitLength bits, one at a time, until
// the strong Baillie-PSW oracle accepts one. Candidates are generated
// and tested serially: this package never searches in parallel.
func generatePrime(bitLength int, rand io.Reader) (*big.Int, error) {
	if bitLength < MinBitLength {
		return nil, &ErrBitLengthTooSmall{Requested: bitLength}
	}

	checks := requiredChecks(bitLength)

	for {
		candidate, err := generateCandidate(bitLength, rand)
		if err != nil {
			return nil, err
		}

		ok, err := isPrime(candidate, checks, true, rand)
		if err != nil {
			return nil, err
		}
		if ok {
			return candidate, nil
		}
	}
}

// requiredSafePrimeChecks returns the reduced Miller-Rabin round count
// used for the Sophie Germain half inside generateSafePrime: the outer
// prime test inside generatePrime already ran the full round count
// against candidate, so the inner check on (candidate-1)/2 needs only
// `checks - 5` further rounds. This reduction is scoped to the
// generator; the standalone IsSafePrime/StrongIsSafePrime oracle always
// uses the full round count on both checks.
func requiredSafePrimeChecks(bits int) int {
	return requiredChecks(bits) - 5
}

// generateSafePrime draws candidate primes of bitLength bits until one
// is found that is also congruent to 2 mod 3 and whose Sophie Germain
// half is itself prime.
func generateSafePrime(bitLength int, rand io.Reader) (*big.Int, error) {
	if bitLength < MinBitLength {
		return nil, &ErrBitLengthTooSmall{Requested: bitLength}
	}

	checks := requiredSafePrimeChecks(bitLength)

	for {
		candidate, err := generatePrime(bitLength, rand)
		if err != nil {
			return nil, err
		}

		mod3 := new(big.Int).Mod(candidate, three)
		if mod3.Cmp(two) != 0 {
			continue
		}

		germain := new(big.Int).Rsh(candidate, 1)
		ok, err := isPrime(germain, checks, true, rand)
		if err != nil {
			return nil, err
		}
		if ok {
			return candidate, nil
		}
	}
}
