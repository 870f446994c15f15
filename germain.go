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

// GermainSafePrime pairs a Sophie Germain prime q with its safe prime
// p = 2q + 1.
type GermainSafePrime struct {
	q, p *big.Int
}

// Prime returns the Sophie Germain prime q.
func (g *GermainSafePrime) Prime() *big.Int {
	return g.q
}

// SafePrime returns the safe prime p = 2q + 1.
func (g *GermainSafePrime) SafePrime() *big.Int {
	return g.p
}

// Validate re-derives p from q and re-checks both for primality,
// confirming the pair was not corrupted or forged after construction.
func (g *GermainSafePrime) Validate() bool {
	if g.q == nil || g.p == nil {
		return false
	}
	if derivedSafePrime(g.q).Cmp(g.p) != 0 {
		return false
	}
	qOK, err := IsPrime(g.q)
	if err != nil || !qOK {
		return false
	}
	pOK, err := IsPrime(g.p)
	return err == nil && pOK
}

// TryGermainSafePrime packages prime as a GermainSafePrime after
// confirming it is prime and that 2*prime+1 is also prime.
func TryGermainSafePrime(prime *big.Int) (*GermainSafePrime, error) {
	if prime == nil {
		return nil, errors.New("probable-prime: prime is nil")
	}
	ok, err := IsPrime(prime)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New("probable-prime: candidate is not prime")
	}

	safe := derivedSafePrime(prime)
	ok, err = IsPrime(safe)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New("probable-prime: candidate is not a Sophie Germain prime")
	}

	return &GermainSafePrime{q: prime, p: safe}, nil
}

func derivedSafePrime(q *big.Int) *big.Int {
	p := new(big.Int).Mul(q, two)
	return p.Add(p, one)
}
