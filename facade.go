// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primes

import (
	cryptorand "crypto/rand"
	"io"
	"math/big"

	"github.com/hashicorp/go-multierror"
)

// Option configures a generation or test call. The zero value of every
// option-bearing call uses crypto/rand as its entropy source.
type Option func(*options)

type options struct {
	rand io.Reader
}

func defaultRand() io.Reader {
	return cryptorand.Reader
}

func buildOptions(opts []Option) *options {
	o := &options{rand: defaultRand()}
	for _, apply := range opts {
		apply(o)
	}
	return o
}

// WithRand overrides the entropy source used by a generation call. It
// exists chiefly for deterministic testing; production callers should
// rely on the crypto/rand default.
func WithRand(rand io.Reader) Option {
	return func(o *options) {
		o.rand = rand
	}
}

// GeneratePrime returns a random probable prime of exactly bitLength
// bits. It returns *ErrBitLengthTooSmall if bitLength is below
// MinBitLength.
func GeneratePrime(bitLength int, opts ...Option) (*big.Int, error) {
	o := buildOptions(opts)
	return generatePrime(bitLength, o.rand)
}

// GenerateSafePrime returns a random safe prime of exactly bitLength
// bits: a probable prime p such that (p-1)/2 is also a probable prime.
// It returns *ErrBitLengthTooSmall if bitLength is below MinBitLength.
func GenerateSafePrime(bitLength int, opts ...Option) (*big.Int, error) {
	o := buildOptions(opts)
	return generateSafePrime(bitLength, o.rand)
}

// GenerateMany runs GeneratePrime count times, collecting every
// generated prime and returning a *multierror.Error if any attempt
// failed. Generation happens serially, one candidate stream after
// another; this package does not parallelize prime search.
func GenerateMany(count, bitLength int, opts ...Option) ([]*big.Int, error) {
	results := make([]*big.Int, 0, count)
	var errs *multierror.Error

	for i := 0; i < count; i++ {
		p, err := GeneratePrime(bitLength, opts...)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		results = append(results, p)
	}

	return results, errs.ErrorOrNil()
}

// CheckMany runs IsPrime against every candidate in ns, returning the
// subset found composite and a *multierror.Error aggregating any
// entropy-source failures encountered along the way.
func CheckMany(ns []*big.Int) (composite []*big.Int, err error) {
	var errs *multierror.Error

	for _, n := range ns {
		ok, checkErr := IsPrime(n)
		if checkErr != nil {
			errs = multierror.Append(errs, checkErr)
			continue
		}
		if !ok {
			composite = append(composite, n)
		}
	}

	return composite, errs.ErrorOrNil()
}
