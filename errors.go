// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primes

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrBitLengthTooSmall is returned by GeneratePrime and GenerateSafePrime
// when the caller requests fewer than MinBitLength bits.
type ErrBitLengthTooSmall struct {
	Requested int
}

func (e *ErrBitLengthTooSmall) Error() string {
	return fmt.Sprintf("probable-prime: requested bit length %d is below the minimum of %d", e.Requested, MinBitLength)
}

// ErrLucasSearchExhausted is raised by the extra-strong Lucas test when
// Baillie's method-C search for a suitable P exceeds 10000. This is
// believed unreachable for any legitimately-sized candidate and signals
// algorithmic corruption rather than a normal test failure.
var ErrLucasSearchExhausted = errors.New("probable-prime: Lucas P-search exceeded 10000")

// rngFailure wraps a failure reading from the configured entropy source.
// It is never retried: any RNG error aborts the calling operation.
func rngFailure(cause error) error {
	return errors.Wrap(cause, "probable-prime: entropy source failure")
}
