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
)

// witnessStream is a finite lazy sequence of uniform big integers drawn
// from [lo, hi), optionally substituting a caller-supplied value for the
// final element. The length observed by a consumer always equals the
// amount the stream was constructed with, regardless of appending.
type witnessStream struct {
	lo, hi    *big.Int
	remaining int
	appended  *big.Int
	rand      io.Reader
}

// newWitnessStream constructs a stream of `amount` uniform integers in
// [lo, hi), sourced from rand.
func newWitnessStream(lo, hi *big.Int, amount int, rand io.Reader) *witnessStream {
	return &witnessStream{lo: lo, hi: hi, remaining: amount, rand: rand}
}

// withAppended arranges for x to be yielded as the final element of the
// stream instead of a fresh random draw. It does not change the number
// of elements the stream yields.
func (w *witnessStream) withAppended(x *big.Int) *witnessStream {
	w.appended = x
	return w
}

// next produces the next witness, or reports that the stream is
// exhausted. An error is only possible while drawing from the entropy
// source.
func (w *witnessStream) next() (*big.Int, bool, error) {
	if w.remaining == 0 {
		return nil, false, nil
	}
	if w.remaining == 1 && w.appended != nil {
		w.remaining--
		return w.appended, true, nil
	}
	w.remaining--
	v, err := randomBigInt(w.rand, w.lo, w.hi)
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

// randomBigInt draws a uniform integer in [lo, hi) from rand.
func randomBigInt(rand io.Reader, lo, hi *big.Int) (*big.Int, error) {
	span := new(big.Int).Sub(hi, lo)
	v, err := cryptorand.Int(rand, span)
	if err != nil {
		return nil, err
	}
	return v.Add(v, lo), nil
}
