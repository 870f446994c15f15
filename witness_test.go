// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primes

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWitnessStreamYieldsRequestedCount(t *testing.T) {
	setUp("info")

	s := newWitnessStream(two, big.NewInt(1000), 7, rand.Reader)

	count := 0
	for {
		v, ok, err := s.next()
		assert.NoError(t, err)
		if !ok {
			break
		}
		assert.True(t, v.Cmp(two) >= 0)
		assert.True(t, v.Cmp(big.NewInt(1000)) < 0)
		count++
	}
	assert.Equal(t, 7, count)
}

func TestWitnessStreamAppendedValueIsFinal(t *testing.T) {
	setUp("info")

	sentinel := big.NewInt(999999)
	s := newWitnessStream(two, big.NewInt(1000), 3, rand.Reader).withAppended(sentinel)

	var last *big.Int
	count := 0
	for {
		v, ok, err := s.next()
		assert.NoError(t, err)
		if !ok {
			break
		}
		last = v
		count++
	}
	assert.Equal(t, 3, count)
	assert.Equal(t, 0, sentinel.Cmp(last))
}

func TestWitnessStreamEmpty(t *testing.T) {
	setUp("info")

	s := newWitnessStream(two, big.NewInt(1000), 0, rand.Reader)
	_, ok, err := s.next()
	assert.NoError(t, err)
	assert.False(t, ok)
}
