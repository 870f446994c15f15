// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primes

import (
	"math/big"
	"testing"

	"github.com/ipfs/go-log"
	"github.com/stretchr/testify/assert"
)

func setUp(level string) {
	if err := log.SetLogLevel("probable-prime", level); err != nil {
		panic(err)
	}
}

func TestIsPrimeAgainstSmallPrimeTable(t *testing.T) {
	setUp("info")

	for _, p := range smallPrimes {
		ok, err := IsPrime(p)
		assert.NoError(t, err)
		assert.True(t, ok, "expected %s to be prime", p.String())
	}
}

func TestIsPrimeRejectsEvenAndUnity(t *testing.T) {
	setUp("info")

	ok, err := IsPrime(big.NewInt(4))
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = IsPrime(one)
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = IsPrime(two)
	assert.NoError(t, err)
	assert.True(t, ok)
}

// bigFromString parses a base-10 literal, failing the test on malformed
// input rather than silently returning nil.
func bigFromString(t *testing.T, s string) *big.Int {
	t.Helper()
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		t.Fatalf("could not parse %q as base-10 integer", s)
	}
	return n
}

// TestBailliePSWVectors walks a chain of known safe primes built by
// repeatedly doubling and incrementing a base value, confirming at each
// step that the candidate is a probable prime under IsPrime, that halving
// it yields a composite, and that the later members of the chain are
// additionally safe primes.
func TestBailliePSWVectors(t *testing.T) {
	setUp("info")

	type vector struct {
		base      string
		safeChain int
	}

	vectors := []vector{
		{"18088387217903330459", 5},
		{"33376463607021642560387296949", 5},
		{"170141183460469231731687303717167733089", 5},
		{"113910913923300788319699387848674650656041243163866388656000063249848353322899", 4},
		{"1675975991242824637446753124775730765934920727574049172215445180465220503759193372100234287270862928461253982273310756356719235351493321243304213304923049", 4},
		{"153739637779647327330155094463476939112913405723627932550795546376536722298275674187199768137486929460478138431076223176750734095693166283451594721829574797878338183845296809008576378039501400850628591798770214582527154641716248943964626446190042367043984306973709604255015629102866732543697075866901827761489", 3},
	}

	for _, v := range vectors {
		n := bigFromString(t, v.base)

		half := new(big.Int).Rsh(n, 1)
		ok, err := IsPrime(half)
		assert.NoError(t, err)
		assert.False(t, ok, "half of %s should be composite", v.base)

		ok, err = IsPrime(n)
		assert.NoError(t, err)
		assert.True(t, ok, "%s should be a probable prime", v.base)

		for i := 0; i < v.safeChain; i++ {
			n.Lsh(n, 1)
			n.Add(n, one)

			ok, err = IsSafePrime(n)
			assert.NoError(t, err)
			assert.True(t, ok, "chain element %s should be a safe prime", n.String())

			ok, err = IsPrime(n)
			assert.NoError(t, err)
			assert.True(t, ok)
		}
	}
}

func TestStrongOraclesAgreeWithPlainOracles(t *testing.T) {
	setUp("info")

	n := bigFromString(t, "170141183460469231731687303717167733089")

	plain, err := IsPrime(n)
	assert.NoError(t, err)
	strong, err := StrongIsPrime(n)
	assert.NoError(t, err)
	assert.Equal(t, plain, strong)
}
