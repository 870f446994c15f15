// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package primes generates and validates large probable primes and safe
// primes for cryptographic use.
//
// A candidate is accepted by a layered primality test: trial division
// against the 2047 odd primes from 3 to 17863, a one-shot Fermat test, and a
// Miller-Rabin test with a bit-length-dependent witness count. The
// "strong" / Baillie-PSW variants additionally force base 2 as a
// Miller-Rabin witness and require an extra-strong Lucas test with
// Baillie's method-C parameter search.
//
// The package is single-threaded and synchronous: no operation here
// blocks on anything but the configured entropy source, and there is no
// cancellation support. Callers wanting a deadline should run a
// generation call on a goroutine they can abandon.
package primes
