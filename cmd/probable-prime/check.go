// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package main

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	primes "github.com/binance-chain/probable-prime"
)

var checkCmd = &cobra.Command{
	Use:   "check [n]",
	Short: "Test whether a number is a probable prime or safe prime",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, ok := new(big.Int).SetString(args[0], 10)
		if !ok {
			return errors.Errorf("probable-prime: %q is not a base-10 integer", args[0])
		}

		strong := viper.GetBool("strong")
		safe := viper.GetBool("safe")

		var (
			result bool
			err    error
		)
		switch {
		case safe && strong:
			result, err = primes.StrongIsSafePrime(n)
		case safe:
			result, err = primes.IsSafePrime(n)
		case strong:
			result, err = primes.StrongIsPrime(n)
		default:
			result, err = primes.IsPrime(n)
		}
		if err != nil {
			return err
		}

		fmt.Println(result)
		return nil
	},
}

func init() {
	checkCmd.Flags().Bool("strong", false, "use the Baillie-PSW strong oracle")
	checkCmd.Flags().Bool("safe", false, "check safe-prime status instead of plain primality")
}
