// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package main

import (
	"fmt"
	"math/big"

	"github.com/ipfs/go-log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	primes "github.com/binance-chain/probable-prime"
)

var logger = log.Logger("probable-prime")

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a random probable prime or safe prime",
	RunE: func(cmd *cobra.Command, args []string) error {
		bits := viper.GetInt("bits")
		safe := viper.GetBool("safe")

		var (
			n   *big.Int
			err error
		)

		if safe {
			logger.Infof("generating a %d-bit safe prime", bits)
			n, err = primes.GenerateSafePrime(bits)
		} else {
			logger.Infof("generating a %d-bit prime", bits)
			n, err = primes.GeneratePrime(bits)
		}
		if err != nil {
			return err
		}

		fmt.Println(n.String())
		return nil
	},
}

func init() {
	generateCmd.Flags().Int("bits", primes.MinBitLength, "bit length of the generated prime")
	generateCmd.Flags().Bool("safe", false, "generate a safe prime instead of an ordinary prime")
}
