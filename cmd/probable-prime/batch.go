// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	primes "github.com/binance-chain/probable-prime"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Generate several probable primes in one run, reporting any failures",
	RunE: func(cmd *cobra.Command, args []string) error {
		count := viper.GetInt("count")
		bits := viper.GetInt("bits")

		results, err := primes.GenerateMany(count, bits)
		for _, p := range results {
			fmt.Println(p.String())
		}
		if err != nil {
			logger.Warnf("%d of %d generation attempts failed: %s", count-len(results), count, err)
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().Int("count", 1, "number of primes to generate")
	batchCmd.Flags().Int("bits", primes.MinBitLength, "bit length of each generated prime")
}
