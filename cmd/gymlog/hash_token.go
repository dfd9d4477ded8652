package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/2beens/gymlog/pkg"
)

var hashTokenCmd = &cobra.Command{
	Use:   "hash-token <token>",
	Short: "Print the bcrypt hash to put into GYMLOG_API_TOKEN_HASH",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cost, _ := cmd.Flags().GetInt("cost")
		hash, err := pkg.HashToken(args[0], cost)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), hash)
		return nil
	},
}

func init() {
	hashTokenCmd.Flags().Int("cost", pkg.TokenCost, "bcrypt cost")
}
