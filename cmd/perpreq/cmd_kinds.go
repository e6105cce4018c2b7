package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"PerpRequest/internal/schema"
)

func init() {
	rootCmd.AddCommand(kindsCmd)
}

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "Print the operation kind / discriminant table",
	RunE: func(cmd *cobra.Command, args []string) error {
		for k := schema.KindCreateMarket; k <= schema.KindTransferPosition; k++ {
			fmt.Printf("%3d  %s\n", uint8(k), k)
		}
		return nil
	},
}
