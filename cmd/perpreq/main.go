package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "perpreq",
	Short: "Build and inspect execution-engine requests",
	Long: `perpreq builds unsigned requests for the on-chain perpetuals engine
from a market directory file and prints them for inspection. It never signs
or submits anything; that is the transport layer's job.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
