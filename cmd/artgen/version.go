package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/sumanthreddy2024/artgen"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of artgen",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "artgen version %s\n", strings.TrimSpace(artgen.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
