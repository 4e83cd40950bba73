package main

import (
	"fmt"

	"github.com/spf13/cobra"

	blog "github.com/shessenauer/samhesson-blog"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of blog",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "blog version %s\n", blog.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
