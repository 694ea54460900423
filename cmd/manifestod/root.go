package main

import (
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "manifestod",
		Short: "Mars Manifesto contract host",
	}

	rootCmd.AddCommand(NewDemoCmd())

	return rootCmd
}
