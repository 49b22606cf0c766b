package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "authctl",
	Short: "CLI client for Simple Auth API",
	Long:  "Operator helpers for the auth service: log in for a token, hash seed passwords.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Hi! I'm authctl. Try 'authctl help'")
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
