package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rulang",
	Short: "rulang runs and inspects declarative state-machine programs",
	Long:  `rulang parses, compiles, and runs programs written in the rulang DSL: state machines, HTTP endpoints, and the glue between them.`,
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (default info)")
}
