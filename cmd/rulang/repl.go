package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JangRuBin2/rulang/internal/cli"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive rulang session",
	Run: func(cmd *cobra.Command, args []string) {
		logLevel, _ := cmd.Flags().GetString("log-level")
		if err := cli.ExecuteRepl(cli.ReplOptions{LogLevel: logLevel}); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
