package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JangRuBin2/rulang/internal/cli"
)

var vetCmd = &cobra.Command{
	Use:   "vet <file>",
	Short: "Check a program's state machines for unreachable states",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := cli.ExecuteVet(cli.VetOptions{File: args[0]}); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(vetCmd)
}
