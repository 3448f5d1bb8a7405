package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JangRuBin2/rulang/internal/cli"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run a rulang source file",
	Long:  `Compiles and runs a rulang program. Programs that declare an endpoint or a server port are served over HTTP until interrupted; all others run to completion and exit.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetInt("port")
		configPath, _ := cmd.Flags().GetString("config")
		redisURL, _ := cmd.Flags().GetString("redis-url")
		logLevel, _ := cmd.Flags().GetString("log-level")

		err := cli.Execute(cli.RunOptions{
			File:       args[0],
			Port:       port,
			LogLevel:   logLevel,
			ConfigPath: configPath,
			RedisURL:   redisURL,
		})
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntP("port", "p", 0, "listen port, overriding the program's own server statement")
	runCmd.Flags().String("config", "", "optional YAML file with host-level defaults (log_level, port)")
	runCmd.Flags().String("redis-url", "", "use a Redis-backed db store instead of the in-process default")
}
