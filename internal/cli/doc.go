// Package cli implements the logic behind cmd/rulang's subcommands,
// kept separate from cobra's command wiring so it can be tested
// without going through cobra.Command.Execute.
package cli
