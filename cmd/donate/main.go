package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

var (
	// Version information (set via ldflags during build)
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	app := &cli.App{
		Name:  "donate",
		Usage: "Solana Actions donation endpoint",
		Description: `Serves a donate action that wallets and blink clients unfurl into buttons.

POST requests return an unsigned SOL transfer for the donor's wallet to sign.
Configuration is read from the environment (PORT, SOLANA_CLUSTER, RECIPIENT_ADDRESS, ...).`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Commands: []*cli.Command{
			serveCommand(),
			qrCommand(),
			versionCommand(),
		},
		DefaultCommand: "serve",
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print build information",
		Action: func(c *cli.Context) error {
			fmt.Fprintf(c.App.Writer, "donate %s\n  commit: %s\n  built:  %s\n", version, commit, date)
			return nil
		},
	}
}
