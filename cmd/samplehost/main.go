package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var (
		entriesPath  string
		pageSize     int
		exitOnLaunch bool
	)

	cmd := &cobra.Command{
		Use:   "samplehost [flags]",
		Short: "Minimal launcher host for launchview",
		Long: `samplehost reads view events on stdin and writes view commands on stdout.
It filters its entries on search, moves the selection with the arrow keys
and logs launches to stderr.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := defaultEntries
			if entriesPath != "" {
				var err error
				if entries, err = LoadEntries(entriesPath); err != nil {
					return err
				}
			}
			return serve(NewLauncher(entries, pageSize, exitOnLaunch, os.Stdout))
		},
	}

	cmd.Flags().StringVarP(&entriesPath, "entries", "e", "", "TOML file with [[entry]] tables")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "Send results in pages of this size (0 sends all)")
	cmd.Flags().BoolVar(&exitOnLaunch, "exit-on-launch", false, "Exit after launching an entry")

	log.SetFlags(0)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serve(l *Launcher) error {
	if err := l.Start(); err != nil {
		return fmt.Errorf("failed to send results: %w", err)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		done, err := l.HandleLine(scanner.Bytes())
		if err != nil {
			return fmt.Errorf("failed to write command: %w", err)
		}
		if done {
			return nil
		}
	}
	return scanner.Err()
}
