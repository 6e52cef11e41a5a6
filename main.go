package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"launchview/internal/bridge"
	"launchview/internal/config"
	"launchview/internal/host"
	"launchview/internal/trace"
	"launchview/internal/ui"
)

// hostExitTimeout is how long the host gets to exit after its stdin is closed
const hostExitTimeout = 2 * time.Second

// options holds command line overrides of the config file
type options struct {
	ConfigPath string
	LogFile    string
	TraceFile  string
	NoSearch   bool
}

func main() {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "launchview [flags] [-- host-command args...]",
		Short: "Terminal view for a launcher host process",
		Long: `launchview shows the results rendered by a host process, tracks the
selected result and forwards search, key, click and scroll events to the host.`,
		Example: `  # Run the host configured in config.toml
  launchview

  # Run a specific host
  launchview -- ./samplehost --entries apps.toml

  # Record bridge traffic and page it afterwards
  launchview --trace /tmp/lv.jsonl -- ./samplehost
  launchview trace /tmp/lv.jsonl`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, args)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to config file (default $"+config.EnvConfigPath+" or the user config dir)")
	rootCmd.Flags().StringVar(&opts.LogFile, "log-file", "", "Write logs to this file")
	rootCmd.Flags().StringVar(&opts.TraceFile, "trace", "", "Record bridge traffic to this file")
	rootCmd.Flags().BoolVar(&opts.NoSearch, "no-search", false, "Hide the search field")

	rootCmd.AddCommand(traceCmd(&opts))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func traceCmd(opts *options) *cobra.Command {
	var printOnly bool

	cmd := &cobra.Command{
		Use:   "trace [file]",
		Short: "Page a recorded bridge trace",
		Long: `Show a trace file recorded with --trace (or the [trace] file setting),
one line per message. Outbound events are marked → and host commands ←.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				cfg, err := loadConfig(opts.ConfigPath)
				if err != nil {
					return err
				}
				path = cfg.Trace.File
			}
			if path == "" {
				return errors.New("no trace file given and none configured")
			}

			if printOnly {
				f, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("failed to open trace file: %w", err)
				}
				defer f.Close()
				content, err := trace.Format(f)
				if err != nil {
					return err
				}
				_, err = io.WriteString(cmd.OutOrStdout(), content)
				return err
			}
			return trace.ShowFile(path)
		},
	}

	cmd.Flags().BoolVarP(&printOnly, "print", "p", false, "Print to stdout instead of paging")
	return cmd
}

func loadConfig(path string) (*config.Config, error) {
	svc := config.NewConfigService()
	if path != "" {
		svc = config.NewConfigServiceAt(path)
	}
	cfg, err := svc.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", svc.Path(), err)
	}
	return cfg, nil
}

func run(ctx context.Context, opts options, args []string) error {
	cfg, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	// Command line wins over the config file
	if len(args) > 0 {
		cfg.Host.Command = args[0]
		cfg.Host.Args = args[1:]
	}
	if opts.LogFile != "" {
		cfg.Log.File = opts.LogFile
	}
	if opts.TraceFile != "" {
		cfg.Trace.File = opts.TraceFile
	}
	if opts.NoSearch {
		cfg.UI.SearchBar = false
	}

	// Set up logging
	if cfg.Log.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		logFile, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			return fmt.Errorf("could not open log file: %w", err)
		}
		defer logFile.Close()
		log.SetOutput(logFile)
	} else {
		log.SetOutput(io.Discard)
	}

	// Start the host
	hostCtx, killHost := context.WithCancel(ctx)
	defer killHost()

	proc, err := host.Start(hostCtx, cfg.Host.Command, cfg.Host.Args, cfg.Host.Env)
	if err != nil {
		return err
	}

	var sink bridge.Sink = proc
	commands := proc.Stdout()
	if cfg.Trace.File != "" {
		recorder, err := trace.Open(cfg.Trace.File)
		if err != nil {
			killHost()
			return err
		}
		defer recorder.Close()
		sink = bridge.TeeSink{proc, recorder}
		commands = recorder.Tap(commands)
		log.Printf("Tracing bridge traffic to %s", cfg.Trace.File)
	}

	b := bridge.New(sink)

	// Create UI model
	log.Printf("Creating UI model...")
	model := ui.NewModel(cfg, b)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	api := ui.NewProgramAPI(p)

	// Feed host commands to the UI until the host goes away
	hostDone := make(chan struct{})
	go func() {
		defer close(hostDone)
		if err := host.Serve(commands, api); err != nil {
			log.Printf("Host: %v", err)
		}
		api.HostExited(proc.Wait())
	}()

	log.Printf("Starting UI...")
	_, runErr := p.Run()
	log.Printf("UI exited")

	// Deliver pending events, then ask the host to finish
	b.Close()
	if err := proc.Close(); err != nil {
		log.Printf("Failed to close host stdin: %v", err)
	}
	select {
	case <-hostDone:
	case <-time.After(hostExitTimeout):
		log.Printf("Host did not exit, killing it")
		killHost()
		<-hostDone
	}

	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return fmt.Errorf("error running program: %w", runErr)
	}
	return nil
}
