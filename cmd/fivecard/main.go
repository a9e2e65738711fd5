package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/fivecard/internal/config"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Config  string           `short:"c" help:"Path to HCL configuration file" default:"fivecard.hcl" type:"path"`
	Debug   bool             `help:"Enable debug logging"`
	NoColor bool             `name:"no-color" help:"Disable styled output"`
	Version kong.VersionFlag `short:"v" help:"Show version"`
}

type CLI struct {
	Globals

	Eval     EvalCmd     `cmd:"" help:"Classify a hand and print its strength"`
	Compare  CompareCmd  `cmd:"" help:"Compare two hands"`
	Deal     DealCmd     `cmd:"" help:"Shuffle a deck and deal a two-player showdown"`
	Simulate SimulateCmd `cmd:"" help:"Deal many showdowns and report how often each combination appears"`
}

// App carries what commands need once flags and configuration are resolved
type App struct {
	Config *config.Config
	Logger *log.Logger
	Out    io.Writer
	Styles *Styles
}

func newApp(g Globals, out, logOut io.Writer) (*App, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level := cfg.Level()
	if g.Debug {
		level = log.DebugLevel
	}

	return &App{
		Config: cfg,
		Logger: setupLogger(logOut, level),
		Out:    out,
		Styles: newStyles(out, cfg.Color() && !g.NoColor),
	}, nil
}

// setupLogger configures charmbracelet/log for console output
func setupLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: level == log.DebugLevel,
		Prefix:          "fivecard",
	})
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("fivecard"),
		kong.Description("Classify five-card poker hands and settle showdowns"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	app, err := newApp(cli.Globals, os.Stdout, os.Stderr)
	ctx.FatalIfErrorf(err)

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx.BindTo(sigCtx, (*context.Context)(nil))

	err = ctx.Run(app)
	ctx.FatalIfErrorf(err)
}
