package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/meetingassistant/meeting-assistant/internal/config"
	"github.com/meetingassistant/meeting-assistant/internal/logger"
	"github.com/meetingassistant/meeting-assistant/internal/processor"
	"github.com/meetingassistant/meeting-assistant/internal/summarizer"
	"github.com/meetingassistant/meeting-assistant/internal/transcriber"
)

const defaultConfigFile = "config.yaml"

type CLI struct {
	Config  string `help:"YAML config file (config.yaml is used when present)." type:"path"`
	EnvFile string `help:"Environment file loaded before reading settings." default:".env" name:"env-file"`

	Serve   ServeCmd   `cmd:"" default:"1" help:"Serve the meeting assistant web UI."`
	Watch   WatchCmd   `cmd:"" help:"Process recordings dropped into the inbox folder."`
	Process ProcessCmd `cmd:"" help:"Transcribe and summarize one recording and print the result."`
}

// app holds the components shared by every command
type app struct {
	cfg       *config.Config
	logger    logger.Logger
	processor processor.Processor
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("assistant"),
		kong.Description("AI meeting assistant: upload a recording, get a transcript and an Arabic summary."),
		kong.UsageOnError(),
	)

	ctx := context.Background()

	a, err := bootstrap(ctx, &cli)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Application failed to start: %v\n", err)
		os.Exit(1)
	}

	kctx.FatalIfErrorf(kctx.Run(a))
}

// bootstrap loads settings once and wires the request pipeline.
func bootstrap(ctx context.Context, cli *CLI) (*app, error) {
	if err := godotenv.Load(cli.EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load env file %s: %w", cli.EnvFile, err)
	}

	cfg, err := config.Load(configPath(cli.Config))
	if err != nil {
		return nil, err
	}

	log := logger.NewWithWriter(os.Stdout, cfg.Logging.Level, cfg.Logging.Format)
	log.Info(ctx, "Starting AI Meeting Assistant...")
	log.Debug(ctx, "Configuration: %s", cfg)

	tr, err := transcriber.New(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	sum, err := summarizer.New(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:       cfg,
		logger:    log,
		processor: processor.New(tr, sum, log),
	}, nil
}

func configPath(flag string) string {
	if flag != "" {
		return flag
	}
	if _, err := os.Stat(defaultConfigFile); err == nil {
		return defaultConfigFile
	}
	return ""
}
