package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"inbox-planner/config"
	"inbox-planner/internal/app"
	"inbox-planner/internal/pipeline"
	"inbox-planner/internal/report"
	"inbox-planner/pkg/log"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "planner:", err)
		os.Exit(1)
	}
}

func run() error {
	fs := pflag.NewFlagSet("planner", pflag.ExitOnError)
	fs.Int("gmail-max-items", 5, "number of recent emails to read")
	fs.Int("pipeline-calendar-limit", 10, "number of upcoming events to read")
	fs.String("pipeline-owner", "", "only keep meeting action items assigned to this person")
	fs.Bool("pipeline-commit", false, "book the proposed blocks on the calendar")
	fs.String("pipeline-log-file", "pipeline_logs.txt", "file the run diagnostics are appended to")
	fs.String("pipeline-export-path", "", "write the run as YAML to this file")
	fs.Int("schedule-lookahead-days", 3, "days ahead to look for free slots")
	docID := fs.String("meeting-doc", "", "Google Doc id of meeting notes to include")
	inputPath := fs.String("input", "", "plan a YAML file of items, events and tasks instead of the connected accounts")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	cfg, err := config.LoadWithFlags(fs)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	planner, err := app.Build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer planner.Close()

	now := time.Now().In(planner.Location)
	var out pipeline.RunOutput
	if *inputPath != "" {
		in, err := loadInput(*inputPath)
		if err != nil {
			return err
		}
		in.Window = planner.Window
		in.Now = now
		out, err = planner.UC.Run(ctx, in)
		if err != nil {
			return err
		}
	} else {
		out, err = planner.UC.Plan(ctx, pipeline.PlanInput{
			MeetingDocID: *docID,
			Commit:       cfg.Pipeline.Commit,
			Now:          now,
		})
		if err != nil {
			return err
		}
	}

	if err := report.Write(os.Stdout, out, planner.Location); err != nil {
		return err
	}

	if cfg.Pipeline.LogFile != "" {
		if err := report.AppendLog(cfg.Pipeline.LogFile, now, out.Diagnostics); err != nil {
			logger.Warnf(ctx, "Failed to append run log: %v", err)
		}
	}
	if cfg.Pipeline.ExportPath != "" {
		if err := report.ExportFile(cfg.Pipeline.ExportPath, out, now); err != nil {
			return err
		}
		logger.Infof(ctx, "Exported run %s to %s", out.RunID, cfg.Pipeline.ExportPath)
	}
	return nil
}
