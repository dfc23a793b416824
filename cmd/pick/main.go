package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pick/internal/config"
	"pick/internal/ingest"
	"pick/internal/ui"
	"pick/internal/util/logx"
	"pick/internal/version"
)

func main() {
	logx.SetLevelFromEnv()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}

	if cfg.ShowVersion {
		fmt.Println("pick", version.String())
		return
	}

	// Drain the line snapshot before touching the terminal.
	lines, err := ingest.Read(ingest.Options{
		Source:      cfg.Source(),
		Path:        cfg.FilePath,
		ScanBufSize: cfg.MaxLineBytes,
		MaxLines:    cfg.MaxBuffer,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "input error:", err)
		os.Exit(1)
	}

	// Setup cancellation on SIGINT/SIGTERM
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logx.Infof("starting pick %s: %s lines=%d", version.String(), cfg.String(), len(lines))
	choice, ok, err := ui.Run(ctx, cfg, lines)
	if err != nil {
		logx.Errorf("pick exited with error: %v", err)
		fmt.Fprintln(os.Stderr, "pick:", err)
		os.Exit(1)
	}

	// The terminal session is fully released by now; stdout carries only
	// the selection. Cancellation prints nothing and still exits 0.
	if ok {
		fmt.Println(choice)
	}
}
