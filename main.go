package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gamma-omg/doc-organizer/docstore"
	"github.com/gamma-omg/doc-organizer/readers"
	"github.com/mark3labs/mcp-go/server"
)

func newLogger(cfg *Config) (*slog.Logger, io.Closer, error) {
	if cfg.LogFile == "" {
		return slog.New(slog.NewTextHandler(os.Stderr, nil)), io.NopCloser(nil), nil
	}

	logFile, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return slog.New(slog.NewJSONHandler(logFile, nil)), logFile, nil
}

func newOrganizer(cfg *Config, logger *slog.Logger) (*Organizer, error) {
	store, err := docstore.NewFileStore(cfg.AnalysisDir)
	if err != nil {
		return nil, err
	}

	return &Organizer{
		log:         logger,
		analyzer:    NewAnalyzer(logger, cfg, &readers.MarkdownFileReader{}),
		reorganizer: NewReorganizer(logger, cfg.OutputDir, cfg.InputDir, cfg.AnalysisDir),
		store:       store,
		metrics:     NewMetrics(),
	}, nil
}

func main() {
	cfgPath := flag.String("config", "", "Configuration file, built-in defaults are used when empty")
	watch := flag.Bool("watch", false, "Re-run the analysis whenever a document changes")
	serve := flag.Bool("serve", false, "Serve the latest analysis over MCP")
	flag.Parse()

	cfg, err := readConfig(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}

	logger, closer, err := newLogger(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closer.Close()

	org, err := newOrganizer(cfg, logger)
	if err != nil {
		log.Fatal(err)
	}

	report, err := org.Run()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Analyzed %d documents (average quality %.1f/100)\n", report.TotalDocuments, report.Patterns.AverageQuality)
	fmt.Printf("Reports saved in: %s\n", cfg.AnalysisDir)
	fmt.Printf("Proposed structure in: %s\n", cfg.OutputDir)
	fmt.Println("Review the proposed structure before applying changes.")

	if !*watch && !*serve {
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if *watch {
		w := NewWatcher(logger, cfg, func() error {
			_, err := org.Run()
			return err
		})
		if err = w.Watch(ctx); err != nil {
			log.Fatal(err)
		}
	}

	if !*serve {
		<-ctx.Done()
		return
	}

	sse := server.NewSSEServer(NewAnalysisServer(org), server.WithBaseURL(fmt.Sprintf("http://%s", cfg.ServerAddr)))
	go func() {
		<-ctx.Done()
		if err := sse.Shutdown(context.Background()); err != nil {
			logger.Error("failed to stop server", "error", err)
		}
	}()

	logger.Info("serving analysis", "addr", cfg.ServerAddr)
	log.Println(sse.Start(cfg.ServerAddr))
}
