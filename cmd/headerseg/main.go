// Command headerseg shows how header field values split into segments.
//
// Usage:
//
//	headerseg split [file ...]
//	headerseg serve
//
// split reads a header block from each file, or from standard input,
// and prints the segments of every field. serve runs an HTTP service
// that answers with the segments of each request's own headers.
//
// Settings come from app.env in the working directory and from
// the environment; see internal/config.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/vfaronov/headerseg/internal/config"
	"github.com/vfaronov/headerseg/internal/inspect"
	"github.com/vfaronov/headerseg/internal/report"
	"golang.org/x/sync/errgroup"
)

var interruptSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
	syscall.SIGINT,
}

const usage = "usage: headerseg split [file ...] | headerseg serve"

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	setupLogger(cfg)

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "split":
		err = runSplit(os.Stdin, os.Stdout, cfg, args)
	case "serve":
		err = runServe(cfg)
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Str("command", os.Args[1]).Msg("failed")
	}
}

func setupLogger(cfg config.Config) {
	if cfg.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		log.Logger = log.Output(os.Stderr)
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Str("level", cfg.LogLevel).Msg("unknown log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}

// runSplit reports on each named file, or on stdin if there are none.
// Files are read concurrently; output keeps the order of the arguments.
func runSplit(stdin io.Reader, stdout io.Writer, cfg config.Config, files []string) error {
	opts := report.Options{DataOnly: cfg.DataOnly}

	if len(files) == 0 {
		h, err := report.ReadHeader(stdin)
		if err != nil {
			return err
		}
		return report.Write(stdout, cfg.OutputFormat,
			[]report.Document{{Fields: report.Build(h, opts)}})
	}

	docs := make([]report.Document, len(files))
	var group errgroup.Group
	for i, name := range files {
		group.Go(func() error {
			f, err := os.Open(name)
			if err != nil {
				return err
			}
			defer f.Close()

			h, err := report.ReadHeader(f)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			docs[i] = report.Document{Source: name, Fields: report.Build(h, opts)}
			log.Debug().Str("file", name).Int("fields", len(h)).Msg("read header block")
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}
	return report.Write(stdout, cfg.OutputFormat, docs)
}

func runServe(cfg config.Config) error {
	// stop() or a signal catch makes context Done
	ctx, stop := signal.NotifyContext(context.Background(), interruptSignals...)
	defer stop()

	service := inspect.NewService(cfg)
	waitGroup, ctx := errgroup.WithContext(ctx)

	waitGroup.Go(func() error {
		log.Info().Msgf("start HTTP server at %s", cfg.HTTPServerAddress)
		err := service.Start()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		log.Error().Err(err).Msg("cannot start HTTP server")
		return err
	})

	waitGroup.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("HTTP server: graceful shutdown")

		toCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := service.Shutdown(toCtx)
		if err != nil {
			log.Error().Err(err).Msg("cannot shutdown HTTP server gracefully")
		}
		log.Info().Msg("HTTP server is stopped")
		return err
	})

	return waitGroup.Wait()
}
