// Command singlishd serves the Sinhala conversions over HTTP.
//
// Flags may also be given as environment variables with prefix SINGLISH_,
// e.g. SINGLISH_PORT=8080, or in a .env file.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/sinhala"
	"github.com/npillmayer/sinhala/internal/server"
	"github.com/npillmayer/sinhala/tables"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

// tracer traces with key 'sinhala'
func tracer() tracing.Trace {
	return tracing.Select("sinhala")
}

func main() {
	if err := mainE(); err != nil {
		fmt.Fprintf(os.Stderr, "singlishd: %v\n", err)
		os.Exit(1)
	}
}

func mainE() error {
	_ = godotenv.Load()

	fs := ff.NewFlagSet("singlishd")
	var (
		port         = fs.Int64Long("port", 8080, "HTTP server port")
		maxBody      = fs.Int64Long("max-body", server.DefaultConfig.MaxBodyBytes, "maximum request body size in bytes")
		batchLimit   = fs.Int64Long("batch-limit", int64(server.DefaultConfig.BatchLimit), "maximum items per batch request")
		batchWorkers = fs.Int64Long("batch-workers", int64(server.DefaultConfig.BatchWorkers), "concurrent conversions per batch request")
		backend      = fs.StringEnumLong("backend", "rule lookup backend", sinhala.BackendDAT, sinhala.BackendTrie)
		traceLevel   = fs.StringEnumLong("trace", "trace level", "Info", "Debug", "Error")
	)
	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVarPrefix("SINGLISH")); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	if err := setupTracing(*traceLevel); err != nil {
		return err
	}

	engine, err := tables.NewEngine(sinhala.WithBackend(*backend))
	if err != nil {
		return fmt.Errorf("loading tables: %w", err)
	}
	srv := server.New(engine, server.Config{
		MaxBodyBytes: *maxBody,
		BatchLimit:   int(*batchLimit),
		BatchWorkers: int(*batchWorkers),
	})

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", *port),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		tracer().Infof("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			tracer().Errorf("server shutdown: %v", err)
		}
	}()

	tracer().Infof("listening on port %d, backend=%s", *port, *backend)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func setupTracing(level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.sinhala":   level,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("configuring tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}
