package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"
	"github.com/zephyrtronium/wordcalc"
	"github.com/zephyrtronium/wordcalc/internal/api"
	"github.com/zephyrtronium/wordcalc/internal/config"
	"github.com/zephyrtronium/wordcalc/internal/mcpserver"
)

func main() {
	log.SetFlags(0)
	cfg := config.Load()
	var (
		inpat, verb, addr  string
		number, echo, mcpf bool
		prec               int
	)
	flag.StringVar(&inpat, "in", "", "input file or pattern like notes/**/*.txt, one expression per line (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.IntVar(&prec, "p", int(cfg.Prec), "precision of calculations in bits")
	flag.BoolVar(&number, "number", false, "parse number phrases instead of equations")
	flag.BoolVar(&echo, "echo", false, "print normalized input before each result")
	flag.StringVar(&addr, "serve", "", "serve the HTTP API on `addr`, e.g. :8090")
	flag.BoolVar(&mcpf, "mcp", false, "serve MCP tools on stdin and stdout")
	flag.Parse()
	if prec <= 0 {
		log.Fatalf("precision (%d) must be positive", prec)
	}
	cfg.Prec = uint(prec)
	calc := wordcalc.NewContext(wordcalc.Prec(cfg.Prec))

	switch {
	case addr != "":
		cfg.Addr = addr
		if err := serveHTTP(calc, cfg); err != nil {
			log.Fatal(err)
		}
		return
	case mcpf:
		if err := server.ServeStdio(mcpserver.NewServer(calc)); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	r := runner{
		calc:   calc,
		out:    os.Stdout,
		errs:   os.Stderr,
		verb:   verb,
		number: number,
		echo:   echo,
	}
	failed := 0
	switch {
	case inpat == "-", inpat == "" && flag.NArg() == 0:
		n, err := r.run("stdin", os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
		failed += n
	case inpat != "":
		fsys, names, err := expand(inpat)
		if err != nil {
			log.Fatal(err)
		}
		for _, name := range names {
			f, err := fsys.Open(name)
			if err != nil {
				log.Fatal(err)
			}
			n, err := r.run(name, f)
			f.Close()
			if err != nil {
				log.Fatal(err)
			}
			failed += n
		}
	}
	for i, arg := range flag.Args() {
		if !r.line(fmt.Sprintf("arg %d", i+1), arg) {
			failed++
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// serveHTTP runs the HTTP API until SIGINT or SIGTERM.
func serveHTTP(calc *wordcalc.Context, cfg config.Config) error {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		return err
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      api.NewServer(calc, logger, cfg),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Graceful shutdown.
	done := make(chan struct{})
	go func() {
		defer close(done)
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	logger.Info("starting wordcalc", "addr", cfg.Addr, "prec", cfg.Prec, "auth", cfg.APIKey != "")
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", "error", err)
		return err
	}
	<-done
	return nil
}
