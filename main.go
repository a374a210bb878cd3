package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/aleksi/catalog-browser/config"
	"github.com/aleksi/catalog-browser/internal/browser"
	"github.com/aleksi/catalog-browser/internal/catalog"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	config.LoadEnvFile()

	if level, err := zerolog.ParseLevel(config.LogLevel()); err != nil {
		log.Warn().Str("level", config.LogLevel()).Msg("unknown log level, using info")
	} else {
		zerolog.SetGlobalLevel(level)
	}

	// Cancel on SIGINT or SIGTERM
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	client := catalog.NewClient(catalog.ClientOpts{BaseURL: config.CatalogURL()})

	stopSpinner := startSpinner()
	model, err := client.FetchModel(ctx)
	stopSpinner()
	if err != nil {
		log.Fatal().Err(err).Str("url", config.CatalogURL()).Msg("failed to load catalog")
	}

	log.Info().
		Int("products", len(catalog.AllProducts(model))).
		Str("url", config.CatalogURL()).
		Msg("catalog loaded")

	b := browser.New(model, client, os.Stdout)
	if err := b.Run(ctx, os.Stdin); err != nil {
		log.Fatal().Err(err).Msg("shell error")
	}
}

// startSpinner animates a loading indicator on stderr while the catalog is
// fetched, when stderr is a terminal. The returned func stops it.
func startSpinner() func() {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return func() {}
	}

	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		frames := []string{"|", "/", "-", `\`}
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for i := 0; ; i++ {
			select {
			case <-done:
				fmt.Fprint(os.Stderr, "\r          \r")
				return
			case <-ticker.C:
				fmt.Fprintf(os.Stderr, "\r%s loading", frames[i%len(frames)])
			}
		}
	}()

	return func() {
		close(done)
		<-finished
	}
}
