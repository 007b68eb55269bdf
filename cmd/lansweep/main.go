package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/projectdiscovery/gologger"

	"github.com/projectdiscovery/lansweep/internal/runner"
)

func main() {
	options := runner.ParseOptions()

	r, err := runner.NewRunner(options)
	if err != nil {
		gologger.Fatal().Msgf("could not create runner: %s\n", err)
	}
	defer r.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		gologger.Info().Msgf("interrupt received, reporting hosts collected so far")
		cancel()
	}()

	if err := r.Run(ctx); err != nil {
		gologger.Fatal().Msgf("%s\n", err)
	}
}
