package main

import (
	"context"

	"github.com/NethermindEth/defi-runner/cli"
	"github.com/NethermindEth/defi-runner/internal/engine"
	"github.com/NethermindEth/defi-runner/internal/locker"
	"github.com/NethermindEth/defi-runner/internal/prompter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	// Set filesystem
	fs := afero.NewOsFs()

	// Set locker
	locker := locker.NewFLock()

	// Initialize prompter
	p := prompter.NewPrompter()

	// Build CLI. The engine connection is opened by each command and shared
	// by every operation it performs.
	connect := func(ctx context.Context) (*engine.Client, error) {
		return engine.Connect(ctx)
	}
	cmd := cli.RootCmd(connect, fs, locker, p)
	// Execute CLI
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
