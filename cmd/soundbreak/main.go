package main

import (
	"fmt"
	"os"

	"github.com/kfstorm/sound-break/config"
	"github.com/kfstorm/sound-break/internal/app"
	"github.com/kfstorm/sound-break/internal/cli"
	"github.com/kfstorm/sound-break/internal/output"
)

func main() {
	if err := run(); err != nil {
		formatter := output.NewFormatter(os.Stderr)
		formatter.Error(err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	application := app.New(cfg)

	deps := &cli.Dependencies{
		App:    application,
		Config: cfg,
	}

	return cli.NewRootCmd(deps).Execute()
}
