package app

import (
	"log"
	"os"

	"github.com/kfstorm/sound-break/config"
	"github.com/kfstorm/sound-break/internal/domain/monitor"
	"github.com/kfstorm/sound-break/internal/media"
	"github.com/kfstorm/sound-break/internal/probe"
)

type App struct {
	Engine   *monitor.Engine
	Detector *monitor.Detector
	Probe    *probe.Pgrep
	Media    *media.Controller
}

func New(cfg *config.Config) *App {
	logger := log.New(os.Stderr, "[soundbreak] ", log.LstdFlags)

	pg := probe.New()
	ctrl := media.New()
	detector := monitor.NewDetector(pg, logger)
	engine := monitor.NewEngine(detector, ctrl, cfg.ProcessNames, cfg.PollInterval, logger)

	return &App{
		Engine:   engine,
		Detector: detector,
		Probe:    pg,
		Media:    ctrl,
	}
}
