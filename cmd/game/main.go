package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/esmelusina/AgentFSMExample/internal/arena"
	"github.com/esmelusina/AgentFSMExample/internal/config"
	"github.com/esmelusina/AgentFSMExample/internal/logging"
)

func main() {
	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "path to a YAML config file (default: ./agentfsm.yaml if present)")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal("load config", "err", err)
	}
	logger, err := logging.New(os.Stderr, cfg.Log, "arena")
	if err != nil {
		log.Fatal("init logger", "err", err)
	}

	a := arena.New(cfg, logger)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(a.WindowSize())
	ebiten.SetTPS(cfg.TPS)
	if err := ebiten.RunGame(a); err != nil {
		logger.Fatal("game loop", "err", err)
	}
}
