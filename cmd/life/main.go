//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/stuXoon/game-of-life/internal/app"
	"github.com/stuXoon/game-of-life/pkg/life"
	"github.com/stuXoon/game-of-life/pkg/pattern"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.File != "" {
		if err := cfg.LoadFile(cfg.File); err != nil {
			log.Fatal(err)
		}
	}

	engine := life.New()
	engine.SetBattle(cfg.Battle)
	if cfg.StartPattern != "" {
		p, ok := pattern.Lookup(cfg.StartPattern)
		if !ok {
			log.Fatalf("unknown pattern %q (have %v)", cfg.StartPattern, pattern.Names())
		}
		engine.SetCells(pattern.PlaceAt(p, 0, 0))
	}

	game := app.New(engine, cfg)

	ebiten.SetWindowTitle("game of life")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
