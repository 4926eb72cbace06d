package main

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/gravitons/pkg/app"
	"github.com/decker502/gravitons/pkg/config"
)

func main() {
	cfg := config.Default()

	a, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("initialization failed: %v", err)
	}

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle(cfg.WindowTitle)
	ebiten.SetTPS(cfg.FrameRate)
	ebiten.SetFullscreen(a.Settings().GetSettings().Fullscreen)

	// RunGame blocks until the window is closed (nil) or Update returns an
	// error; Termination is the clean quit signal, anything else is fatal.
	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
