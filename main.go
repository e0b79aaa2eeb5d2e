package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/strafe/config"
	"github.com/automoto/strafe/scenes"
	"github.com/automoto/strafe/systems"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	if err := config.Player.Validate(); err != nil {
		log.Fatalf("Invalid locomotion config: %v", err)
	}

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: settings will not persist: %v", err)
	}
	settings := systems.NewSettingsStore()

	scene, err := scenes.NewPlaygroundScene(settings)
	if err != nil {
		log.Fatalf("Failed to start playground: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)

	if err := ebiten.RunGame(&Game{scene: scene}); err != nil {
		log.Fatal(err)
	}
}
