package main

import (
	"image"
	"log"

	"github.com/automoto/vacuumarena/config"
	"github.com/automoto/vacuumarena/fonts"
	"github.com/automoto/vacuumarena/scenes"
	"github.com/automoto/vacuumarena/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(watcher *config.Watcher) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewArenaScene(g, watcher)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

// loadTuning applies the saved tuning file and starts watching it.
func loadTuning(saved *systems.SavedSettings) *config.Watcher {
	if saved == nil || saved.TuningPath == "" {
		return nil
	}
	if err := config.LoadTuning(saved.TuningPath); err != nil {
		log.Printf("Warning: %v", err)
		return nil
	}
	w, err := config.NewWatcher(saved.TuningPath)
	if err != nil {
		log.Printf("Warning: Could not watch %s: %v", saved.TuningPath, err)
		return nil
	}
	return w
}

func main() {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Vacuum Arena")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TickRate)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, err := systems.LoadSettings()
	switch {
	case err == nil && saved != nil:
		systems.ApplySavedSettings(saved)
	case err == nil:
		// First run: store the defaults so there is a file to edit
		if err := systems.SaveSettings(&systems.SavedSettings{LookSensitivity: config.Input.LookSensitivity}); err != nil {
			log.Printf("Warning: Could not save default settings: %v", err)
		}
	}
	watcher := loadTuning(saved)
	if watcher != nil {
		defer watcher.Close()
	}

	if err := ebiten.RunGame(NewGame(watcher)); err != nil {
		log.Fatal(err)
	}
}
