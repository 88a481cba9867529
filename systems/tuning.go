package systems

import (
	"log"

	"github.com/automoto/vacuumarena/components"
	cfg "github.com/automoto/vacuumarena/config"
	"github.com/yohamta/donburi"
)

// ApplyTuning pushes the live configuration into the state that copied
// its tuning at spawn: every vacuum gun, the wave manager and the style
// meter. old is the tuning those copies were made from.
func ApplyTuning(w donburi.World, old cfg.Tuning) {
	components.VacuumGun.Each(w, func(e *donburi.Entry) {
		gun := components.VacuumGun.Get(e)
		gun.Retune(old.Vacuum, cfg.Vacuum)
		publishMagazine(w, gun)
	})
	if entry, ok := components.WaveManager.First(w); ok {
		wm := components.WaveManager.Get(entry)
		if !wm.Retune(cfg.Waves) {
			log.Printf("Warning: new wave list has %d waves, keeping the running list at wave %d", len(cfg.Waves.Waves), wm.WaveNumber())
		}
	}
	if s, ok := styleOf(w); ok {
		s.Retune(cfg.Style)
	}
}
