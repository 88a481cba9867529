package components

import (
	"fmt"

	"github.com/automoto/vacuumarena/config"
	"github.com/yohamta/donburi"
)

// PauseData is the set of active pause sources. The simulation is paused
// while any source is registered.
type PauseData struct {
	Sources map[string]config.PauseType
}

// Pause registers source. A source that is already registered is an error
// and leaves the set unchanged.
func (p *PauseData) Pause(source string, t config.PauseType) error {
	if p.Sources == nil {
		p.Sources = make(map[string]config.PauseType)
	}
	if _, ok := p.Sources[source]; ok {
		return fmt.Errorf("pause source %q already registered", source)
	}
	p.Sources[source] = t
	return nil
}

// Resume unregisters source. Unknown sources are an error.
func (p *PauseData) Resume(source string) error {
	if _, ok := p.Sources[source]; !ok {
		return fmt.Errorf("pause source %q is not registered", source)
	}
	delete(p.Sources, source)
	return nil
}

func (p *PauseData) IsPaused() bool {
	return len(p.Sources) > 0
}

func (p *PauseData) Has(source string) bool {
	_, ok := p.Sources[source]
	return ok
}

// Type is the highest priority among active sources.
func (p *PauseData) Type() config.PauseType {
	top := config.PauseUnknown
	for _, t := range p.Sources {
		if t > top {
			top = t
		}
	}
	return top
}

var Pause = donburi.NewComponentType[PauseData]()
