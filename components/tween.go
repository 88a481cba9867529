package components

import (
	"github.com/automoto/vacuumarena/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// TweenKind selects what a tween value drives.
type TweenKind int

const (
	// Scale = Origin * value
	TweenScale TweenKind = iota
	// Position.Y = Origin.Y + value
	TweenBob
)

// TweenData runs a gween sequence against the entity transform. A nil
// Sequence is idle.
type TweenData struct {
	Sequence *gween.Sequence
	Kind     TweenKind
	Origin   gamemath.Vec3
	// Last value written, so a replacement tween can start from it
	Value float64
}

// StartScale scales origin by a factor going from -> to over duration
// seconds. It replaces any running tween.
func (t *TweenData) StartScale(origin gamemath.Vec3, from, to, duration float64) {
	seq := gween.NewSequence()
	seq.Add(gween.New(float32(from), float32(to), float32(duration), ease.OutQuad))
	t.Sequence = seq
	t.Kind = TweenScale
	t.Origin = origin
	t.Value = from
}

// StartBob moves the entity up and down around origin forever.
func (t *TweenData) StartBob(origin gamemath.Vec3, height, period float64) {
	half := float32(period / 2)
	seq := gween.NewSequence()
	seq.Add(
		gween.New(0, float32(height), half, ease.InOutSine),
		gween.New(float32(height), 0, half, ease.InOutSine),
	)
	seq.SetLoop(-1)
	t.Sequence = seq
	t.Kind = TweenBob
	t.Origin = origin
	t.Value = 0
}

// Step advances the tween by dt and returns the new value. done is true
// once a finite sequence has played out; the tween is idle afterwards.
func (t *TweenData) Step(dt float64) (value float64, done bool) {
	if t.Sequence == nil {
		return t.Value, true
	}
	v, _, complete := t.Sequence.Update(float32(dt))
	t.Value = float64(v)
	if complete {
		t.Sequence = nil
	}
	return t.Value, complete
}

// Stop drops the running sequence without applying its end value.
func (t *TweenData) Stop() {
	t.Sequence = nil
}

func (t *TweenData) Running() bool {
	return t.Sequence != nil
}

var Tween = donburi.NewComponentType[TweenData]()
