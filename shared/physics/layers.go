// Package physics answers geometry queries against the arena: raycasts,
// sphere casts, overlaps and static penetration resolution. A resolv grid
// over the XZ plane is the broadphase; shapes are tested exactly in 3D.
package physics

import "math/bits"

// Layer is a collision layer bit. A collider lives on exactly one layer;
// queries take a mask of several.
type Layer uint32

const (
	LayerGround Layer = 1 << iota
	LayerWall
	LayerPlayer
	LayerEnemy
	LayerVacuumable
	LayerPickup
	LayerDamageable
	layerEnd
)

// LayerAll matches every layer.
const LayerAll = layerEnd - 1

// LayerStatic is the geometry bodies are resolved against.
const LayerStatic = LayerGround | LayerWall

var layerTags = map[Layer]string{
	LayerGround:     "ground",
	LayerWall:       "wall",
	LayerPlayer:     "player",
	LayerEnemy:      "enemy",
	LayerVacuumable: "vacuumable",
	LayerPickup:     "pickup",
	LayerDamageable: "damageable",
}

// Tag is the resolv tag used for a single layer.
func (l Layer) Tag() string {
	return layerTags[l]
}

// Tags lists the resolv tags of every layer in the mask.
func (l Layer) Tags() []string {
	out := make([]string, 0, bits.OnesCount32(uint32(l)))
	for bit := Layer(1); bit < layerEnd; bit <<= 1 {
		if l&bit != 0 {
			out = append(out, layerTags[bit])
		}
	}
	return out
}

// Has reports whether l shares any bit with mask.
func (l Layer) Has(mask Layer) bool {
	return l&mask != 0
}
