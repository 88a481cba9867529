package components

import (
	"math"

	"github.com/yohamta/donburi"
)

type HealthData struct {
	Current float64
	Max     float64
}

func NewHealth(max float64) HealthData {
	return HealthData{Current: max, Max: max}
}

func (h *HealthData) IsDead() bool {
	return h.Current <= 0
}

// Percent is the remaining share of max health.
func (h *HealthData) Percent() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}

// TakeDamage lowers health and reports whether this call killed the owner.
// Damage to a dead owner or a non-positive amount is ignored.
func (h *HealthData) TakeDamage(amount float64) (applied, died bool) {
	if h.IsDead() || amount <= 0 {
		return false, false
	}
	h.Current = math.Max(0, h.Current-amount)
	return true, h.IsDead()
}

func (h *HealthData) Heal(amount float64) {
	if h.IsDead() || amount <= 0 {
		return
	}
	h.Current = math.Min(h.Max, h.Current+amount)
}

// SetMaxHealth changes the cap, never below 1, trimming current health.
func (h *HealthData) SetMaxHealth(max float64) {
	h.Max = math.Max(1, max)
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

// HitRedirectData forwards any damage it receives to Target's health.
type HitRedirectData struct {
	Target donburi.Entity
}

var (
	Health      = donburi.NewComponentType[HealthData]()
	HitRedirect = donburi.NewComponentType[HitRedirectData]()
)
