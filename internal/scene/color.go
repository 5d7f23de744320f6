package scene

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Health tint thresholds and targets
const (
	SickRatio = 0.3
	SickGray  = "#666666"
	SickBlend = 0.4
	WeakRatio = 0.6
	WeakGray  = "#888888"
	WeakBlend = 0.2
	maxHealth = 100.0
)

// Tint blends the base color toward gray as health drops. Colors that
// cannot be parsed are returned unchanged for the renderer to deal with.
func Tint(base string, health int) string {
	ratio := float64(health) / maxHealth

	var target string
	var amount float64
	switch {
	case ratio < SickRatio:
		target, amount = SickGray, SickBlend
	case ratio < WeakRatio:
		target, amount = WeakGray, WeakBlend
	default:
		return base
	}

	c, err := colorful.Hex(base)
	if err != nil {
		return base
	}
	gray, _ := colorful.Hex(target)
	return c.BlendRgb(gray, amount).Clamped().Hex()
}
