package registry

import (
	"fmt"
	"math"
)

const (
	goldenAngle     = 137.508
	colorSaturation = 65
	colorLightness  = 55
	maxColorTries   = 720
)

// nextColor walks the golden-angle hue sequence from *index and returns the
// first color not in used. index is advanced past every candidate tried.
func nextColor(index *int, used map[string]struct{}) (string, bool) {
	for attempt := 0; attempt < maxColorTries; attempt++ {
		hue := math.Mod(float64(*index)*goldenAngle, 360)
		*index++
		candidate := hslToHex(hue, colorSaturation, colorLightness)
		if _, taken := used[candidate]; !taken {
			return candidate, true
		}
	}
	return "", false
}

func hslToHex(h, s, l float64) string {
	s /= 100
	l /= 100
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g = c, x
	case h < 120:
		r, g = x, c
	case h < 180:
		g, b = c, x
	case h < 240:
		g, b = x, c
	case h < 300:
		r, b = x, c
	default:
		r, b = c, x
	}
	return fmt.Sprintf("#%02x%02x%02x", channel(r+m), channel(g+m), channel(b+m))
}

func channel(v float64) int {
	return int(math.Floor(v*255 + 0.5))
}
