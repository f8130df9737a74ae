package simgraph

import (
	"fmt"
	"math"

	lru "github.com/hashicorp/golang-lru/v2"
)

// goldenAngle is the hue step, in degrees, between consecutive community ids.
const goldenAngle = 137.508

const (
	colorLightness  = 0.5
	colorSaturation = 0.9
)

// ColorFunc maps a community id to a "#rrggbb" colour.
type ColorFunc func(community int) string

// Color returns the colour for a non-negative community id. The hue advances by the
// golden angle per id, so neighbouring ids land far apart on the colour wheel no
// matter how many communities there are. Channels are truncated, not rounded.
func Color(community int) string {
	hue := pyMod(float64(community)*goldenAngle, 360) / 360
	r, g, b := hlsToRGB(hue, colorLightness, colorSaturation)
	return fmt.Sprintf("#%02x%02x%02x", int(r*255), int(g*255), int(b*255))
}

// hlsToRGB converts hue, lightness and saturation in [0,1] to RGB channels in [0,1].
func hlsToRGB(h, l, s float64) (r, g, b float64) {
	if s == 0 {
		return l, l, l
	}
	var m2 float64
	if l <= 0.5 {
		m2 = l * (1 + s)
	} else {
		m2 = l + s - l*s
	}
	m1 := 2*l - m2
	return hueToChannel(m1, m2, h+1.0/3.0), hueToChannel(m1, m2, h), hueToChannel(m1, m2, h-1.0/3.0)
}

func hueToChannel(m1, m2, hue float64) float64 {
	hue = pyMod(hue, 1)
	switch {
	case hue < 1.0/6.0:
		return m1 + (m2-m1)*hue*6
	case hue < 0.5:
		return m2
	case hue < 2.0/3.0:
		return m1 + (m2-m1)*(2.0/3.0-hue)*6
	default:
		return m1
	}
}

// pyMod is a floored modulo: the result has the sign of y.
func pyMod(x, y float64) float64 {
	m := math.Mod(x, y)
	if m != 0 && (m < 0) != (y < 0) {
		m += y
	}
	return m
}

// Palette memoises Color for the community ids a run actually sees.
type Palette struct {
	cache *lru.Cache[int, string]
}

func NewPalette(size int) (*Palette, error) {
	cache, err := lru.New[int, string](size)
	if err != nil {
		return nil, err
	}
	return &Palette{cache: cache}, nil
}

// Color is a drop-in ColorFunc.
func (p *Palette) Color(community int) string {
	if c, ok := p.cache.Get(community); ok {
		return c
	}
	c := Color(community)
	p.cache.Add(community, c)
	return c
}
