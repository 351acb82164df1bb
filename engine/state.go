package engine

import "github.com/lixenwraith/stardrift/celestial"

// Sprite is the drawable state of one particle in normalized coordinates
type Sprite struct {
	X, Y  float64
	Size  float64
	Alpha float64
}

// RenderState is everything an external renderer needs for one frame
// Particles is reused by the next Frame call; copy it to keep it longer
type RenderState struct {
	Frame     uint64
	Delta     float64 // seconds advanced this frame
	Particles []Sprite
	Celestial *celestial.Body // nil when time mode is off or nothing is visible
	SunHour   bool            // render classification of the adjusted hour
	Daytime   bool            // UI copy classification of the adjusted hour
	StarMode  bool
	Parallax  bool
	Rotation  [2]float64 // eased rotation fed to the integrator
}
