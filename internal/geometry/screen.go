package geometry

import "github.com/kbinani/screenshot"

// FallbackScreen is used when no display can be queried
var FallbackScreen = Screen{X: 0, Y: 0, W: 1920, H: 1080}

// PrimaryScreen returns the bounds of the primary display
func PrimaryScreen() Screen {
	if screenshot.NumActiveDisplays() == 0 {
		return FallbackScreen
	}

	b := screenshot.GetDisplayBounds(0)
	if b.Empty() {
		return FallbackScreen
	}

	return Screen{
		X: b.Min.X,
		Y: b.Min.Y,
		W: b.Dx(),
		H: b.Dy(),
	}
}
