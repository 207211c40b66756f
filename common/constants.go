package common

const (
	// TileSize is the edge of one grid cell in pixels. A column is one tile wide.
	TileSize = 16

	// ScrollSpeed is how far the world shifts left per Move call.
	ScrollSpeed = 2

	BaseWidth  = 256
	BaseHeight = 240

	// TPS is the simulation rate the loop targets.
	TPS = 60

	// VisibleColumns is how many columns fit on the canvas.
	VisibleColumns = BaseWidth / TileSize
)

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
