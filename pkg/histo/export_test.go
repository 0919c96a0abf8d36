package histo

var (
	Ticks     = ticks
	TickLabel = tickLabel
	GreyLevel = greyLevel
)

// GreyMapAt is the colour for v on a scale from lo to hi.
func GreyMapAt(lo, hi, v float64) (uint8, error) {
	c, err := (&greyMap{min: lo, max: hi, alpha: 1}).At(v)
	if err != nil {
		return 0, err
	}
	r, _, _, _ := c.RGBA()
	return uint8(r >> 8), nil
}

// GridZ is the value the heat map sees for cell (c, r).
func GridZ(g *Grid, logScale bool, c, r int) float64 { return gridZ{g, logScale}.Z(c, r) }

// ZRange is the range of the grey scale.
func ZRange(g *Grid, logScale bool) (float64, float64) { return zRange(g, logScale) }
