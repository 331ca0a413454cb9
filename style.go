package barchart

var DefaultColors = Colors{
	Primary:   "lightblue",
	Highlight: "#6baed6",
	Aim:       "blue",
}

func (c Colors) merge(other Colors) Colors {
	if c.Primary == "" {
		c.Primary = other.Primary
	}
	if c.Highlight == "" {
		c.Highlight = other.Highlight
	}
	if c.Aim == "" {
		c.Aim = other.Aim
	}
	return c
}

// Style gathers the fixed presentation settings applied by the Renderer.
// BarWidth is the fraction of its band each bar occupies, Headroom the
// factor by which the value scale extends past the largest value so that
// outside labels have room to draw.
type Style struct {
	BarWidth  float64
	TextColor string
	Headroom  float64
}

var DefaultStyle = Style{
	BarWidth:  0.8,
	TextColor: "black",
	Headroom:  1.05,
}

func (s Style) merge(other Style) Style {
	if s.BarWidth <= 0 {
		s.BarWidth = other.BarWidth
	}
	if s.TextColor == "" {
		s.TextColor = other.TextColor
	}
	if s.Headroom <= 0 {
		s.Headroom = other.Headroom
	}
	return s
}
