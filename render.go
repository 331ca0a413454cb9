package barchart

import (
	"bufio"
	"io"
	"strconv"

	"github.com/midbel/svg"
)

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

func (p Padding) empty() bool {
	return p == Padding{}
}

const (
	defaultWidth  = 800
	defaultHeight = 600
)

var (
	flippedPad = Padding{Top: 50, Right: 70, Bottom: 60, Left: 130}
	uprightPad = Padding{Top: 50, Right: 20, Bottom: 60, Left: 70}
)

// Renderer translates a ChartSpec into svg layers: one bar layer with a
// fill per row, two text layers split on label placement, the optional aim
// rule and the axes.
type Renderer struct {
	Width  float64
	Height float64
	Ticks  int

	Padding
	Style
}

func (r Renderer) Render(w io.Writer, spec *ChartSpec) {
	r = r.withDefaults(spec.Flip)
	var (
		el    = svg.NewSVG(svg.WithDimension(r.Width, r.Height))
		drawW = r.Width - r.Padding.Horizontal()
		drawH = r.Height - r.Padding.Vertical()
		upper = spec.MaxValue() * r.Headroom
		band  BandScaler
		val   ValueScaler
	)
	// a flat dataset still needs a non-empty value domain
	if upper <= 0 {
		upper = 1
	}
	if spec.Flip {
		band = NewBandScaler(spec.Labels(), NewRange(0, drawH))
		val = NewValueScaler(0, upper, NewRange(0, drawW))
	} else {
		band = NewBandScaler(spec.Labels(), NewRange(0, drawW))
		val = NewValueScaler(upper, 0, NewRange(0, drawH))
	}

	el.Append(r.drawAxis(spec, band, val, drawW, drawH))

	area := getBaseGroup("", "area")
	area.Transform.Translate(r.Padding.Left, r.Padding.Top)
	area.Append(r.drawBars(spec, band, val))
	area.Append(r.drawLabels(spec, band, val))
	if spec.Aim != nil {
		area.Append(r.drawAim(spec, val, drawW, drawH))
	}
	el.Append(area.AsElement())

	if spec.Title != "" {
		el.Append(r.drawTitle(spec.Title))
	}

	bw := bufio.NewWriter(w)
	defer bw.Flush()
	el.Render(bw)
}

func (r Renderer) withDefaults(flip bool) Renderer {
	if r.Width <= 0 {
		r.Width = defaultWidth
	}
	if r.Height <= 0 {
		r.Height = defaultHeight
	}
	if r.Padding.empty() {
		r.Padding = uprightPad
		if flip {
			r.Padding = flippedPad
		}
	}
	r.Style = r.Style.merge(DefaultStyle)
	return r
}

func (r Renderer) drawAxis(spec *ChartSpec, band BandScaler, val ValueScaler, drawW, drawH float64) svg.Element {
	g := svg.NewGroup(svg.WithID("axis"))
	if spec.Flip {
		left := CategoryAxis{
			Orientation:    OrientLeft,
			Scaler:         band,
			WithInnerTicks: true,
		}
		bottom := ValueAxis{
			Label:          spec.Label,
			Orientation:    OrientBottom,
			Ticks:          r.Ticks,
			Scaler:         val,
			WithInnerTicks: true,
			WithLabelTicks: true,
			WithOuterTicks: true,
		}
		g.Append(left.Render(drawH, drawW, r.Padding.Left, r.Padding.Top))
		g.Append(bottom.Render(drawW, drawH, r.Padding.Left, r.Height-r.Padding.Bottom))
	} else {
		left := ValueAxis{
			Label:          spec.Label,
			Orientation:    OrientLeft,
			Ticks:          r.Ticks,
			Scaler:         val,
			WithInnerTicks: true,
			WithLabelTicks: true,
			WithOuterTicks: true,
		}
		bottom := CategoryAxis{
			Orientation:    OrientBottom,
			Scaler:         band,
			WithInnerTicks: true,
		}
		g.Append(left.Render(drawH, drawW, r.Padding.Left, r.Padding.Top))
		g.Append(bottom.Render(drawW, drawH, r.Padding.Left, r.Height-r.Padding.Bottom))
	}
	return g.AsElement()
}

func (r Renderer) drawBars(spec *ChartSpec, band BandScaler, val ValueScaler) svg.Element {
	grp := getBaseGroup("", "bar")
	for i, row := range spec.Rows {
		var (
			size = band.Space() * r.BarWidth
			off  = (band.Space() - size) / 2
			el   svg.Rect
		)
		el.Title = row.Label
		if spec.Flip {
			el.Pos = svg.NewPos(0, band.Scale(i)+off)
			el.Dim = svg.NewDim(val.Scale(row.Value), size)
		} else {
			y := val.Scale(row.Value)
			el.Pos = svg.NewPos(band.Scale(i)+off, y)
			el.Dim = svg.NewDim(size, val.Scale(0)-y)
		}
		el.Fill = svg.NewFill(spec.fill(row))
		grp.Append(el.AsElement())
	}
	return grp.AsElement()
}

func (r Renderer) drawLabels(spec *ChartSpec, band BandScaler, val ValueScaler) svg.Element {
	var (
		all     = getBaseGroup("", "labels")
		inside  = getBaseGroup("", "label-inside")
		outside = getBaseGroup("", "label-outside")
	)
	for i, row := range spec.Rows {
		var (
			txt    = svg.NewText(formatValue(row.Value))
			center = band.Scale(i) + band.Space()/2
			pos    = val.Scale(row.Value)
		)
		txt.Font = svg.NewFont(FontSize)
		if spec.Flip {
			txt.Shift = svg.NewPos(0, FontSize*0.35)
			if row.Inside {
				txt.Pos = svg.NewPos(pos-FontSize*0.4, center)
				txt.Anchor = "end"
			} else {
				txt.Pos = svg.NewPos(pos+FontSize*0.4, center)
				txt.Anchor = "start"
			}
		} else {
			txt.Anchor = "middle"
			if row.Inside {
				txt.Pos = svg.NewPos(center, pos+FontSize*0.4)
				txt.Shift = svg.NewPos(0, FontSize*0.8)
			} else {
				txt.Pos = svg.NewPos(center, pos-FontSize*0.4)
			}
		}
		if row.Inside {
			inside.Append(txt.AsElement())
		} else {
			outside.Append(txt.AsElement())
		}
	}
	all.Fill = svg.NewFill(r.TextColor)
	all.Append(inside.AsElement())
	all.Append(outside.AsElement())
	return all.AsElement()
}

func (r Renderer) drawAim(spec *ChartSpec, val ValueScaler, drawW, drawH float64) svg.Element {
	var (
		pos  = val.Scale(*spec.Aim)
		pos1 = svg.NewPos(pos, 0)
		pos2 = svg.NewPos(pos, drawH)
	)
	if !spec.Flip {
		pos1 = svg.NewPos(0, pos)
		pos2 = svg.NewPos(drawW, pos)
	}
	line := svg.NewLine(pos1, pos2)
	line.Stroke = svg.NewStroke(spec.Colors.Aim, 1)
	line.Stroke.Dash.Array = []int{5}
	return line.AsElement()
}

func (r Renderer) drawTitle(title string) svg.Element {
	txt := svg.NewText(title)
	txt.Font = svg.NewFont(FontSize * 1.4)
	txt.Pos = svg.NewPos(r.Width/2, r.Padding.Top*0.6)
	txt.Anchor = "middle"
	return txt.AsElement()
}

func (s *ChartSpec) fill(row DisplayRow) string {
	if row.Highlighted {
		return s.Colors.Highlight
	}
	return s.Colors.Primary
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func getBaseGroup(fill string, class ...string) svg.Group {
	var g svg.Group
	if fill != "" {
		g.Fill = svg.NewFill(fill)
	}
	g.Class = class
	return g
}
