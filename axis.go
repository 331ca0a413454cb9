package barchart

import (
	"strconv"

	"github.com/midbel/svg"
)

const FontSize = 12.0

type Orientation int

const (
	OrientTop Orientation = 1 << iota
	OrientRight
	OrientBottom
	OrientLeft
)

func (o Orientation) Vertical() bool {
	return o == OrientLeft || o == OrientRight
}

func (o Orientation) Reverse() bool {
	return o == OrientRight || o == OrientTop
}

type Axis interface {
	Render(length, size, left, top float64) svg.Element
}

type ValueAxis struct {
	Label  string
	Orientation
	Ticks          int
	Scaler         ValueScaler
	Format         func(float64) string
	WithInnerTicks bool
	WithLabelTicks bool
	WithOuterTicks bool
}

func (a ValueAxis) Render(length, size, left, top float64) svg.Element {
	g := svg.NewGroup(svg.WithTranslate(left, top))
	d := domainLine(a.Orientation, length)
	g.Append(d.AsElement())

	var (
		font   = svg.NewFont(FontSize)
		format = a.Format
		ticks  = a.Ticks
	)
	if ticks <= 0 {
		ticks = 5
	}
	if format == nil {
		format = func(f float64) string {
			return strconv.FormatFloat(f, 'f', -1, 64)
		}
	}
	data := a.Scaler.Values(ticks)
	for i, f := range data {
		var (
			pos = a.Scaler.Scale(f)
			grp = svg.NewGroup(svg.WithTranslate(pos, 0))
		)
		if a.Vertical() {
			grp.Transform.TX = 0
			grp.Transform.TY = pos
		}
		if a.WithInnerTicks {
			tick := lineTick(a.Orientation, 0, FontSize*0.8, d.Stroke)
			grp.Append(tick.AsElement())
		}
		if a.WithLabelTicks {
			text := tickText(a.Orientation, format(f), 0, font)
			grp.Append(text.AsElement())
		}
		if a.WithOuterTicks && i > 0 && i < len(data)-1 {
			sk := d.Stroke
			sk.Opacity = 0.1
			tick := lineTick(a.Orientation, 0, -size, sk)
			grp.Append(tick.AsElement())
		}
		g.Append(grp.AsElement())
	}
	if a.Label != "" {
		g.Append(axisLabel(a.Orientation, a.Label, length))
	}
	return g.AsElement()
}

type CategoryAxis struct {
	Label  string
	Orientation
	Scaler         BandScaler
	WithInnerTicks bool
}

func (a CategoryAxis) Render(length, size, left, top float64) svg.Element {
	g := svg.NewGroup(svg.WithTranslate(left, top))
	d := domainLine(a.Orientation, length)
	g.Append(d.AsElement())

	var (
		align = a.Scaler.Space() / 2
		font  = svg.NewFont(FontSize)
	)
	for i, s := range a.Scaler.Labels() {
		var (
			pos  = a.Scaler.Scale(i)
			text = tickText(a.Orientation, s, align, font)
			grp  = svg.NewGroup(svg.WithTranslate(pos, 0))
		)
		if a.Vertical() {
			grp.Transform.TX = 0
			grp.Transform.TY = pos
		}
		if a.WithInnerTicks {
			tick := lineTick(a.Orientation, align, FontSize*0.8, d.Stroke)
			grp.Append(tick.AsElement())
		}
		grp.Append(text.AsElement())
		g.Append(grp.AsElement())
	}
	if a.Label != "" {
		g.Append(axisLabel(a.Orientation, a.Label, length))
	}
	return g.AsElement()
}

func domainLine(orient Orientation, length float64) svg.Line {
	x, y := length, 0.0
	if orient.Vertical() {
		x, y = y, x
	}
	d := svg.NewLine(svg.NewPos(0, 0), svg.NewPos(x, y))
	d.Stroke = svg.NewStroke("black", 1)
	return d
}

func lineTick(orient Orientation, offset, size float64, stroke svg.Stroke) svg.Line {
	var (
		pos1 = svg.NewPos(offset, 0)
		pos2 = svg.NewPos(offset, size)
	)
	switch {
	case orient.Vertical() && !orient.Reverse():
		pos2.X, pos2.Y = -pos2.Y, pos2.X
		pos1.X, pos1.Y = 0, offset
	case orient.Vertical() && orient.Reverse():
		pos2.X, pos2.Y = pos2.Y, pos2.X
		pos1.X, pos1.Y = 0, offset
	case !orient.Vertical() && orient.Reverse():
		pos2.Y = -pos2.Y
	default:
	}
	tick := svg.NewLine(pos1, pos2)
	tick.Stroke = stroke
	return tick
}

func tickText(orient Orientation, str string, offset float64, font svg.Font) svg.Text {
	// text sits on its baseline, so the shift moves it down to hang below
	// the tick or to center on it
	var (
		shift  = FontSize * 0.8
		anchor = "middle"
		x, y   = offset, FontSize * 1.2
	)
	switch {
	case orient.Vertical() && !orient.Reverse():
		shift = FontSize * 0.35
		anchor = "end"
		x, y = -y, x
	case orient.Vertical() && orient.Reverse():
		shift = FontSize * 0.35
		anchor = "start"
		x, y = y, x
	case !orient.Vertical() && orient.Reverse():
		shift = 0
		y = -y
	default:
	}
	text := svg.NewText(str)
	text.Pos = svg.NewPos(x, y)
	text.Font = font
	text.Anchor = anchor
	text.Shift = svg.NewPos(0, shift)
	return text
}

func axisLabel(orient Orientation, str string, length float64) svg.Element {
	text := svg.NewText(str)
	text.Font = svg.NewFont(FontSize)
	text.Anchor = "middle"

	var g svg.Group
	if orient.Vertical() {
		g.Transform.Translate(-FontSize*3.5, length/2)
		g.Transform.RA = -90
	} else {
		y := FontSize * 3
		if orient.Reverse() {
			y = -y
		}
		g.Transform.Translate(length/2, y)
	}
	g.Append(text.AsElement())
	return g.AsElement()
}
