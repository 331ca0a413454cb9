package decode

import (
	"io"
	"strconv"

	"github.com/midbel/barchart"
)

// Config is everything a .chart file can set: the columns of the dataset to
// chart, the build options and the render geometry.
type Config struct {
	Category string
	Value    string
	Options  barchart.Options
	Width    float64
	Height   float64
	Ticks    int
}

type Decoder struct {
	scan *Scanner
	curr Token
	peek Token
}

func NewDecoder(r io.Reader) *Decoder {
	d := Decoder{
		scan: Scan(r),
	}
	d.next()
	d.next()
	return &d
}

func (d *Decoder) Decode() (Config, error) {
	var cfg Config
	for !d.done() {
		switch d.curr.Type {
		case Comment, EOL:
			d.next()
		case Keyword:
			if err := d.decodeSet(&cfg); err != nil {
				return cfg, err
			}
		default:
			return cfg, d.decodeError("statement expected")
		}
	}
	return cfg, nil
}

func (d *Decoder) decodeSet(cfg *Config) error {
	d.next()
	if d.curr.Type != Literal {
		return d.decodeError("option name expected after set")
	}
	var (
		option = d.curr.Literal
		pos    = d.curr.Position
		err    error
	)
	d.next()
	switch option {
	case "title":
		cfg.Options.Title, err = d.parseString()
	case "label":
		cfg.Options.Label, err = d.parseString()
	case "category":
		cfg.Category, err = d.parseString()
	case "value":
		cfg.Value, err = d.parseString()
	case "count":
		cfg.Options.Count, err = d.parseString()
	case "compare":
		cfg.Options.Compare, err = d.parseString()
	case "split":
		cfg.Options.Split, err = d.parseFloat()
	case "aim":
		var aim float64
		if aim, err = d.parseFloat(); err == nil {
			cfg.Options.Aim = &aim
		}
	case "vertical":
		cfg.Options.Vertical, err = d.parseBool()
	case "keep-order":
		cfg.Options.KeepOrder, err = d.parseBool()
	case "colors":
		err = d.parseColors(&cfg.Options.Colors)
	case "size":
		err = d.parseSize(cfg)
	case "ticks":
		var n float64
		if n, err = d.parseFloat(); err == nil {
			cfg.Ticks = int(n)
		}
	default:
		return OptionError{
			Option:   option,
			Position: pos,
		}
	}
	if err != nil {
		return err
	}
	return d.parseEOL()
}

func (d *Decoder) parseString() (string, error) {
	if d.curr.Type != Literal {
		return "", d.decodeError("value expected")
	}
	str := d.curr.Literal
	d.next()
	return str, nil
}

func (d *Decoder) parseFloat() (float64, error) {
	str, err := d.parseString()
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, d.decodeError("number expected")
	}
	return f, nil
}

func (d *Decoder) parseBool() (bool, error) {
	str, err := d.parseString()
	if err != nil {
		return false, err
	}
	switch str {
	case "on", "true", "yes":
		return true, nil
	case "off", "false", "no":
		return false, nil
	default:
		return false, d.decodeError("boolean expected (on/off)")
	}
}

func (d *Decoder) parseColors(colors *barchart.Colors) error {
	list, err := d.parseList()
	if err != nil {
		return err
	}
	if len(list) == 0 || len(list) > 3 {
		return d.decodeError("colors wants one to three values (primary, highlight, aim)")
	}
	colors.Primary = list[0]
	if len(list) > 1 {
		colors.Highlight = list[1]
	}
	if len(list) > 2 {
		colors.Aim = list[2]
	}
	return nil
}

func (d *Decoder) parseSize(cfg *Config) error {
	list, err := d.parseList()
	if err != nil {
		return err
	}
	if len(list) != 2 {
		return d.decodeError("size wants two values (width, height)")
	}
	if cfg.Width, err = strconv.ParseFloat(list[0], 64); err != nil {
		return d.decodeError("number expected")
	}
	if cfg.Height, err = strconv.ParseFloat(list[1], 64); err != nil {
		return d.decodeError("number expected")
	}
	return nil
}

func (d *Decoder) parseList() ([]string, error) {
	str, err := d.parseString()
	if err != nil {
		return nil, err
	}
	list := []string{str}
	for d.curr.Type == Comma {
		d.next()
		if str, err = d.parseString(); err != nil {
			return nil, err
		}
		list = append(list, str)
	}
	return list, nil
}

func (d *Decoder) parseEOL() error {
	switch d.curr.Type {
	case EOL:
		d.next()
	case Comment:
		d.next()
	case EOF:
	default:
		return d.decodeError("end of line expected")
	}
	return nil
}

func (d *Decoder) decodeError(message string) error {
	return DecodeError{
		Message:  message,
		Position: d.curr.Position,
	}
}

func (d *Decoder) next() {
	d.curr = d.peek
	d.peek = d.scan.Scan()
}

func (d *Decoder) done() bool {
	return d.curr.Type == EOF
}
