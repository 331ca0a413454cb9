package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/midbel/barchart"
	"github.com/midbel/barchart/decode"
	"github.com/midbel/slices"
	"golang.org/x/sync/errgroup"
)

func main() {
	var (
		config   = flag.String("config", "", "chart file with settings")
		category = flag.String("category", "", "column holding the category of each row")
		value    = flag.String("value", "", "column holding the value of each row")
		count    = flag.String("count", "", "column holding the size annotated on each label")
		compare  = flag.String("compare", "", "substring of the category to highlight")
		split    = flag.Float64("split", 0, "fraction of the maximum value at or below which labels move outside the bar")
		aim      = flag.Float64("aim", 0, "value marked with a reference line")
		keep     = flag.Bool("keep-order", false, "keep rows in file order instead of sorting by value")
		vertical = flag.Bool("vertical", false, "draw vertical bars instead of horizontal ones")
		title    = flag.String("title", "", "chart title")
		label    = flag.String("label", "", "value axis label")
		colors   = flag.String("colors", "", "primary, highlight and aim colors, comma separated")
		width    = flag.Float64("width", 0, "chart width")
		height   = flag.Float64("height", 0, "chart height")
		ticks    = flag.Int("ticks", 0, "ticks on the value axis")
		result   = flag.String("file", "", "output file")
	)
	flag.Parse()

	cfg, err := loadConfig(*config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	seen := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		seen[f.Name] = true
	})
	if seen["category"] {
		cfg.Category = *category
	}
	if seen["value"] {
		cfg.Value = *value
	}
	if seen["count"] {
		cfg.Options.Count = *count
	}
	if seen["compare"] {
		cfg.Options.Compare = *compare
	}
	if seen["split"] {
		cfg.Options.Split = *split
	}
	if seen["aim"] {
		a := *aim
		cfg.Options.Aim = &a
	}
	if seen["keep-order"] {
		cfg.Options.KeepOrder = *keep
	}
	if seen["vertical"] {
		cfg.Options.Vertical = *vertical
	}
	if seen["title"] {
		cfg.Options.Title = *title
	}
	if seen["label"] {
		cfg.Options.Label = *label
	}
	if seen["colors"] {
		cs, err := parseColors(*colors)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg.Options.Colors = cs
	}
	if seen["width"] {
		cfg.Width = *width
	}
	if seen["height"] {
		cfg.Height = *height
	}
	if seen["ticks"] {
		cfg.Ticks = *ticks
	}

	files := flag.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "no dataset given")
		os.Exit(1)
	}
	rdr := barchart.Renderer{
		Width:  cfg.Width,
		Height: cfg.Height,
		Ticks:  cfg.Ticks,
	}
	if len(files) == 1 {
		if err := renderFile(slices.Fst(files), *result, cfg, rdr); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		return
	}
	// one chart per input, each to a file named after its dataset
	var grp errgroup.Group
	for _, f := range files {
		f := f
		grp.Go(func() error {
			return renderFile(f, getIdent(f)+".svg", cfg, rdr)
		})
	}
	if err := grp.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func loadConfig(file string) (decode.Config, error) {
	if file == "" {
		return decode.Config{}, nil
	}
	r, err := os.Open(file)
	if err != nil {
		return decode.Config{}, err
	}
	defer r.Close()
	return decode.NewDecoder(r).Decode()
}

func renderFile(file, out string, cfg decode.Config, rdr barchart.Renderer) error {
	set, err := readRows(file)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	spec, err := barchart.Build(set, cfg.Category, cfg.Value, cfg.Options)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	var w io.Writer = os.Stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	rdr.Render(w, spec)
	return nil
}

func readRows(file string) ([]barchart.Row, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	var (
		rs  = csv.NewReader(r)
		set []barchart.Row
	)
	header, err := rs.Read()
	if err != nil {
		return nil, err
	}
	for {
		record, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		row := make(barchart.Row, len(header))
		for i, h := range header {
			if i < len(record) {
				row[h] = record[i]
			}
		}
		set = append(set, row)
	}
	return set, nil
}

func parseColors(str string) (barchart.Colors, error) {
	var (
		c    barchart.Colors
		list = strings.Split(str, ",")
	)
	for i := range list {
		list[i] = strings.TrimSpace(list[i])
	}
	switch len(list) {
	case 1:
		c.Primary = slices.Fst(list)
	case 2:
		c.Primary = slices.Fst(list)
		c.Highlight = slices.Lst(list)
	case 3:
		c.Primary = slices.Fst(list)
		c.Highlight = list[1]
		c.Aim = slices.Lst(list)
	default:
		return c, fmt.Errorf("colors: one to three values expected")
	}
	return c, nil
}

func getIdent(file string) string {
	file = filepath.Base(file)
	for {
		e := filepath.Ext(file)
		if e == "" {
			break
		}
		file = strings.TrimSuffix(file, e)
	}
	return file
}
