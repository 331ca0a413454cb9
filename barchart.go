// Package barchart builds comparison bar charts: one categorical axis, an
// optional highlighted category, value labels placed inside or outside each
// bar depending on a threshold derived from the data, and an optional aim
// line marking a target value.
package barchart

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

const DefaultSplit = 0.1

// Row is one observation in a dataset. Fields are resolved by column name.
type Row map[string]any

func (r Row) label(field string) (string, bool) {
	v, ok := r[field]
	if !ok {
		return "", false
	}
	switch s := v.(type) {
	case string:
		return s, true
	case fmt.Stringer:
		return s.String(), true
	default:
		return "", false
	}
}

func (r Row) number(field string) (float64, bool) {
	v, ok := r[field]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

type Colors struct {
	Primary   string
	Highlight string
	Aim       string
}

type Options struct {
	Count     string
	Compare   string
	Split     float64
	Aim       *float64
	KeepOrder bool
	Title     string
	Label     string
	Colors    Colors
	Vertical  bool
}

// DisplayRow is one bar of the final chart.
type DisplayRow struct {
	Label       string
	Value       float64
	Inside      bool
	Highlighted bool
}

type ChartSpec struct {
	Rows      []DisplayRow
	Threshold float64
	Aim       *float64
	Title     string
	Label     string
	Colors    Colors
	Flip      bool
}

func (s *ChartSpec) Labels() []string {
	list := make([]string, len(s.Rows))
	for i := range s.Rows {
		list[i] = s.Rows[i].Label
	}
	return list
}

func (s *ChartSpec) MaxValue() float64 {
	max := math.Inf(-1)
	for i := range s.Rows {
		if s.Rows[i].Value > max {
			max = s.Rows[i].Value
		}
	}
	if s.Aim != nil && *s.Aim > max {
		max = *s.Aim
	}
	return max
}

type ValidationError struct {
	Missing []string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("missing required input: %s", strings.Join(e.Missing, ", "))
}

// Build derives a ChartSpec from the given dataset. The category and value
// arguments name the columns holding the bar label and bar length of each
// row; opt carries everything optional. The dataset is never modified.
func Build(set []Row, category, value string, opt Options) (*ChartSpec, error) {
	var missing []string
	if len(set) == 0 {
		missing = append(missing, "dataset")
	}
	if category == "" {
		missing = append(missing, "category column")
	}
	if value == "" {
		missing = append(missing, "value column")
	}
	if len(missing) > 0 {
		return nil, ValidationError{Missing: missing}
	}
	split := opt.Split
	if split == 0 {
		split = DefaultSplit
	}
	if split < 0 || split > 1 {
		return nil, fmt.Errorf("split fraction %g out of range (0, 1]", split)
	}

	var (
		rows = make([]DisplayRow, len(set))
		max  = math.Inf(-1)
	)
	for i, r := range set {
		cat, ok := r.label(category)
		if !ok {
			return nil, fmt.Errorf("row %d: no label in column %q", i, category)
		}
		val, ok := r.number(value)
		if !ok {
			return nil, fmt.Errorf("row %d: no numeric value in column %q", i, value)
		}
		if opt.Count != "" {
			n, ok := r.number(opt.Count)
			if !ok {
				return nil, fmt.Errorf("row %d: no numeric value in column %q", i, opt.Count)
			}
			cat = fmt.Sprintf("%s (N=%s)", cat, strconv.FormatFloat(n, 'f', -1, 64))
		}
		rows[i] = DisplayRow{
			Label: cat,
			Value: val,
		}
		if val > max {
			max = val
		}
	}
	// threshold always comes from the full dataset, before any reordering
	threshold := split * max
	for i := range rows {
		rows[i].Inside = rows[i].Value > threshold
		rows[i].Highlighted = opt.Compare != "" && strings.Contains(rows[i].Label, opt.Compare)
	}
	if !opt.KeepOrder {
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Value < rows[j].Value
		})
	}

	spec := ChartSpec{
		Rows:      rows,
		Threshold: threshold,
		Title:     opt.Title,
		Label:     opt.Label,
		Colors:    opt.Colors.merge(DefaultColors),
		Flip:      !opt.Vertical,
	}
	if spec.Label == "" {
		spec.Label = value
	}
	if opt.Aim != nil {
		aim := *opt.Aim
		spec.Aim = &aim
	}
	return &spec, nil
}
