package barchart

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func sample() []Row {
	return []Row{
		{"cat": "A", "val": 10.0},
		{"cat": "B", "val": 100.0},
		{"cat": "C", "val": 5.0},
	}
}

func TestBuild_Threshold(t *testing.T) {
	spec, err := Build(sample(), "cat", "val", Options{KeepOrder: true})
	if err != nil {
		t.Fatal(err)
	}
	if spec.Threshold != 10 {
		t.Fatalf("threshold: want 10, got %g", spec.Threshold)
	}
	want := []bool{false, true, false}
	for i, row := range spec.Rows {
		if row.Inside != want[i] {
			t.Errorf("row %s (value %g): inside = %t, want %t", row.Label, row.Value, row.Inside, want[i])
		}
		if row.Inside != (row.Value > spec.Threshold) {
			t.Errorf("row %s: inside flag disagrees with value > threshold", row.Label)
		}
	}
}

func TestBuild_ThresholdPermutation(t *testing.T) {
	set := sample()
	permuted := []Row{set[2], set[0], set[1]}
	spec1, err := Build(set, "cat", "val", Options{})
	if err != nil {
		t.Fatal(err)
	}
	spec2, err := Build(permuted, "cat", "val", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if spec1.Threshold != spec2.Threshold {
		t.Fatalf("threshold depends on row order: %g vs %g", spec1.Threshold, spec2.Threshold)
	}
}

func TestBuild_SortAscending(t *testing.T) {
	spec, err := Build(sample(), "cat", "val", Options{})
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(spec.Rows); i++ {
		if spec.Rows[i].Value < spec.Rows[i-1].Value {
			t.Fatalf("rows not sorted by value: %v", spec.Rows)
		}
	}
	labels := spec.Labels()
	if want := []string{"C", "A", "B"}; !reflect.DeepEqual(labels, want) {
		t.Fatalf("labels: want %v, got %v", want, labels)
	}
}

func TestBuild_KeepOrder(t *testing.T) {
	spec, err := Build(sample(), "cat", "val", Options{KeepOrder: true})
	if err != nil {
		t.Fatal(err)
	}
	labels := spec.Labels()
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(labels, want) {
		t.Fatalf("labels: want %v, got %v", want, labels)
	}
}

func TestBuild_SortKeepsFlags(t *testing.T) {
	kept, err := Build(sample(), "cat", "val", Options{KeepOrder: true, Compare: "B"})
	if err != nil {
		t.Fatal(err)
	}
	sorted, err := Build(sample(), "cat", "val", Options{Compare: "B"})
	if err != nil {
		t.Fatal(err)
	}
	byLabel := make(map[string]DisplayRow)
	for _, row := range kept.Rows {
		byLabel[row.Label] = row
	}
	for _, row := range sorted.Rows {
		if byLabel[row.Label] != row {
			t.Errorf("row %s changed by sorting: %+v vs %+v", row.Label, byLabel[row.Label], row)
		}
	}
}

func TestBuild_Compare(t *testing.T) {
	spec, err := Build(sample(), "cat", "val", Options{Compare: "B"})
	if err != nil {
		t.Fatal(err)
	}
	for _, row := range spec.Rows {
		if want := row.Label == "B"; row.Highlighted != want {
			t.Errorf("row %s: highlighted = %t, want %t", row.Label, row.Highlighted, want)
		}
	}
}

func TestBuild_CompareNoMatch(t *testing.T) {
	spec, err := Build(sample(), "cat", "val", Options{Compare: "does not exist"})
	if err != nil {
		t.Fatal(err)
	}
	for _, row := range spec.Rows {
		if row.Highlighted {
			t.Errorf("row %s highlighted for an unmatched compare target", row.Label)
		}
	}
}

func TestBuild_CompareMultiMatch(t *testing.T) {
	set := []Row{
		{"cat": "Tawau HF", "val": 80.0},
		{"cat": "Tawau Rural", "val": 60.0},
		{"cat": "Kunak HF", "val": 90.0},
	}
	spec, err := Build(set, "cat", "val", Options{Compare: "Tawau"})
	if err != nil {
		t.Fatal(err)
	}
	var n int
	for _, row := range spec.Rows {
		if row.Highlighted {
			n++
		}
	}
	if n != 2 {
		t.Fatalf("want both Tawau rows highlighted, got %d highlighted", n)
	}
}

func TestBuild_CountLabel(t *testing.T) {
	set := []Row{
		{"cat": "Tawau HF", "val": 88.6, "n": 2088},
	}
	spec, err := Build(set, "cat", "val", Options{Count: "n"})
	if err != nil {
		t.Fatal(err)
	}
	if want := "Tawau HF (N=2088)"; spec.Rows[0].Label != want {
		t.Fatalf("label: want %q, got %q", want, spec.Rows[0].Label)
	}
	spec, err = Build(set, "cat", "val", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if want := "Tawau HF"; spec.Rows[0].Label != want {
		t.Fatalf("label: want %q, got %q", want, spec.Rows[0].Label)
	}
}

func TestBuild_CompareMatchesAnnotatedLabel(t *testing.T) {
	set := []Row{
		{"cat": "Tawau HF", "val": 88.6, "n": 2088},
		{"cat": "Kunak HF", "val": 93.4, "n": 612},
	}
	spec, err := Build(set, "cat", "val", Options{Count: "n", Compare: "N=2088"})
	if err != nil {
		t.Fatal(err)
	}
	var n int
	for _, row := range spec.Rows {
		if row.Highlighted {
			n++
		}
	}
	if n != 1 {
		t.Fatalf("compare should match the annotated label, got %d highlighted", n)
	}
}

func TestBuild_MissingDataset(t *testing.T) {
	_, err := Build(nil, "cat", "val", Options{})
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if !strings.Contains(verr.Error(), "dataset") {
		t.Fatalf("error does not name the dataset: %v", verr)
	}
}

func TestBuild_MissingColumns(t *testing.T) {
	_, err := Build(sample(), "", "", Options{})
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if len(verr.Missing) != 2 {
		t.Fatalf("both missing columns should be reported together, got %v", verr.Missing)
	}
}

func TestBuild_Defaults(t *testing.T) {
	spec, err := Build(sample(), "cat", "val", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if spec.Label != "val" {
		t.Errorf("label should default to the value column name, got %q", spec.Label)
	}
	if spec.Colors != DefaultColors {
		t.Errorf("colors should default to %+v, got %+v", DefaultColors, spec.Colors)
	}
	if !spec.Flip {
		t.Errorf("flip should default to true")
	}
	if spec.Aim != nil {
		t.Errorf("no aim was given, got %g", *spec.Aim)
	}
}

func TestBuild_SplitOutOfRange(t *testing.T) {
	if _, err := Build(sample(), "cat", "val", Options{Split: 1.5}); err == nil {
		t.Fatal("split above 1 should be rejected")
	}
	if _, err := Build(sample(), "cat", "val", Options{Split: -0.1}); err == nil {
		t.Fatal("negative split should be rejected")
	}
}

func TestBuild_SplitOne(t *testing.T) {
	spec, err := Build(sample(), "cat", "val", Options{Split: 1})
	if err != nil {
		t.Fatal(err)
	}
	for _, row := range spec.Rows {
		if row.Inside {
			t.Errorf("row %s: threshold equals the maximum, no label fits inside", row.Label)
		}
	}
}

func TestBuild_BadColumn(t *testing.T) {
	set := []Row{
		{"cat": "A", "val": "not a number"},
	}
	_, err := Build(set, "cat", "val", Options{})
	if err == nil || !strings.Contains(err.Error(), "val") {
		t.Fatalf("error should name the offending column, got %v", err)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	opt := Options{Count: "n", Compare: "A", Split: 0.2}
	set := []Row{
		{"cat": "A", "val": 10.0, "n": 7},
		{"cat": "B", "val": 100.0, "n": 9},
	}
	spec1, err := Build(set, "cat", "val", opt)
	if err != nil {
		t.Fatal(err)
	}
	spec2, err := Build(set, "cat", "val", opt)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(spec1, spec2) {
		t.Fatalf("two builds differ:\n%+v\n%+v", spec1, spec2)
	}
}

func TestBuild_InputNotMutated(t *testing.T) {
	set := sample()
	before := make([]Row, len(set))
	for i, r := range set {
		before[i] = make(Row, len(r))
		for k, v := range r {
			before[i][k] = v
		}
	}
	if _, err := Build(set, "cat", "val", Options{Count: "val", Compare: "A"}); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(set, before) {
		t.Fatalf("dataset was modified: %v", set)
	}
}

func TestBuild_AimCopied(t *testing.T) {
	aim := 90.0
	spec, err := Build(sample(), "cat", "val", Options{Aim: &aim})
	if err != nil {
		t.Fatal(err)
	}
	aim = 50
	if *spec.Aim != 90 {
		t.Fatalf("aim aliases the caller value, got %g", *spec.Aim)
	}
}
