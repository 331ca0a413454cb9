package barchart

// Range is the pixel interval a scaler maps its domain onto.
type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

func (r Range) Min() float64 {
	return r.F
}

func (r Range) Max() float64 {
	return r.T
}

type ValueScaler struct {
	Range
	fst float64
	lst float64
}

// NewValueScaler maps the interval from fst to lst linearly onto rg. Giving
// fst greater than lst reverses the scale, which is how values are mapped
// onto a y axis that grows downwards.
func NewValueScaler(fst, lst float64, rg Range) ValueScaler {
	return ValueScaler{
		Range: rg,
		fst:   fst,
		lst:   lst,
	}
}

func (s ValueScaler) Scale(v float64) float64 {
	return (v - s.fst) * s.Space()
}

func (s ValueScaler) Space() float64 {
	return s.Len() / (s.lst - s.fst)
}

func (s ValueScaler) Values(c int) []float64 {
	var (
		all  = make([]float64, c)
		step = (s.lst - s.fst) / float64(c)
	)
	for i := 0; i < c; i++ {
		all[i] = s.fst + float64(i)*step
	}
	all = append(all, s.lst)
	return all
}

type BandScaler struct {
	Range
	labels []string
}

// NewBandScaler gives each label an evenly sized band of rg, in the order
// the labels are given. Bands are addressed by position, not by label, so
// duplicate labels keep their own band.
func NewBandScaler(labels []string, rg Range) BandScaler {
	return BandScaler{
		Range:  rg,
		labels: labels,
	}
}

func (s BandScaler) Scale(x int) float64 {
	return float64(x) * s.Space()
}

func (s BandScaler) Space() float64 {
	if len(s.labels) == 0 {
		return 0
	}
	return s.Len() / float64(len(s.labels))
}

func (s BandScaler) Labels() []string {
	list := make([]string, len(s.labels))
	copy(list, s.labels)
	return list
}
