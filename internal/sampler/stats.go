package sampler

import (
	"fmt"
	"io"
	"sort"

	"github.com/chewxy/math32"
	"github.com/specialistvlad/matgraph/internal/bsdf"
	"github.com/specialistvlad/matgraph/internal/shading"
)

// Stats summarises a sampling run.
type Stats struct {
	Mode   Mode
	Points int

	// Value runs.
	Min, Max, Mean shading.Value

	// BSDF runs.
	MeanLobes float64
	// KindWeight is the mean per-point weight each lobe kind received.
	KindWeight map[string]shading.Value
}

// Kinds returns the lobe kinds seen, sorted.
func (s *Stats) Kinds() []string {
	kinds := make([]string, 0, len(s.KindWeight))
	for k := range s.KindWeight {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// WriteSummary prints a short human readable report.
func (s *Stats) WriteSummary(w io.Writer, name string) error {
	var err error
	printf := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	printf("material %s (%s, %d points)\n", name, s.Mode, s.Points)
	if s.Mode == ModeValue {
		printf("  min  %s\n  max  %s\n  mean %s\n", s.Min, s.Max, s.Mean)
		return err
	}
	printf("  lobes per point %.3g\n", s.MeanLobes)
	for _, k := range s.Kinds() {
		printf("  %-24s %s\n", k, s.KindWeight[k])
	}
	return err
}

// partial accumulates one worker's share.
type partial struct {
	n        int
	min, max shading.Value
	sum      [4]float64
	lobes    int
	kinds    map[string]*[4]float64
}

func newPartial() *partial {
	inf := math32.Inf(1)
	return &partial{
		min:   shading.Value{X: inf, Y: inf, Z: inf, W: inf},
		max:   shading.Value{X: -inf, Y: -inf, Z: -inf, W: -inf},
		kinds: make(map[string]*[4]float64),
	}
}

func (p *partial) addValue(v shading.Value) {
	p.n++
	p.min = p.min.Min(v)
	p.max = p.max.Max(v)
	for i := 0; i < 4; i++ {
		p.sum[i] += float64(v.Component(i))
	}
}

func (p *partial) addLobes(acc *bsdf.Accumulator) {
	p.n++
	p.lobes += acc.Len()
	for kind, w := range acc.WeightByKind() {
		s, ok := p.kinds[kind]
		if !ok {
			s = new([4]float64)
			p.kinds[kind] = s
		}
		for i := 0; i < 4; i++ {
			s[i] += float64(w.Component(i))
		}
	}
}

func (p *partial) merge(o *partial) {
	p.n += o.n
	p.min = p.min.Min(o.min)
	p.max = p.max.Max(o.max)
	p.lobes += o.lobes
	for i := range p.sum {
		p.sum[i] += o.sum[i]
	}
	for kind, os := range o.kinds {
		s, ok := p.kinds[kind]
		if !ok {
			s = new([4]float64)
			p.kinds[kind] = s
		}
		for i := range s {
			s[i] += os[i]
		}
	}
}

func mean(sum [4]float64, n int) shading.Value {
	d := float64(n)
	return shading.Value{
		X: float32(sum[0] / d),
		Y: float32(sum[1] / d),
		Z: float32(sum[2] / d),
		W: float32(sum[3] / d),
	}
}

func (p *partial) stats(mode Mode) *Stats {
	s := &Stats{Mode: mode, Points: p.n}
	if p.n == 0 {
		return s
	}
	if mode == ModeValue {
		s.Min, s.Max, s.Mean = p.min, p.max, mean(p.sum, p.n)
		return s
	}
	s.MeanLobes = float64(p.lobes) / float64(p.n)
	s.KindWeight = make(map[string]shading.Value, len(p.kinds))
	for kind, sum := range p.kinds {
		s.KindWeight[kind] = mean(*sum, p.n)
	}
	return s
}
