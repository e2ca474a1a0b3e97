// Package sampler evaluates a material over a regular UV grid on a pool of
// workers and summarises what it produced. It is the batch counterpart of a
// renderer calling a material once per shading point.
package sampler

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/specialistvlad/matgraph/internal/bsdf"
	"github.com/specialistvlad/matgraph/internal/ctxlog"
	"github.com/specialistvlad/matgraph/internal/material"
	"github.com/specialistvlad/matgraph/internal/shading"
	"golang.org/x/sync/errgroup"
)

// ErrModeMismatch is returned when the requested mode does not match the
// material's output.
var ErrModeMismatch = errors.New("sampling mode does not match material output")

// Mode selects which evaluation a run performs.
type Mode int

const (
	// ModeAuto picks the evaluation matching the material's output.
	ModeAuto Mode = iota
	// ModeValue runs pull evaluation.
	ModeValue
	// ModeBSDF runs push evaluation.
	ModeBSDF
)

func (m Mode) String() string {
	switch m {
	case ModeValue:
		return "value"
	case ModeBSDF:
		return "bsdf"
	default:
		return "auto"
	}
}

// ParseMode returns the mode named s.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "auto":
		return ModeAuto, nil
	case "value":
		return ModeValue, nil
	case "bsdf":
		return ModeBSDF, nil
	}
	return ModeAuto, fmt.Errorf("unknown sampling mode %q (want value, bsdf or auto)", s)
}

// Options configure a sampling run.
type Options struct {
	Mode Mode
	// Resolution is the number of samples along each axis.
	Resolution int
	// Workers caps the number of concurrent evaluators. Zero means one per CPU.
	Workers int
}

// Sample evaluates sh at the centre of every cell of a Resolution x
// Resolution grid. Each point gets its own shading context and, for BSDF
// runs, its own accumulator. Cancelling ctx stops new rows from starting.
func Sample(ctx context.Context, sh material.Shader, opts Options) (*Stats, error) {
	logger := ctxlog.FromContext(ctx)

	if opts.Resolution <= 0 {
		return nil, fmt.Errorf("resolution must be positive, got %d", opts.Resolution)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > opts.Resolution {
		workers = opts.Resolution
	}

	mode, err := resolveMode(sh, opts.Mode)
	if err != nil {
		return nil, err
	}
	logger.Debug("Sampler starting.", "mode", mode.String(), "resolution", opts.Resolution, "workers", workers)

	rows := make(chan int)
	total := newPartial()
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(rows)
		for v := 0; v < opts.Resolution; v++ {
			select {
			case rows <- v:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			local := newPartial()
			for v := range rows {
				if err := gctx.Err(); err != nil {
					return err
				}
				sampleRow(sh, mode, v, opts.Resolution, local)
			}
			mu.Lock()
			total.merge(local)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("sampling interrupted: %w", err)
	}

	stats := total.stats(mode)
	logger.Debug("Sampler finished.", "points", stats.Points)
	return stats, nil
}

func resolveMode(sh material.Shader, want Mode) (Mode, error) {
	have := ModeValue
	if sh.Output().IsBXDF() {
		have = ModeBSDF
	}
	if want != ModeAuto && want != have {
		return want, fmt.Errorf("%w: requested %s, material yields %s", ErrModeMismatch, want, have)
	}
	return have, nil
}

func sampleRow(sh material.Shader, mode Mode, v, res int, p *partial) {
	fv := (float32(v) + 0.5) / float32(res)
	for u := 0; u < res; u++ {
		sc := shading.AtUV((float32(u)+0.5)/float32(res), fv)
		if mode == ModeValue {
			p.addValue(sh.Value(sc))
			continue
		}
		acc := bsdf.New(sc)
		sh.Scatter(acc, shading.White)
		p.addLobes(acc)
	}
}
