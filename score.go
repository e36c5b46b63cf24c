package main

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// BlueprintResult holds the search outcome for one blueprint.
type BlueprintResult struct {
	ID      uint32 `json:"id"`
	Minutes uint32 `json:"minutes"`
	Geodes  uint32 `json:"geodes"`
	Quality uint64 `json:"quality"` // ID × Geodes
	Nodes   uint64 `json:"nodes"`
	TimeMs  int64  `json:"timeMs"`
}

// PartResult is one puzzle answer and the searches behind it.
type PartResult struct {
	Part       int               `json:"part"`
	Minutes    uint32            `json:"minutes"`
	Answer     uint64            `json:"answer"`
	Blueprints []BlueprintResult `json:"blueprints"`
	TimeMs     int64             `json:"timeMs"`
}

// QualityLevel is the part one score of a single blueprint.
func QualityLevel(bp Blueprint, minutes uint32) uint64 {
	return uint64(bp.ID) * uint64(Simulate(bp, minutes))
}

// QualitySum adds up the quality levels of rs.
func QualitySum(rs []BlueprintResult) uint64 {
	var sum uint64
	for _, r := range rs {
		sum += r.Quality
	}
	return sum
}

// GeodeProduct multiplies the geode counts of rs. An empty slice yields 1.
func GeodeProduct(rs []BlueprintResult) uint64 {
	p := uint64(1)
	for _, r := range rs {
		p *= uint64(r.Geodes)
	}
	return p
}

// firstN returns the first n blueprints, or all of them when n is 0 or
// larger than the list.
func firstN(bps []Blueprint, n int) []Blueprint {
	if n <= 0 || n >= len(bps) {
		return bps
	}
	return bps[:n]
}

// ── Runner ──────────────────────────────────────────────────────────

// Runner fans blueprint searches out over a bounded set of goroutines and
// folds their results into puzzle answers.
type Runner struct {
	cfg     Config
	log     *slog.Logger
	metrics *Metrics
}

// NewRunner creates a runner. log and metrics may be nil.
func NewRunner(cfg Config, log *slog.Logger, metrics *Metrics) *Runner {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Runner{cfg: cfg, log: log, metrics: metrics}
}

func (r *Runner) workers() int {
	if r.cfg.Workers > 0 {
		return r.cfg.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// SimulateAll searches every blueprint independently and returns results in
// input order. A cancelled ctx stops searches that have not started yet;
// running searches always finish.
func (r *Runner) SimulateAll(ctx context.Context, bps []Blueprint, minutes uint32) ([]BlueprintResult, error) {
	results := make([]BlueprintResult, len(bps))
	opts := r.cfg.searchOptions()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers())
	for i := range bps {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			bp := bps[i]
			sr := SimulateWith(bp, minutes, opts)
			r.metrics.Observe(sr)
			r.log.Debug("blueprint searched",
				"blueprint", bp.ID,
				"minutes", minutes,
				"geodes", sr.Geodes,
				"nodes", sr.Stats.Nodes,
				"elapsed", sr.Elapsed)
			results[i] = BlueprintResult{
				ID:      bp.ID,
				Minutes: minutes,
				Geodes:  sr.Geodes,
				Quality: uint64(bp.ID) * uint64(sr.Geodes),
				Nodes:   sr.Stats.Nodes,
				TimeMs:  sr.Elapsed.Milliseconds(),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// PartOne sums the quality levels of every selected blueprint.
func (r *Runner) PartOne(ctx context.Context, bps []Blueprint) (PartResult, error) {
	return r.part(ctx, 1, bps, r.cfg.PartOne, QualitySum)
}

// PartTwo multiplies the geode counts of the first few blueprints.
func (r *Runner) PartTwo(ctx context.Context, bps []Blueprint) (PartResult, error) {
	return r.part(ctx, 2, bps, r.cfg.PartTwo, GeodeProduct)
}

// Run computes the requested part, or both when part is 0.
func (r *Runner) Run(ctx context.Context, bps []Blueprint, part int) ([]PartResult, error) {
	var out []PartResult
	if part == 0 || part == 1 {
		res, err := r.PartOne(ctx, bps)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	if part == 0 || part == 2 {
		res, err := r.PartTwo(ctx, bps)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	if out == nil {
		return nil, fmt.Errorf("unknown part %d", part)
	}
	return out, nil
}

func (r *Runner) part(ctx context.Context, n int, bps []Blueprint, pc PartConfig, fold func([]BlueprintResult) uint64) (PartResult, error) {
	start := time.Now()
	selected := firstN(bps, pc.Blueprints)
	r.log.Info("part started", "part", n, "blueprints", len(selected), "minutes", pc.Minutes, "workers", r.workers())

	rs, err := r.SimulateAll(ctx, selected, pc.Minutes)
	if err != nil {
		return PartResult{}, fmt.Errorf("part %d: %w", n, err)
	}
	res := PartResult{
		Part:       n,
		Minutes:    pc.Minutes,
		Answer:     fold(rs),
		Blueprints: rs,
		TimeMs:     time.Since(start).Milliseconds(),
	}
	r.log.Info("part done", "part", n, "answer", res.Answer, "elapsed", time.Since(start))
	return res, nil
}
