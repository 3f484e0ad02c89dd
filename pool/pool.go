package pool

import (
	"errors"

	"go.uber.org/zap"

	"github.com/goldrush-games/scratch-engine/catalog"
)

var (
	// ErrNoPrizeConfiguration is returned when a layout carries no prize
	// configs at all.
	ErrNoPrizeConfiguration = errors.New("no prize configuration")
	// ErrNoValidPrizes is returned when every config was filtered out
	// (dangling prize reference or non-positive weight).
	ErrNoValidPrizes = errors.New("no valid prizes in configuration")
)

// PrizeSource resolves prize IDs. Satisfied by *catalog.Store.
type PrizeSource interface {
	GetPrizeByID(id string) *catalog.Prize
}

// Pool draws prizes from a layout-scoped weighted catalog subset.
type Pool struct {
	src PrizeSource
	rng RandomSource
	log *zap.Logger
}

// New builds a pool. A nil rng falls back to the platform generator and a
// nil logger discards diagnostics.
func New(src PrizeSource, rng RandomSource, log *zap.Logger) *Pool {
	if rng == nil {
		rng = DefaultSource()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Pool{src: src, rng: rng, log: log}
}

type weighted struct {
	prize  *catalog.Prize
	weight float64
}

// survivors filters configs down to entries with a resolvable prize and a
// positive weight, warning per skipped entry. Skips are never fatal on
// their own.
func (p *Pool) survivors(configs []catalog.PrizeConfig) []weighted {
	out := make([]weighted, 0, len(configs))
	for _, c := range configs {
		if c.Weight <= 0 {
			p.log.Warn("skipping prize config: non-positive weight",
				zap.String("prizeId", c.PrizeID),
				zap.Float64("weight", c.Weight))
			continue
		}
		prize := p.src.GetPrizeByID(c.PrizeID)
		if prize == nil {
			p.log.Warn("skipping prize config: unknown prize",
				zap.String("prizeId", c.PrizeID))
			continue
		}
		out = append(out, weighted{prize: prize, weight: c.Weight})
	}
	return out
}

// DrawPrize selects one prize with probability proportional to weight.
// The last surviving entry is the guaranteed fallback so floating-point
// remainder drift can never produce "no prize".
func (p *Pool) DrawPrize(configs []catalog.PrizeConfig) (*catalog.Prize, error) {
	if len(configs) == 0 {
		return nil, ErrNoPrizeConfiguration
	}
	valid := p.survivors(configs)
	if len(valid) == 0 {
		return nil, ErrNoValidPrizes
	}
	var total float64
	for _, w := range valid {
		total += w.weight
	}
	remainder := p.rng.Float64() * total
	for _, w := range valid {
		remainder -= w.weight
		if remainder <= 0 {
			return w.prize, nil
		}
	}
	return valid[len(valid)-1].prize, nil
}

// DrawAreaPrizes draws one prize per scratch area, independently and with
// replacement; duplicate prizes across areas are expected (the match
// conditions depend on them). Returns prizes keyed by area ID.
func (p *Pool) DrawAreaPrizes(layout *catalog.TicketLayout) (map[string]*catalog.Prize, error) {
	if layout == nil {
		return nil, ErrNoPrizeConfiguration
	}
	out := make(map[string]*catalog.Prize, len(layout.Areas))
	for _, area := range layout.Areas {
		prize, err := p.DrawPrize(layout.Prizes)
		if err != nil {
			return nil, err
		}
		out[area.ID] = prize
	}
	return out, nil
}
