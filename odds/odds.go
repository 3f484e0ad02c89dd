// Package odds derives display-ready win and prize probabilities from a
// ticket layout. It re-derives the pool's weighting statistics from the
// static configuration, so it never needs a live draw.
package odds

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/goldrush-games/scratch-engine/catalog"
	"github.com/goldrush-games/scratch-engine/pool"
)

// PrizeOdds is one prize's disclosure line.
type PrizeOdds struct {
	PrizeID     string  `json:"prizeId"`
	Name        string  `json:"name"`
	Probability float64 `json:"probability"`
	Percent     string  `json:"percent"`
	OneIn       string  `json:"oneIn"`
}

// Odds is what the presentation layer shows the player.
type Odds struct {
	PerPrize       []PrizeOdds `json:"perPrize"`
	WinProbability float64     `json:"winProbability"`
	Explanation    string      `json:"explanation"`
}

// Estimator computes odds off static layout configuration.
type Estimator struct {
	src pool.PrizeSource
	log *zap.Logger
}

func New(src pool.PrizeSource, log *zap.Logger) *Estimator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Estimator{src: src, log: log}
}

type entry struct {
	prize       *catalog.Prize
	probability float64
}

// Compute returns per-prize probabilities and the layout's estimated win
// probability. Filtering matches PrizePool: dangling references and
// non-positive weights are excluded from the total.
func (e *Estimator) Compute(layout *catalog.TicketLayout) (Odds, error) {
	if layout == nil || len(layout.Prizes) == 0 {
		return Odds{}, pool.ErrNoPrizeConfiguration
	}

	var entries []entry
	var total float64
	for _, c := range layout.Prizes {
		if c.Weight <= 0 {
			continue
		}
		p := e.src.GetPrizeByID(c.PrizeID)
		if p == nil {
			continue
		}
		entries = append(entries, entry{prize: p, probability: c.Weight})
		total += c.Weight
	}
	if len(entries) == 0 || total <= 0 {
		return Odds{}, pool.ErrNoValidPrizes
	}
	for i := range entries {
		entries[i].probability /= total
	}

	perPrize := make([]PrizeOdds, len(entries))
	for i, en := range entries {
		perPrize[i] = PrizeOdds{
			PrizeID:     en.prize.ID,
			Name:        en.prize.Name,
			Probability: en.probability,
			Percent:     FormatPercent(en.probability),
			OneIn:       FormatOneIn(en.probability),
		}
	}

	winProb, explanation := e.winProbability(layout, entries)
	return Odds{
		PerPrize:       perPrize,
		WinProbability: clamp01(winProb),
		Explanation:    explanation,
	}, nil
}

// winProbability estimates the chance a fresh, fully revealed ticket wins.
// The match-family figure is a binomial-tail sum across prize types that
// over-counts overlapping outcomes; it is a disclosed approximation.
func (e *Estimator) winProbability(layout *catalog.TicketLayout, entries []entry) (float64, string) {
	k := len(layout.Areas)

	switch layout.WinCondition {
	case catalog.ConditionAlwaysWin, catalog.ConditionRevealAny,
		catalog.ConditionRevealAll, catalog.ConditionProgressive:
		return 1, "Every fully revealed ticket resolves as a win."

	case catalog.ConditionMatchTwo:
		return matchTail(entries, k, 2), matchExplanation
	case catalog.ConditionMatchThree:
		return matchTail(entries, k, 3), matchExplanation
	case catalog.ConditionMatchAll:
		return matchTail(entries, k, k), matchExplanation
	case catalog.ConditionMatchSymbols:
		if layout.MatchCount <= 0 {
			e.log.Warn("match_symbols layout missing match count for odds",
				zap.String("layoutId", layout.ID))
			return 0, "Win probability unavailable: missing match count."
		}
		return matchTail(entries, k, layout.MatchCount), matchExplanation

	case catalog.ConditionFindOneDynamic:
		// Designated area draws a type, then at least one of the other
		// k-1 areas draws it too. Summed across types; approximate.
		if k < 2 {
			return 0, "Win probability unavailable: needs at least two areas."
		}
		var sum float64
		for _, en := range entries {
			p := en.probability
			sum += p * (1 - math.Pow(1-p, float64(k-1)))
		}
		return sum, matchExplanation

	case catalog.ConditionFindOne:
		if layout.TargetPrizeID == "" {
			e.log.Warn("find_one layout missing target prize id for odds",
				zap.String("layoutId", layout.ID))
			return 0, "Win probability unavailable: missing target prize."
		}
		var pTarget float64
		for _, en := range entries {
			if en.prize.ID == layout.TargetPrizeID {
				pTarget += en.probability
			}
		}
		if pTarget == 0 {
			e.log.Warn("find_one target prize not in pool",
				zap.String("layoutId", layout.ID),
				zap.String("targetPrizeId", layout.TargetPrizeID))
			return 0, "Win probability unavailable: target prize not in pool."
		}
		return 1 - math.Pow(1-pTarget, float64(k)), "Exact probability of the target prize appearing at least once."

	case catalog.ConditionTotalValue:
		if layout.ValueThreshold <= 0 {
			e.log.Warn("total_value_threshold layout missing threshold for odds",
				zap.String("layoutId", layout.ID))
			return 0, "Win probability unavailable: missing value threshold."
		}
		return thresholdProbability(entries, k, layout.ValueThreshold),
			"Exact probability of revealed prize values reaching the threshold."
	}

	e.log.Warn("unknown win condition for odds",
		zap.String("layoutId", layout.ID),
		zap.String("condition", string(layout.WinCondition)))
	return 0, "Win probability unavailable: unknown condition."
}

const matchExplanation = "Estimated by summing each prize's chance of appearing often enough; overlapping outcomes are counted more than once, so the figure is an upper-bound approximation."

// matchTail sums, across prize types, the binomial tail P(X >= n) for
// X ~ Binomial(k, p). Deliberately over-counts overlapping events.
func matchTail(entries []entry, k, n int) float64 {
	if k <= 0 || n <= 0 || n > k {
		return 0
	}
	var sum float64
	for _, en := range entries {
		sum += binomialTail(k, n, en.probability)
	}
	return sum
}

// binomialTail is P(X >= n) for X ~ Binomial(k, p).
func binomialTail(k, n int, p float64) float64 {
	var tail float64
	for i := n; i <= k; i++ {
		tail += choose(k, i) * math.Pow(p, float64(i)) * math.Pow(1-p, float64(k-i))
	}
	return tail
}

func choose(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	c := 1.0
	for i := 0; i < k; i++ {
		c = c * float64(n-i) / float64(i+1)
	}
	return c
}

// thresholdProbability convolves the per-draw gold-value distribution k
// times and returns the mass at sums >= threshold. Area counts are bounded
// by low tens, so the state space stays small.
func thresholdProbability(entries []entry, k int, threshold int64) float64 {
	if k <= 0 {
		return 0
	}
	perDraw := make(map[int64]float64, len(entries))
	for _, en := range entries {
		perDraw[en.prize.GoldValue()] += en.probability
	}
	dist := map[int64]float64{0: 1}
	for i := 0; i < k; i++ {
		next := make(map[int64]float64, len(dist)*len(perDraw))
		for sum, p := range dist {
			for v, pv := range perDraw {
				next[sum+v] += p * pv
			}
		}
		dist = next
	}
	var win float64
	for sum, p := range dist {
		if sum >= threshold {
			win += p
		}
	}
	return win
}

// FormatPercent renders a probability with precision that increases as the
// magnitude shrinks, down to four decimals below 0.1%.
func FormatPercent(p float64) string {
	pct := p * 100
	switch {
	case pct >= 10:
		return fmt.Sprintf("%.0f%%", pct)
	case pct >= 1:
		return fmt.Sprintf("%.1f%%", pct)
	case pct >= 0.1:
		return fmt.Sprintf("%.2f%%", pct)
	default:
		return fmt.Sprintf("%.4f%%", pct)
	}
}

// FormatOneIn renders "1 in N" odds, rounded to the nearest integer below
// 100, nearest 10 below 1000, nearest 100 above that.
func FormatOneIn(p float64) string {
	if p <= 0 {
		return "1 in ∞"
	}
	n := 1 / p
	if n < 2 {
		return "~1 in 1"
	}
	var rounded int64
	switch {
	case n < 100:
		rounded = int64(math.Round(n))
	case n < 1000:
		rounded = int64(math.Round(n/10)) * 10
	default:
		rounded = int64(math.Round(n/100)) * 100
	}
	return fmt.Sprintf("1 in %d", rounded)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
