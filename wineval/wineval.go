// Package wineval decides whether a set of revealed scratch areas wins a
// ticket under the layout's declared win condition. Evaluation never fails:
// missing condition parameters degrade to a losing outcome plus a diagnostic
// so ticket resolution can't abort mid-game.
package wineval

import (
	"go.uber.org/zap"

	"github.com/goldrush-games/scratch-engine/catalog"
)

// Evaluator is a stateless condition dispatcher. The logger is the
// diagnostic sink for degraded evaluations; nil discards.
type Evaluator struct {
	log *zap.Logger
}

func New(log *zap.Logger) *Evaluator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Evaluator{log: log}
}

// IsWinner reports whether the revealed areas win the ticket. areaPrizes
// maps area ID to the prize drawn for it and may be nil for the
// reveal-driven legacy conditions that never inspect prizes. The function
// is pure: identical inputs always produce identical results.
func (e *Evaluator) IsWinner(layout *catalog.TicketLayout, revealedAreaIDs []string, areaPrizes map[string]*catalog.Prize) bool {
	if layout == nil {
		e.log.Warn("win evaluation without layout")
		return false
	}

	revealed := make(map[string]bool, len(revealedAreaIDs))
	for _, id := range revealedAreaIDs {
		revealed[id] = true
	}

	// Revealed prizes ordered by layout area order, not reveal order.
	var prizes []*catalog.Prize
	revealedCount := 0
	for _, area := range layout.Areas {
		if !revealed[area.ID] {
			continue
		}
		revealedCount++
		if p := areaPrizes[area.ID]; p != nil {
			prizes = append(prizes, p)
		}
	}

	switch layout.WinCondition {
	case catalog.ConditionAlwaysWin, catalog.ConditionRevealAny:
		return revealedCount >= 1

	case catalog.ConditionMatchTwo:
		return maxEmojiCount(prizes) >= 2

	case catalog.ConditionMatchThree:
		return maxEmojiCount(prizes) >= 3

	case catalog.ConditionMatchAll:
		if revealedCount < len(layout.Areas) || len(prizes) == 0 {
			return false
		}
		return maxEmojiCount(prizes) == len(prizes)

	case catalog.ConditionFindOne:
		if layout.TargetPrizeID == "" {
			e.log.Warn("find_one layout missing target prize id",
				zap.String("layoutId", layout.ID))
			return false
		}
		for _, p := range prizes {
			if p.ID == layout.TargetPrizeID {
				return true
			}
		}
		return false

	case catalog.ConditionFindOneDynamic:
		return e.findOneDynamic(layout, revealed, areaPrizes)

	case catalog.ConditionTotalValue:
		if layout.ValueThreshold <= 0 {
			e.log.Warn("total_value_threshold layout missing threshold",
				zap.String("layoutId", layout.ID))
			return false
		}
		var sum int64
		for _, p := range prizes {
			sum += p.GoldValue()
		}
		return sum >= layout.ValueThreshold

	case catalog.ConditionRevealAll:
		return len(layout.Areas) > 0 && revealedCount == len(layout.Areas)

	case catalog.ConditionMatchSymbols:
		if layout.MatchCount <= 0 {
			e.log.Warn("match_symbols layout missing match count",
				zap.String("layoutId", layout.ID))
			return false
		}
		return maxEmojiCount(prizes) >= layout.MatchCount

	case catalog.ConditionProgressive:
		if len(layout.Areas) == 0 {
			return false
		}
		return revealed[layout.Areas[len(layout.Areas)-1].ID]
	}

	e.log.Warn("unknown win condition",
		zap.String("layoutId", layout.ID),
		zap.String("condition", string(layout.WinCondition)))
	return false
}

// findOneDynamic: the designated winning-symbol area supplies the target
// emoji once revealed; any *other* revealed area matching it wins. The
// designated area itself never counts as a match target.
func (e *Evaluator) findOneDynamic(layout *catalog.TicketLayout, revealed map[string]bool, areaPrizes map[string]*catalog.Prize) bool {
	symbolArea := layout.WinningSymbolAreaID
	if symbolArea == "" || layout.AreaIndex(symbolArea) < 0 {
		e.log.Warn("find_one_dynamic layout missing winning symbol area",
			zap.String("layoutId", layout.ID),
			zap.String("winningSymbolAreaId", symbolArea))
		return false
	}
	if !revealed[symbolArea] {
		return false
	}
	target := areaPrizes[symbolArea]
	if target == nil {
		return false
	}
	for _, area := range layout.Areas {
		if area.ID == symbolArea || !revealed[area.ID] {
			continue
		}
		if p := areaPrizes[area.ID]; p != nil && p.Emoji == target.Emoji {
			return true
		}
	}
	return false
}

// maxEmojiCount returns the highest occurrence count of any single emoji.
func maxEmojiCount(prizes []*catalog.Prize) int {
	counts := make(map[string]int, len(prizes))
	max := 0
	for _, p := range prizes {
		counts[p.Emoji]++
		if counts[p.Emoji] > max {
			max = counts[p.Emoji]
		}
	}
	return max
}
