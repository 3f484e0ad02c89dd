package hand

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/goldrush-games/scratch-engine/catalog"
)

// TicketResult reports one ticket's effect outcome for UI disclosure.
type TicketResult struct {
	Index     int    `json:"index"`
	Completed bool   `json:"completed"`
	Value     int64  `json:"value"`
	Note      string `json:"note"`
}

// Result is the payout of a resolved hand.
type Result struct {
	Total   int64          `json:"total"`
	Tickets []TicketResult `json:"tickets"`
}

// Engine interprets hand effects over a value buffer, one slot per ticket.
// A Resolve call owns its buffer outright; the engine itself is stateless.
type Engine struct {
	log *zap.Logger
}

func NewEngine(log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{log: log}
}

var one = decimal.NewFromInt(1)

// clampCeil rounds a slot value up to the next integer and floors it at
// zero. Applied after every write so fractional drift never compounds.
func clampCeil(d decimal.Decimal) decimal.Decimal {
	d = d.Ceil()
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// ResolveHand resolves a hand's payout without mutating the hand.
func (e *Engine) ResolveHand(h *Hand) Result {
	if h == nil {
		return Result{}
	}
	return e.Resolve(h.Tickets)
}

// Resolve seeds the value buffer with each ticket's base gold, applies the
// declared effects strictly in ticket order, and returns the aggregate
// payout plus a per-ticket account of what happened.
func (e *Engine) Resolve(tickets []Ticket) Result {
	buf := make([]decimal.Decimal, len(tickets))
	for i, t := range tickets {
		buf[i] = clampCeil(decimal.NewFromInt(t.Gold))
	}

	results := make([]TicketResult, len(tickets))
	for i, t := range tickets {
		r := TicketResult{Index: i, Completed: true, Note: "no effect"}
		if t.Effect != nil {
			r.Completed, r.Note = e.applyTicket(buf, i, t.Effect)
			if !r.Completed {
				e.log.Debug("hand effect incomplete",
					zap.Int("index", i),
					zap.String("note", r.Note))
			}
		}
		results[i] = r
	}

	total := decimal.Zero
	for i := range buf {
		results[i].Value = buf[i].IntPart()
		total = total.Add(buf[i])
	}
	return Result{Total: clampCeil(total).IntPart(), Tickets: results}
}

// applyTicket dispatches one ticket's declared effect.
func (e *Engine) applyTicket(buf []decimal.Decimal, idx int, eff *catalog.HandEffect) (bool, string) {
	if eff.Op == catalog.OpDiff {
		return e.applyDiff(buf, idx, eff)
	}
	return applyArithmetic(buf, idx, eff.Op, eff.Target, eff.Amount)
}

// applyArithmetic writes one arithmetic effect to its resolved target. An
// unavailable target leaves the buffer untouched and reports incomplete.
func applyArithmetic(buf []decimal.Decimal, idx int, op catalog.HandEffectOp, target catalog.HandEffectTarget, amount float64) (bool, string) {
	amt := decimal.NewFromFloat(amount)

	if target == catalog.TargetHand {
		return rescaleHand(buf, op, amt)
	}

	slot := idx
	switch target {
	case catalog.TargetSelf:
	case catalog.TargetPrior:
		slot = idx - 1
		if slot < 0 {
			return false, "no prior ticket"
		}
	case catalog.TargetNext:
		slot = idx + 1
		if slot >= len(buf) {
			return false, "no next ticket"
		}
	default:
		return false, fmt.Sprintf("unknown target %q", target)
	}

	next, ok := applyOp(buf[slot], op, amt)
	if !ok {
		return false, fmt.Sprintf("unknown operation %q", op)
	}
	buf[slot] = clampCeil(next)
	return true, fmt.Sprintf("%s %s on %s ticket", op, amt, targetWord(target))
}

// rescaleHand applies the operation to the aggregate and redistributes the
// change proportionally: every slot is scaled by newAggregate/oldAggregate
// (denominator floored at 1). An explicit array transform, not a localized
// write.
func rescaleHand(buf []decimal.Decimal, op catalog.HandEffectOp, amt decimal.Decimal) (bool, string) {
	oldAgg := decimal.Zero
	for _, v := range buf {
		oldAgg = oldAgg.Add(v)
	}
	newAgg, ok := applyOp(oldAgg, op, amt)
	if !ok {
		return false, fmt.Sprintf("unknown operation %q", op)
	}
	newAgg = clampCeil(newAgg)
	denom := oldAgg
	if denom.LessThan(one) {
		denom = one
	}
	ratio := newAgg.Div(denom)
	for i := range buf {
		buf[i] = clampCeil(buf[i].Mul(ratio))
	}
	return true, fmt.Sprintf("%s %s across the whole hand (ratio %s)", op, amt, ratio.Round(4))
}

// applyDiff branches on the sign of (prior - next). Both neighbors must
// exist; the first matching branch's nested effect is applied exactly like
// a direct effect, including the whole-hand rescale case.
func (e *Engine) applyDiff(buf []decimal.Decimal, idx int, eff *catalog.HandEffect) (bool, string) {
	if idx-1 < 0 {
		return false, "diff effect needs a prior ticket"
	}
	if idx+1 >= len(buf) {
		return false, "diff effect needs a next ticket"
	}
	delta := buf[idx-1].Sub(buf[idx+1])
	for _, br := range eff.Branches {
		if !branchMatches(br.Compare, delta) {
			continue
		}
		if br.Op == catalog.OpDiff {
			return false, "nested diff operation is not supported"
		}
		ok, note := applyArithmetic(buf, idx, br.Op, br.Target, br.Amount)
		if !ok {
			return false, note
		}
		return true, fmt.Sprintf("diff %s: %s", br.Compare, note)
	}
	return true, "no condition met"
}

func branchMatches(c catalog.DiffCompare, delta decimal.Decimal) bool {
	switch c {
	case catalog.CompareGreater:
		return delta.IsPositive()
	case catalog.CompareLess:
		return delta.IsNegative()
	case catalog.CompareEqual:
		return delta.IsZero()
	}
	return false
}

func applyOp(cur decimal.Decimal, op catalog.HandEffectOp, amt decimal.Decimal) (decimal.Decimal, bool) {
	switch op {
	case catalog.OpMultiply:
		return cur.Mul(amt), true
	case catalog.OpAdd:
		return cur.Add(amt), true
	case catalog.OpSubtract:
		return cur.Sub(amt), true
	case catalog.OpSet:
		return amt, true
	}
	return decimal.Zero, false
}

func targetWord(t catalog.HandEffectTarget) string {
	switch t {
	case catalog.TargetSelf:
		return "own"
	case catalog.TargetPrior:
		return "prior"
	case catalog.TargetNext:
		return "next"
	}
	return string(t)
}
