package hand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldrush-games/scratch-engine/catalog"
)

func tick(gold int64, eff *catalog.HandEffect) Ticket {
	return Ticket{LayoutID: "l", PrizeID: "p", Gold: gold, Effect: eff}
}

func TestResolve_NoEffects(t *testing.T) {
	e := NewEngine(nil)
	res := e.Resolve([]Ticket{tick(100, nil), tick(50, nil)})
	assert.Equal(t, int64(150), res.Total)
	require.Len(t, res.Tickets, 2)
	for _, tr := range res.Tickets {
		assert.True(t, tr.Completed)
	}
	assert.Equal(t, int64(100), res.Tickets[0].Value)
	assert.Equal(t, int64(50), res.Tickets[1].Value)
}

func TestResolve_MultiplySelf(t *testing.T) {
	e := NewEngine(nil)
	res := e.Resolve([]Ticket{
		tick(100, &catalog.HandEffect{Op: catalog.OpMultiply, Target: catalog.TargetSelf, Amount: 2}),
		tick(100, nil),
	})
	assert.Equal(t, int64(300), res.Total)
	assert.Equal(t, int64(200), res.Tickets[0].Value)
	assert.Equal(t, int64(100), res.Tickets[1].Value)
}

func TestResolve_WholeHandRescale(t *testing.T) {
	e := NewEngine(nil)
	res := e.Resolve([]Ticket{
		tick(50, nil),
		tick(50, &catalog.HandEffect{Op: catalog.OpAdd, Target: catalog.TargetHand, Amount: 150}),
		tick(50, nil),
	})
	// Aggregate 150 -> 300 (ratio 2): every slot rescales to 100.
	assert.Equal(t, int64(300), res.Total)
	for _, tr := range res.Tickets {
		assert.Equal(t, int64(100), tr.Value)
		assert.True(t, tr.Completed)
	}
}

func TestResolve_WholeHandRescale_ZeroAggregate(t *testing.T) {
	e := NewEngine(nil)
	res := e.Resolve([]Ticket{
		tick(0, &catalog.HandEffect{Op: catalog.OpAdd, Target: catalog.TargetHand, Amount: 100}),
		tick(0, nil),
	})
	// Zero slots rescale to zero regardless of the aggregate change.
	assert.Equal(t, int64(0), res.Total)
	assert.True(t, res.Tickets[0].Completed)
}

func TestResolve_PriorAndNextTargets(t *testing.T) {
	e := NewEngine(nil)
	res := e.Resolve([]Ticket{
		tick(100, &catalog.HandEffect{Op: catalog.OpMultiply, Target: catalog.TargetSelf, Amount: 2}),
		tick(100, &catalog.HandEffect{Op: catalog.OpAdd, Target: catalog.TargetPrior, Amount: 50}),
	})
	// Effects run in ticket order: slot0 doubles to 200, then gains 50.
	assert.Equal(t, int64(350), res.Total)
	assert.Equal(t, int64(250), res.Tickets[0].Value)

	res = e.Resolve([]Ticket{
		tick(10, &catalog.HandEffect{Op: catalog.OpSet, Target: catalog.TargetNext, Amount: 75}),
		tick(100, nil),
	})
	assert.Equal(t, int64(85), res.Total)
	assert.Equal(t, int64(75), res.Tickets[1].Value)
}

func TestResolve_UnavailableNeighbors(t *testing.T) {
	e := NewEngine(nil)

	res := e.Resolve([]Ticket{
		tick(100, &catalog.HandEffect{Op: catalog.OpAdd, Target: catalog.TargetPrior, Amount: 50}),
	})
	assert.False(t, res.Tickets[0].Completed)
	assert.Equal(t, int64(100), res.Tickets[0].Value, "buffer must be unchanged")
	assert.Equal(t, int64(100), res.Total)

	res = e.Resolve([]Ticket{
		tick(100, nil),
		tick(100, &catalog.HandEffect{Op: catalog.OpMultiply, Target: catalog.TargetNext, Amount: 3}),
	})
	assert.False(t, res.Tickets[1].Completed)
	assert.Equal(t, int64(200), res.Total)
}

func TestResolve_SubtractFloorsAtZero(t *testing.T) {
	e := NewEngine(nil)
	res := e.Resolve([]Ticket{
		tick(30, &catalog.HandEffect{Op: catalog.OpSubtract, Target: catalog.TargetSelf, Amount: 100}),
	})
	assert.Equal(t, int64(0), res.Total)
	assert.Equal(t, int64(0), res.Tickets[0].Value)
}

func TestResolve_FractionalRoundsUp(t *testing.T) {
	e := NewEngine(nil)
	res := e.Resolve([]Ticket{
		tick(101, &catalog.HandEffect{Op: catalog.OpMultiply, Target: catalog.TargetSelf, Amount: 1.5}),
	})
	// 151.5 rounds up, never truncates.
	assert.Equal(t, int64(152), res.Tickets[0].Value)
	assert.Equal(t, int64(152), res.Total)
}

func diffEffect(branches ...catalog.DiffBranch) *catalog.HandEffect {
	return &catalog.HandEffect{Op: catalog.OpDiff, Branches: branches}
}

func TestResolve_DiffGreaterBranch(t *testing.T) {
	e := NewEngine(nil)
	res := e.Resolve([]Ticket{
		tick(100, nil),
		tick(10, diffEffect(
			catalog.DiffBranch{Compare: catalog.CompareGreater, Op: catalog.OpMultiply, Target: catalog.TargetSelf, Amount: 5},
			catalog.DiffBranch{Compare: catalog.CompareLess, Op: catalog.OpSet, Target: catalog.TargetSelf, Amount: 0},
		)),
		tick(50, nil),
	})
	// prior(100) - next(50) > 0: the greater branch fires.
	assert.True(t, res.Tickets[1].Completed)
	assert.Equal(t, int64(50), res.Tickets[1].Value)
	assert.Equal(t, int64(200), res.Total)
}

func TestResolve_DiffEqualBranch(t *testing.T) {
	e := NewEngine(nil)
	res := e.Resolve([]Ticket{
		tick(75, nil),
		tick(10, diffEffect(
			catalog.DiffBranch{Compare: catalog.CompareGreater, Op: catalog.OpSet, Target: catalog.TargetSelf, Amount: 0},
			catalog.DiffBranch{Compare: catalog.CompareEqual, Op: catalog.OpAdd, Target: catalog.TargetSelf, Amount: 25},
		)),
		tick(75, nil),
	})
	assert.True(t, res.Tickets[1].Completed)
	assert.Equal(t, int64(35), res.Tickets[1].Value)
}

func TestResolve_DiffNoBranchMatches(t *testing.T) {
	e := NewEngine(nil)
	res := e.Resolve([]Ticket{
		tick(10, nil),
		tick(40, diffEffect(
			catalog.DiffBranch{Compare: catalog.CompareGreater, Op: catalog.OpMultiply, Target: catalog.TargetSelf, Amount: 2},
		)),
		tick(90, nil),
	})
	// prior - next is negative and only a greater branch exists.
	assert.True(t, res.Tickets[1].Completed)
	assert.Equal(t, "no condition met", res.Tickets[1].Note)
	assert.Equal(t, int64(40), res.Tickets[1].Value)
}

func TestResolve_DiffMissingNeighbor(t *testing.T) {
	e := NewEngine(nil)
	eff := diffEffect(catalog.DiffBranch{Compare: catalog.CompareGreater, Op: catalog.OpAdd, Target: catalog.TargetSelf, Amount: 10})

	// Diff on the last ticket: no next neighbor.
	res := e.Resolve([]Ticket{tick(10, nil), tick(20, eff)})
	assert.False(t, res.Tickets[1].Completed)
	assert.Equal(t, int64(20), res.Tickets[1].Value)
	assert.Equal(t, int64(30), res.Total)

	// Diff on the first ticket: no prior neighbor.
	res = e.Resolve([]Ticket{tick(20, eff), tick(10, nil)})
	assert.False(t, res.Tickets[0].Completed)
	assert.Equal(t, int64(30), res.Total)
}

func TestResolve_DiffWholeHandBranch(t *testing.T) {
	e := NewEngine(nil)
	res := e.Resolve([]Ticket{
		tick(100, nil),
		tick(50, diffEffect(
			catalog.DiffBranch{Compare: catalog.CompareGreater, Op: catalog.OpMultiply, Target: catalog.TargetHand, Amount: 2},
		)),
		tick(50, nil),
	})
	// Aggregate 200 doubles; every slot doubles with it.
	assert.Equal(t, int64(400), res.Total)
	assert.Equal(t, int64(200), res.Tickets[0].Value)
	assert.Equal(t, int64(100), res.Tickets[1].Value)
	assert.Equal(t, int64(100), res.Tickets[2].Value)
}

func TestHand_AddAndBounds(t *testing.T) {
	h := NewHand()
	require.NotEmpty(t, h.ID)
	for i := 0; i < MaxHandSize; i++ {
		require.NoError(t, h.Add(tick(10, nil)))
	}
	assert.ErrorIs(t, h.Add(tick(10, nil)), ErrHandFull)
	assert.Len(t, h.Tickets, MaxHandSize)

	h.Clear()
	assert.Empty(t, h.Tickets)
	require.NoError(t, h.Add(tick(10, nil)))
}

func TestResolveHand(t *testing.T) {
	e := NewEngine(nil)
	h := NewHand()
	require.NoError(t, h.Add(tick(100, nil)))
	require.NoError(t, h.Add(tick(100, &catalog.HandEffect{Op: catalog.OpMultiply, Target: catalog.TargetSelf, Amount: 2})))
	res := e.ResolveHand(h)
	assert.Equal(t, int64(300), res.Total)

	assert.Equal(t, Result{}, e.ResolveHand(nil))
	// Resolution must not mutate the banked tickets.
	assert.Equal(t, int64(100), h.Tickets[1].Gold)
}
