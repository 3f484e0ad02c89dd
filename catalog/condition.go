package catalog

// WinCondition names the policy deciding whether a set of revealed prizes is
// a win. The vocabulary includes deprecated variants kept only so old
// persisted layouts still parse; new layouts should use the current set.
type WinCondition string

const (
	ConditionAlwaysWin      WinCondition = "always_win"
	ConditionMatchTwo       WinCondition = "match_two"
	ConditionMatchThree     WinCondition = "match_three"
	ConditionMatchAll       WinCondition = "match_all"
	ConditionFindOne        WinCondition = "find_one"
	ConditionFindOneDynamic WinCondition = "find_one_dynamic"
	ConditionTotalValue     WinCondition = "total_value_threshold"

	// Deprecated: reveal-driven win from before prize matching existed.
	ConditionRevealAll WinCondition = "reveal_all_areas"
	// Deprecated: any single reveal wins.
	ConditionRevealAny WinCondition = "reveal_any_area"
	// Deprecated: match with an externally supplied count; use
	// ConditionMatchTwo / ConditionMatchThree instead.
	ConditionMatchSymbols WinCondition = "match_symbols"
	// Deprecated: progressive tickets win when the last area is revealed.
	ConditionProgressive WinCondition = "progressive"
)

// Deprecated reports whether the condition is a legacy variant.
func (c WinCondition) Deprecated() bool {
	switch c {
	case ConditionRevealAll, ConditionRevealAny, ConditionMatchSymbols, ConditionProgressive:
		return true
	}
	return false
}

// Known reports whether the condition is part of the vocabulary at all.
func (c WinCondition) Known() bool {
	switch c {
	case ConditionAlwaysWin, ConditionMatchTwo, ConditionMatchThree,
		ConditionMatchAll, ConditionFindOne, ConditionFindOneDynamic,
		ConditionTotalValue:
		return true
	}
	return c.Deprecated()
}

// RevealMechanic is a display-only tag describing how prize information is
// shown per area. It never affects win determination.
type RevealMechanic string

const (
	MechanicScratch RevealMechanic = "scratch"
	MechanicTap     RevealMechanic = "tap"

	// Deprecated: areas uncovered automatically on purchase.
	MechanicAuto RevealMechanic = "auto_reveal"
)
