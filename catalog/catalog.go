package catalog

// Prize is an immutable catalog entry. Created once at catalog-build time.
type Prize struct {
	ID           string        `json:"id" yaml:"id"`
	Name         string        `json:"name" yaml:"name"`
	DisplayValue string        `json:"displayValue,omitempty" yaml:"display_value,omitempty"`
	Emoji        string        `json:"emoji" yaml:"emoji"`
	Effect       *EffectBundle `json:"effect,omitempty" yaml:"effect,omitempty"`
}

// EffectBundle is what a prize grants when revealed: economy gold, an
// achievement to unlock, and/or a hand effect applied when the ticket is
// banked into a hand. All fields optional.
type EffectBundle struct {
	Gold          int64       `json:"gold,omitempty" yaml:"gold,omitempty"`
	AchievementID string      `json:"achievementId,omitempty" yaml:"achievement_id,omitempty"`
	HandEffect    *HandEffect `json:"handEffect,omitempty" yaml:"hand_effect,omitempty"`
}

// GoldValue returns the prize's economy value, 0 if it grants none.
func (p *Prize) GoldValue() int64 {
	if p == nil || p.Effect == nil {
		return 0
	}
	return p.Effect.Gold
}

// PrizeConfig weights a prize inside one layout's pool.
// Eligible only when Weight > 0 and PrizeID resolves in the catalog.
type PrizeConfig struct {
	PrizeID string  `json:"prizeId" yaml:"prize_id"`
	Weight  float64 `json:"weight" yaml:"weight"`
}

// ScratchAreaConfig identifies one scratchable area. Geometry and the reveal
// threshold are consumed by the presentation layer; the core only uses the ID.
type ScratchAreaConfig struct {
	ID              string  `json:"id" yaml:"id"`
	X               float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y               float64 `json:"y,omitempty" yaml:"y,omitempty"`
	Width           float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Height          float64 `json:"height,omitempty" yaml:"height,omitempty"`
	RevealThreshold float64 `json:"revealThreshold,omitempty" yaml:"reveal_threshold,omitempty"`
}

// TicketLayout is the static configuration of one ticket type.
// Area IDs must be unique within a layout. Condition-specific parameters
// (TargetPrizeID, ValueThreshold, WinningSymbolAreaID, MatchCount) are only
// read when the matching condition is selected.
type TicketLayout struct {
	ID             string              `json:"id" yaml:"id"`
	Name           string              `json:"name,omitempty" yaml:"name,omitempty"`
	Areas          []ScratchAreaConfig `json:"areas" yaml:"areas"`
	RevealMechanic RevealMechanic      `json:"revealMechanic,omitempty" yaml:"reveal_mechanic,omitempty"`
	WinCondition   WinCondition        `json:"winCondition" yaml:"win_condition"`
	Prizes         []PrizeConfig       `json:"prizes" yaml:"prizes"`

	// find_one
	TargetPrizeID string `json:"targetPrizeId,omitempty" yaml:"target_prize_id,omitempty"`
	// total_value_threshold
	ValueThreshold int64 `json:"valueThreshold,omitempty" yaml:"value_threshold,omitempty"`
	// find_one_dynamic
	WinningSymbolAreaID string `json:"winningSymbolAreaId,omitempty" yaml:"winning_symbol_area_id,omitempty"`
	// match_symbols (legacy, externally supplied count)
	MatchCount int `json:"matchCount,omitempty" yaml:"match_count,omitempty"`
}

// AreaIndex returns the position of an area within the layout, or -1.
func (l *TicketLayout) AreaIndex(areaID string) int {
	for i := range l.Areas {
		if l.Areas[i].ID == areaID {
			return i
		}
	}
	return -1
}
