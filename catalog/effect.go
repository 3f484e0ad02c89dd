package catalog

// HandEffectOp is the arithmetic a hand effect applies.
type HandEffectOp string

const (
	OpMultiply HandEffectOp = "multiply"
	OpAdd      HandEffectOp = "add"
	OpSubtract HandEffectOp = "subtract"
	OpSet      HandEffectOp = "set"
	// OpDiff branches on the sign of (prior - next) and applies the matching
	// branch's nested effect.
	OpDiff HandEffectOp = "diff"
)

// HandEffectTarget selects which slot(s) of the hand buffer an effect writes.
type HandEffectTarget string

const (
	TargetSelf  HandEffectTarget = "self"
	TargetPrior HandEffectTarget = "prior"
	TargetNext  HandEffectTarget = "next"
	// TargetHand rescales every slot proportionally to the aggregate change.
	TargetHand HandEffectTarget = "hand"
)

// DiffCompare is a comparison of (prior - next) against zero.
type DiffCompare string

const (
	CompareGreater DiffCompare = "greater"
	CompareLess    DiffCompare = "less"
	CompareEqual   DiffCompare = "equal"
)

// DiffBranch is one ordered conditional arm of a diff effect.
type DiffBranch struct {
	Compare DiffCompare      `json:"compare" yaml:"compare"`
	Op      HandEffectOp     `json:"op" yaml:"op"`
	Target  HandEffectTarget `json:"target" yaml:"target"`
	Amount  float64          `json:"amount" yaml:"amount"`
}

// HandEffect describes the modifier a banked ticket applies to its hand.
// Branches is only read when Op is OpDiff; the first branch whose comparison
// holds wins.
type HandEffect struct {
	Op       HandEffectOp     `json:"op" yaml:"op"`
	Target   HandEffectTarget `json:"target" yaml:"target"`
	Amount   float64          `json:"amount,omitempty" yaml:"amount,omitempty"`
	Branches []DiffBranch     `json:"branches,omitempty" yaml:"branches,omitempty"`
}
