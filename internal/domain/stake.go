package domain

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Side is a coin face
type Side string

const (
	SideHeads Side = "heads"
	SideTails Side = "tails"
)

var (
	foldCase  = cases.Lower(language.Und)
	titleCase = cases.Title(language.English)
)

// ParseSide normalizes s case-insensitively. ok is false for anything but heads or tails.
func ParseSide(s string) (Side, bool) {
	switch Side(foldCase.String(s)) {
	case SideHeads:
		return SideHeads, true
	case SideTails:
		return SideTails, true
	}
	return "", false
}

// Opposite returns the other face
func (s Side) Opposite() Side {
	if s == SideHeads {
		return SideTails
	}
	return SideHeads
}

// Title returns the display form, e.g. "Heads"
func (s Side) Title() string {
	return titleCase.String(string(s))
}

// StakeKind is the closed set of items that can be staked on a round
type StakeKind string

const (
	StakeLead          StakeKind = ItemLead
	StakeHeavyLead     StakeKind = ItemHeavyLead
	StakeLeadmite      StakeKind = ItemLeadmite
	StakeHeavyLeadmite StakeKind = ItemHeavyLeadmite
	StakeSpring        StakeKind = ItemSpring
	StakeGenieCoin     StakeKind = ItemGenieCoin
	StakeCheaterCoin   StakeKind = ItemCheaterCoin
)

// AllStakeKinds lists every kind in evaluation order
var AllStakeKinds = []StakeKind{
	StakeLead, StakeHeavyLead, StakeLeadmite, StakeHeavyLeadmite,
	StakeSpring, StakeGenieCoin, StakeCheaterCoin,
}

// MassKinds are the weighted items consumed on a round
var MassKinds = []StakeKind{StakeLead, StakeHeavyLead}

// ParasiteKinds are the enemy items that can be staked for elimination
var ParasiteKinds = []StakeKind{StakeLeadmite, StakeHeavyLeadmite}

// Valid reports whether k is a known kind
func (k StakeKind) Valid() bool {
	for _, known := range AllStakeKinds {
		if k == known {
			return true
		}
	}
	return false
}

// ItemID returns the catalog item backing the kind
func (k StakeKind) ItemID() string {
	return string(k)
}

// Weighted reports whether the kind biases the coin and needs a side
func (k StakeKind) Weighted() bool {
	switch k {
	case StakeLead, StakeHeavyLead, StakeLeadmite, StakeHeavyLeadmite:
		return true
	}
	return false
}

// Ability reports whether the kind replaces the normal toss
func (k StakeKind) Ability() bool {
	return k == StakeGenieCoin || k == StakeCheaterCoin
}

// Bias returns the per-unit shift applied to P(heads)
func (k StakeKind) Bias() float64 {
	switch k {
	case StakeLead:
		return BiasLead
	case StakeHeavyLead:
		return BiasHeavyLead
	case StakeLeadmite:
		return BiasLeadmite
	case StakeHeavyLeadmite:
		return BiasHeavyLeadmite
	}
	return 0
}

// Placement is the quantity and side declared for one kind. Toggle kinds ignore Side.
type Placement struct {
	Quantity int    `json:"quantity"`
	Side     string `json:"side,omitempty"`
}

// Stakes are the placements declared for a round
type Stakes map[StakeKind]Placement

// Quantity returns the declared quantity of k, or 0 when not staked
func (s Stakes) Quantity(k StakeKind) int {
	p, ok := s[k]
	if !ok || p.Quantity <= 0 {
		return 0
	}
	return p.Quantity
}

// Has reports whether k is staked with a positive quantity
func (s Stakes) Has(k StakeKind) bool {
	return s.Quantity(k) > 0
}

// Side returns the normalized side declared for k
func (s Stakes) Side(k StakeKind) (Side, bool) {
	p, ok := s[k]
	if !ok {
		return "", false
	}
	return ParseSide(p.Side)
}

// Mass returns lead + 2*heavyLead
func (s Stakes) Mass() int {
	return s.Quantity(StakeLead) + HeavyLeadMassUnits*s.Quantity(StakeHeavyLead)
}

// Active lists staked kinds in evaluation order
func (s Stakes) Active() []StakeKind {
	var kinds []StakeKind
	for _, k := range AllStakeKinds {
		if s.Has(k) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}
