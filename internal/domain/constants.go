package domain

// Catalog item identifiers - stable code identifiers shared with the seed migration
const (
	ItemLead          = "lead"
	ItemHeavyLead     = "heavyLead"
	ItemLeadmite      = "leadmite"
	ItemHeavyLeadmite = "heavyLeadmite"
	ItemSpring        = "spring"
	ItemGenieCoin     = "genieCoin"
	ItemCheaterCoin   = "cheaterCoin"
)

// Coin outcome bias per staked unit
const (
	BaseHeadsProbability = 0.5

	BiasLead          = 0.07
	BiasHeavyLead     = 0.16
	BiasLeadmite      = 0.04
	BiasHeavyLeadmite = 0.10
)

// Stake limits
const (
	// MaxStakeMass caps lead + 2*heavyLead in one round
	MaxStakeMass       = 5
	HeavyLeadMassUnits = 2
)

// Scoring
const (
	PointsCorrectGuess           = 1
	PointsPerLeadmiteEliminated  = 2
	PointsPerHeavyLeadmiteKilled = 3

	AmplifierMultiplier = 2
	AmplifierDivisor    = 2

	RiggedWinProbability = 0.9
	RiggedWinBonus       = 2
	RiggedLossPenalty    = 10
)

// Reward generation
const (
	RarityRollCeiling = 100

	// DefaultEnemyMinScore is the lowest score at which enemies can spawn
	DefaultEnemyMinScore = 1
)

// Round messages
const (
	MsgCorrectGuess     = "You guessed correctly! Toss again!"
	MsgSaved            = "You guessed wrong, but your spring saved you! Toss again!"
	MsgWrongGuess       = "You guessed wrong! Game over."
	MsgAmplifierWin     = "You guessed correctly! Score doubled!"
	MsgAmplifierLoss    = "You guessed wrong! Score halved!"
	MsgRiggedWin        = "You guessed correctly! 2 points!"
	MsgRiggedLoss       = "You guessed wrong! -10 points!"
	MsgNoParasiteEating = " No leads or heavy leads were eaten this round.)"
)
