package coin

import "github.com/osse101/CoinToss_Go/internal/domain"

// AmplifiedScore doubles on a win and halves (rounding down) on a loss
func AmplifiedScore(score int, won bool) int {
	if won {
		return score * domain.AmplifierMultiplier
	}
	return score / domain.AmplifierDivisor
}

// RiggedScore adds the bonus on a win and subtracts the penalty on a loss, never below zero
func RiggedScore(score int, won bool) int {
	if won {
		return score + domain.RiggedWinBonus
	}
	return max(score-domain.RiggedLossPenalty, 0)
}
