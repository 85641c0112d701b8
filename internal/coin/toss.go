package coin

import "github.com/osse101/CoinToss_Go/internal/domain"

// HeadsProbability returns P(heads) for the weighted kinds in stakes.
// A unit staked on heads lowers it, a unit staked on tails raises it. Clamped to [0, 1].
func HeadsProbability(stakes domain.Stakes) float64 {
	p := domain.BaseHeadsProbability
	for _, kind := range domain.AllStakeKinds {
		if !kind.Weighted() {
			continue
		}
		qty := stakes.Quantity(kind)
		if qty == 0 {
			continue
		}
		side, ok := stakes.Side(kind)
		if !ok {
			continue
		}
		shift := float64(qty) * kind.Bias()
		if side == domain.SideHeads {
			p -= shift
		} else {
			p += shift
		}
	}
	return clamp(p)
}

// Resolve tosses the weighted coin
func Resolve(rng RNG, stakes domain.Stakes) domain.Side {
	return tossWith(rng, HeadsProbability(stakes))
}

// Flip tosses a fair coin
func Flip(rng RNG) domain.Side {
	return tossWith(rng, domain.BaseHeadsProbability)
}

// RiggedToss lands on guess with domain.RiggedWinProbability
func RiggedToss(rng RNG, guess domain.Side) domain.Side {
	if rng.Float64() < domain.RiggedWinProbability {
		return guess
	}
	return guess.Opposite()
}

func tossWith(rng RNG, pHeads float64) domain.Side {
	if rng.Float64() < pHeads {
		return domain.SideHeads
	}
	return domain.SideTails
}

func clamp(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
