// Package strength maps integer poker hand scores onto the scalars the
// decision and battle engines consume. Scores arrive from the evaluator as
// category*1000 plus a small rank kicker, high card at 1000 up to a royal
// flush at 10000; nothing here re-evaluates cards.
package strength

const (
	scoreOnePair       = 2000
	scoreTwoPair       = 3000
	scoreThreeOfAKind  = 4000
	scoreStraight      = 5000
	scoreFlush         = 6000
	scoreFullHouse     = 7000
	scoreFourOfAKind   = 8000
	scoreStraightFlush = 9000
	scoreRoyalFlush    = 10000
)

// Assess maps an evaluator score onto [0, 1]. The mapping is a fixed tier
// table with a proportional ramp inside the high-card band so a king-high
// hand reads a little better than a seven-high one; it never goes negative
// and never exceeds 1. Zero and negative scores sit on the floor.
func Assess(score int) float64 {
	switch {
	case score >= scoreRoyalFlush:
		return 1.0
	case score >= scoreStraightFlush:
		return 0.92
	case score >= scoreFourOfAKind:
		return 0.85
	case score >= scoreFullHouse:
		return 0.75
	case score >= scoreFlush:
		return 0.65
	case score >= scoreStraight:
		return 0.55
	case score >= scoreThreeOfAKind:
		return 0.45
	case score >= scoreTwoPair:
		return 0.35
	case score >= scoreOnePair:
		return 0.22
	case score <= 0:
		return 0.10
	default:
		return 0.10 + float64(score)/float64(scoreOnePair)*0.05
	}
}

// BattleBonusPercent converts a hand score into the flat damage bonus the
// battle engine fixes at setup. Only made hands from two pair up grant
// anything; the tiers reward the rarity of the holding, not its kickers.
func BattleBonusPercent(score int) int {
	switch {
	case score >= scoreRoyalFlush:
		return 50
	case score >= scoreStraightFlush:
		return 40
	case score >= scoreFourOfAKind:
		return 30
	case score >= scoreFullHouse:
		return 25
	case score >= scoreFlush:
		return 20
	case score >= scoreStraight:
		return 15
	case score >= scoreThreeOfAKind:
		return 10
	case score >= scoreTwoPair:
		return 5
	default:
		return 0
	}
}

// Describe names the hand tier a score falls in, for transcripts and the
// service surface.
func Describe(score int) string {
	switch {
	case score >= scoreRoyalFlush:
		return "Royal Flush"
	case score >= scoreStraightFlush:
		return "Straight Flush"
	case score >= scoreFourOfAKind:
		return "Four of a Kind"
	case score >= scoreFullHouse:
		return "Full House"
	case score >= scoreFlush:
		return "Flush"
	case score >= scoreStraight:
		return "Straight"
	case score >= scoreThreeOfAKind:
		return "Three of a Kind"
	case score >= scoreTwoPair:
		return "Two Pair"
	case score >= scoreOnePair:
		return "One Pair"
	default:
		return "High Card"
	}
}
