package progress

import "math"

// PenaltyDivisor is the negative-marking rate: every PenaltyDivisor
// wrong answers cost one point. Partial groups are not penalized.
const PenaltyDivisor = 3

// PenalizedScore applies the negative-marking rule to a raw correct
// count and returns the effective score, floored at zero.
func PenalizedScore(rawCorrect, total int) int {
	wrong := total - rawCorrect
	penalty := wrong / PenaltyDivisor
	score := rawCorrect - penalty
	if score < 0 {
		return 0
	}
	return score
}

// Percentage returns round(100 * score / total), or 0 when total is 0.
func Percentage(score, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}
