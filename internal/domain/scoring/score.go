// Package scoring computes the advisory compatibility score shown next to mentors.
package scoring

import (
	"strings"
	"unicode/utf8"

	"mentorship/internal/domain/entity"
)

const (
	MinScore  = 0
	MaxScore  = 100
	baseScore = 50

	breadthPerArea  = 2
	breadthCap      = 10
	bioBonus        = 5
	bioMinLength    = 50
	capacityBonus   = 10
	capacityPenalty = -20
)

// Score returns the compatibility score of a mentor profile, clamped to [MinScore, MaxScore].
// It is deterministic and has no side effects.
func Score(mentor *entity.MentorProfile) int {
	if mentor == nil {
		return MinScore
	}

	score := baseScore
	score += experienceBonus(mentor.YearsOfExperience)
	score += mentoringBonus(mentor.MentoringExperience)
	score += min(breadthPerArea*len(mentor.AreasOfStrength), breadthCap)

	if utf8.RuneCountInString(mentor.Bio) > bioMinLength {
		score += bioBonus
	}

	if mentor.HasCapacity() {
		score += capacityBonus
	} else {
		score += capacityPenalty
	}

	return max(MinScore, min(score, MaxScore))
}

func experienceBonus(years int) int {
	switch {
	case years >= 5:
		return 20
	case years >= 3:
		return 15
	case years >= 1:
		return 10
	default:
		return 0
	}
}

// mentoringBonus checks the categories in priority order; only the first hit counts.
// Matching is case-sensitive, the categories are stored lowercase by clients.
func mentoringBonus(text string) int {
	switch {
	case strings.Contains(text, "experienced"):
		return 15
	case strings.Contains(text, "some"):
		return 10
	case strings.Contains(text, "first"):
		return 5
	default:
		return 0
	}
}
