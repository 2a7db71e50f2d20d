package crypto

import (
	"unicode/utf8"

	"github.com/MKhiriev/go-pass-vault/models"
)

const maxStrengthTally = 6

var strengthLabels = [...]string{"Very Weak", "Weak", "Fair", "Strong", "Very Strong"}

// ScorePasswordStrength assigns password to one of five buckets.
//
// One point each for: at least 8, 12 and 16 runes (not bytes or UTF-16
// units); both lower and upper
// case ASCII letters; an ASCII digit; any character outside [A-Za-z0-9].
// The tally is scaled from 0..6 to 0..4 and rounded down.
func ScorePasswordStrength(password string) models.StrengthAssessment {
	if password == "" {
		return newAssessment(0)
	}

	tally := 0

	n := utf8.RuneCountInString(password)
	for _, threshold := range []int{8, 12, 16} {
		if n >= threshold {
			tally++
		}
	}

	var lower, upper, digit, other bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			other = true
		}
	}
	if lower && upper {
		tally++
	}
	if digit {
		tally++
	}
	if other {
		tally++
	}

	return newAssessment(min(4, tally*4/maxStrengthTally))
}

func newAssessment(score int) models.StrengthAssessment {
	return models.StrengthAssessment{
		Score:      score,
		Label:      strengthLabels[score],
		Percentage: score * 25,
	}
}

// StrengthLabel returns the label of a score in [0, 4], or "" when out of range.
func StrengthLabel(score int) string {
	if score < 0 || score >= len(strengthLabels) {
		return ""
	}
	return strengthLabels[score]
}
