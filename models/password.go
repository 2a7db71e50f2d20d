package models

// PasswordPolicy describes how a random password is generated.
// Length must be within [8, 64] and at least one character class enabled.
type PasswordPolicy struct {
	Length    int  `json:"length"`
	Uppercase bool `json:"uppercase"`
	Lowercase bool `json:"lowercase"`
	Numbers   bool `json:"numbers"`
	Symbols   bool `json:"symbols"`
}

// DefaultPasswordPolicy is the generator default: 16 characters, all classes.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		Length:    16,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// StrengthAssessment is the discrete 5-bucket strength of a password.
type StrengthAssessment struct {
	// Score is in [0, 4].
	Score int `json:"score"`

	// Label is one of "Very Weak", "Weak", "Fair", "Strong", "Very Strong".
	Label string `json:"label"`

	// Percentage is one of 0, 25, 50, 75, 100.
	Percentage int `json:"percentage"`
}

// GeneratedPassword is the response of the generator endpoint.
type GeneratedPassword struct {
	Password string             `json:"password"`
	Strength StrengthAssessment `json:"strength"`
}
