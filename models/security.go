package models

// SecurityReport summarizes vault hygiene for a single user.
type SecurityReport struct {
	// Score is in [0, 100]: 100 minus 10 per issue, clamped.
	Score int `json:"score"`

	// Label is "Excellent", "Good", "Fair" or "Poor".
	Label string `json:"label"`

	WeakPasswords   []VaultItem `json:"weakPasswords"`
	ReusedPasswords []VaultItem `json:"reusedPasswords"`
	OldPasswords    []VaultItem `json:"oldPasswords"`

	TotalIssues int `json:"totalIssues"`
}
