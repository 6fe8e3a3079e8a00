package validator

// Test hooks with an injected clock.
var (
	PastDateAt = pastDate
	MinAgeAt   = minAge
)
