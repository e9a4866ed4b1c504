package repoargs

import "time"

type CreateVerificationCode struct {
	Email     string
	CodeHash  string
	ExpiresAt time.Time
}
