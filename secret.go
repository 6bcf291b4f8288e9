package wargame

import "github.com/google/uuid"

// PlayerSecret is the opaque capability token required to act as a
// player (§3). Leaking it is equivalent to giving control, so it is
// generated with enough entropy that it can't be guessed or enumerated.
type PlayerSecret string

// NewPlayerSecret mints a fresh, unique secret.
func NewPlayerSecret() PlayerSecret {
	return PlayerSecret(uuid.NewString())
}
