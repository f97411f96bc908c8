package usecase

import "time"

// Session store contract. Tokens are opaque strings mapped to the account
// id that owns them; Find returns ("", nil) when the token is unknown or
// expired.

type CreateSessionRepository interface {
	CreateSession(token string, userId string, ttl time.Duration) error
}

type FindSessionRepository interface {
	FindSession(token string) (string, error)
}

type DeleteSessionRepository interface {
	DeleteSession(token string) error
}
