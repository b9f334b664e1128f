package domain

import "time"

// TokenPair bundles the access/refresh credentials issued on login.
type TokenPair struct {
	AccessToken      string
	AccessExpiresAt  time.Time
	RefreshToken     string
	RefreshExpiresAt time.Time
}
