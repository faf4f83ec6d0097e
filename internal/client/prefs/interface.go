// Package prefs persists device-local preferences (theme, currency) in a
// small sqlite database. Every screen re-reads on mount; there is no shared
// in-memory cache, so consistency across screens comes from re-reading.
package prefs

import "context"

// Repository is the key-value persistence beneath the preference store.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Clear(ctx context.Context) error
}
