// Package preferences persists the console's local settings: the theme and
// the last username that signed in.
package preferences

import "context"

// Key names a stored preference.
type Key string

const (
	KeyTheme        Key = "theme"
	KeyLastUsername Key = "last_username"
)

type Repository interface {
	// Get returns ("", false, nil) when key has never been set.
	Get(ctx context.Context, key Key) (string, bool, error)
	Set(ctx context.Context, key Key, value string) error
	Delete(ctx context.Context, key Key) error
	List(ctx context.Context) (map[Key]string, error)
}
