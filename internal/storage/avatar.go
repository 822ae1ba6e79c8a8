package storage

import "context"

// AvatarStore persists normalized avatar images. Keys are opaque to
// callers and stored on the user record.
type AvatarStore interface {
	// Save writes the webp payload for a user and returns the storage key.
	Save(ctx context.Context, userID string, data []byte) (string, error)
	// Open returns the payload for a key.
	Open(ctx context.Context, key string) ([]byte, error)
	Remove(ctx context.Context, key string) error
}

// ContentType of everything an AvatarStore holds: uploads are re-encoded
// before storage.
const ContentType = "image/webp"
