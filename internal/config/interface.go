package config

import "context"

// Loader is the interface for a format-specific dialect loader.
type Loader interface {
	// Load reads the dialect description at path. Attributes the file does
	// not set keep the values of DefaultDialect.
	Load(ctx context.Context, path string) (*Dialect, error)
}
