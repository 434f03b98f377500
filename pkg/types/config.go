package types

import "errors"

// Config holds the store location and paging bounds for Store.Open.
type Config struct {
	DatabaseFile string `json:"database_file" yaml:"database_file"`
	DefaultLimit int    `json:"default_limit" yaml:"default_limit"`
	MaxLimit     int    `json:"max_limit" yaml:"max_limit"`
}

// Paging bounds applied when the config leaves them unset.
const (
	DefaultPageLimit = 100
	MaxPageLimit     = 1000
)

// Config validation errors.
var (
	ErrDatabaseFileEmpty = errors.New("database file must not be empty")
	ErrLimitInvalid      = errors.New("page limit must not be negative")
	ErrLimitBounds       = errors.New("default limit must not exceed max limit")
)

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure. Zero limits are valid and mean
// "use the built-in bounds".
func (c Config) Validate() error {
	if c.DatabaseFile == "" {
		return ErrDatabaseFileEmpty
	}
	if c.DefaultLimit < 0 || c.MaxLimit < 0 {
		return ErrLimitInvalid
	}
	if c.EffectiveDefaultLimit() > c.EffectiveMaxLimit() {
		return ErrLimitBounds
	}
	return nil
}

// EffectiveDefaultLimit returns the configured default page size, or
// DefaultPageLimit when unset.
func (c Config) EffectiveDefaultLimit() int {
	if c.DefaultLimit > 0 {
		return c.DefaultLimit
	}
	return DefaultPageLimit
}

// EffectiveMaxLimit returns the configured max page size, or MaxPageLimit
// when unset.
func (c Config) EffectiveMaxLimit() int {
	if c.MaxLimit > 0 {
		return c.MaxLimit
	}
	return MaxPageLimit
}
