package config

import "errors"

var (
	// ErrLevelNotFound is returned when no map exists for a level index
	ErrLevelNotFound = errors.New("level not found")

	// ErrMalformedLevelData is returned when a map lacks the collision layer
	// or a spawn point, or cannot be parsed at all
	ErrMalformedLevelData = errors.New("malformed level data")

	// ErrInvalidConfig is returned by GameConfig.Validate
	ErrInvalidConfig = errors.New("invalid config")
)
