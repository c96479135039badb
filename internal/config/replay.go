package config

import (
	"fmt"

	"github.com/lgbarn/chessvar-go/internal/errors"
)

// ReplayConfig holds settings for replaying move scripts.
type ReplayConfig struct {
	// Workers is the number of games replayed concurrently.
	// Zero means one per CPU.
	Workers int

	// StopOnReject ends a game's replay at its first rejected move.
	StopOnReject bool

	// StopAfter ends the run once this many games have had a move
	// rejected or could not be set up. Zero means no limit.
	StopAfter int

	// StartFEN, when set, replaces the fixed starting position for games
	// without a FEN tag.
	StartFEN string
}

// NewReplayConfig creates a ReplayConfig with default values.
func NewReplayConfig() *ReplayConfig {
	return &ReplayConfig{}
}

// Validate checks that the replay configuration is valid.
func (r *ReplayConfig) Validate() error {
	if r.Workers < 0 {
		return fmt.Errorf("worker count %d is negative: %w", r.Workers, errors.ErrInvalidConfig)
	}
	if r.StopAfter < 0 {
		return fmt.Errorf("stop-after count %d is negative: %w", r.StopAfter, errors.ErrInvalidConfig)
	}
	return nil
}
