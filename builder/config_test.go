// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"
)

func TestNewBuilderConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	if cfg.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfg.rng)
	}
	if got := cfg.nextWeight(); got != DefaultEdgeWeight {
		t.Errorf("default weight: expected %d, got %d", DefaultEdgeWeight, got)
	}
}

func TestNewBuilderConfig_LastWins(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(1))
	cfg := newBuilderConfig(WithSeed(5), WithRand(r), WithConstantWeight(3), WithConstantWeight(8), nil)
	if cfg.rng != r {
		t.Errorf("WithRand after WithSeed: expected explicit rng to win")
	}
	if got := cfg.nextWeight(); got != 8 {
		t.Errorf("WithConstantWeight twice: expected 8, got %d", got)
	}
}
