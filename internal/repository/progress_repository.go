package repository

import (
	"context"
	"encoding/json"

	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/model"
	"github.com/ankitjawla/snake-scholars-quest-sub000/pkg/logger"

	"go.uber.org/zap"
)

const (
	// ProgressSlotKey names the single slot holding the learner's record.
	ProgressSlotKey = "snake_scholars_progress"
	// HighScoreSlotKey is the independent side channel for mini-game bests.
	HighScoreSlotKey = "snake_scholars_high_scores"
)

// ProgressRepository is the typed trusted path over the slot store. Reads
// never fail: a missing or corrupt document degrades to the zero-default
// record with a logged diagnostic, never an error to the caller.
type ProgressRepository struct {
	cache *WriteCache
}

func NewProgressRepository(cache *WriteCache) *ProgressRepository {
	return &ProgressRepository{cache: cache}
}

func (r *ProgressRepository) Load(ctx context.Context) *model.UserProgress {
	data, ok, err := r.cache.Load(ctx, ProgressSlotKey)
	if err != nil {
		logger.Log.Warn("progress slot read failed, using defaults", zap.Error(err))
		return model.NewUserProgress()
	}
	if !ok {
		return model.NewUserProgress()
	}

	p := model.NewUserProgress()
	if err := json.Unmarshal(data, p); err != nil {
		logger.Log.Warn("progress slot is corrupt, resetting to defaults", zap.Error(err))
		return model.NewUserProgress()
	}
	return p
}

func (r *ProgressRepository) Save(ctx context.Context, p *model.UserProgress, immediate bool) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return r.cache.Save(ctx, ProgressSlotKey, data, immediate)
}

// Reset clears the slot; the record comes back as defaults on next load.
func (r *ProgressRepository) Reset(ctx context.Context) error {
	r.cache.Invalidate(ProgressSlotKey)
	return r.cache.store.Delete(ctx, ProgressSlotKey)
}

// Flush forces any pending debounced write out synchronously.
func (r *ProgressRepository) Flush(ctx context.Context) error {
	return r.cache.Flush(ctx)
}

// LoadHighScores reads the side slot; same degrade-to-default policy.
func (r *ProgressRepository) LoadHighScores(ctx context.Context) model.HighScores {
	data, ok, err := r.cache.Load(ctx, HighScoreSlotKey)
	if err != nil {
		logger.Log.Warn("high score slot read failed, using defaults", zap.Error(err))
		return model.HighScores{}
	}
	if !ok {
		return model.HighScores{}
	}

	hs := model.HighScores{}
	if err := json.Unmarshal(data, &hs); err != nil {
		logger.Log.Warn("high score slot is corrupt, resetting to defaults", zap.Error(err))
		return model.HighScores{}
	}
	return hs
}

// SaveHighScores always writes through immediately; game-over handlers
// touch this slot directly and rarely.
func (r *ProgressRepository) SaveHighScores(ctx context.Context, hs model.HighScores) error {
	data, err := json.Marshal(hs)
	if err != nil {
		return err
	}
	return r.cache.Save(ctx, HighScoreSlotKey, data, true)
}
