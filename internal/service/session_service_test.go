package service

import (
	"context"
	"testing"

	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func TestSessionStats_EmptyLog(t *testing.T) {
	repo := newTestRepo()
	s := NewSessionService(repo)

	stats := s.Stats(context.Background())
	assert.Equal(t, 0, stats.TotalSessions)
	assert.Equal(t, 0.0, stats.AverageScore)
	assert.NotNil(t, stats.Recent)
	assert.Empty(t, stats.Recent)
}

func TestSessionStats_AveragesScoredEntriesOnly(t *testing.T) {
	repo := newTestRepo()
	progress := NewProgressService(repo, model.DefaultCatalog())
	s := NewSessionService(repo)
	ctx := context.Background()

	entries := []model.SessionEntry{
		{TopicID: 1, Activity: model.ActivityQuiz, Duration: 60, Score: intp(80)},
		{TopicID: 1, Activity: model.ActivityLesson, Duration: 120}, // unscored
		{TopicID: 2, Activity: model.ActivityGame, Duration: 30, Score: intp(100)},
	}
	for _, e := range entries {
		require.NoError(t, progress.LogActivity(ctx, e))
	}

	stats := s.Stats(ctx)
	assert.Equal(t, 3, stats.TotalSessions)
	assert.Equal(t, 210, stats.TotalDuration)
	assert.Equal(t, 2, stats.DistinctTopics)
	assert.InDelta(t, 90, stats.AverageScore, 1e-9)
}

func TestSessionStats_RecentIsTenNewestFirst(t *testing.T) {
	repo := newTestRepo()
	progress := NewProgressService(repo, model.DefaultCatalog())
	s := NewSessionService(repo)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		require.NoError(t, progress.LogActivity(ctx, model.SessionEntry{
			TopicID:  1,
			Activity: model.ActivityGame,
			Duration: i,
		}))
	}

	stats := s.Stats(ctx)
	require.Len(t, stats.Recent, 10)
	assert.Equal(t, 24, stats.Recent[0].Duration)
	assert.Equal(t, 15, stats.Recent[9].Duration)
}

func TestSessionStats_RespectsLogCap(t *testing.T) {
	repo := newTestRepo()
	progress := NewProgressService(repo, model.DefaultCatalog())
	s := NewSessionService(repo)
	ctx := context.Background()

	for i := 0; i < model.SessionLogCap+5; i++ {
		require.NoError(t, progress.LogActivity(ctx, model.SessionEntry{
			TopicID:  1,
			Activity: model.ActivityLesson,
		}))
	}

	assert.Equal(t, model.SessionLogCap, s.Stats(ctx).TotalSessions)
}
