package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighScoreService_SubmitKeepsBest(t *testing.T) {
	s := NewHighScoreService(newTestRepo())
	ctx := context.Background()

	best, improved, err := s.Submit(ctx, "snake-dash", 120)
	require.NoError(t, err)
	assert.Equal(t, 120, best)
	assert.True(t, improved)

	best, improved, err = s.Submit(ctx, "snake-dash", 90)
	require.NoError(t, err)
	assert.Equal(t, 120, best)
	assert.False(t, improved)

	best, improved, err = s.Submit(ctx, "snake-dash", 150)
	require.NoError(t, err)
	assert.Equal(t, 150, best)
	assert.True(t, improved)
}

func TestHighScoreService_GamesAreIndependent(t *testing.T) {
	s := NewHighScoreService(newTestRepo())
	ctx := context.Background()

	_, _, err := s.Submit(ctx, "snake-dash", 100)
	require.NoError(t, err)
	_, _, err = s.Submit(ctx, "math-sprint", 40)
	require.NoError(t, err)

	all := s.GetAll(ctx)
	assert.Equal(t, 100, all["snake-dash"])
	assert.Equal(t, 40, all["math-sprint"])

	best, ok := s.Get(ctx, "math-sprint")
	require.True(t, ok)
	assert.Equal(t, 40, best)

	_, ok = s.Get(ctx, "never-played")
	assert.False(t, ok)
}
