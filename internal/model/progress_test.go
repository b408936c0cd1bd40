package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserProgress_NonNilCollections(t *testing.T) {
	p := NewUserProgress()
	assert.NotNil(t, p.TopicsCompleted)
	assert.NotNil(t, p.LessonsViewed)
	assert.NotNil(t, p.SessionLog)
	assert.NotNil(t, p.Creative.UnlockedSkins)
	assert.Equal(t, 0, p.Stars)
}

func TestAppendUniqueInt(t *testing.T) {
	list, added := AppendUniqueInt(nil, 3)
	require.True(t, added)
	assert.Equal(t, []int{3}, list)

	list, added = AppendUniqueInt(list, 3)
	assert.False(t, added)
	assert.Equal(t, []int{3}, list)
}

func TestRemoveInt(t *testing.T) {
	assert.Equal(t, []int{1, 3}, RemoveInt([]int{1, 2, 3, 2}, 2))
	assert.Empty(t, RemoveInt([]int{5}, 5))

	// The input slice is never written through.
	in := []int{4, 7, 4}
	assert.Equal(t, []int{7}, RemoveInt(in, 4))
	assert.Equal(t, []int{4, 7, 4}, in)
}

func TestHighScores_Submit(t *testing.T) {
	hs := HighScores{}

	assert.True(t, hs.Submit("snake-dash", 120))
	assert.Equal(t, 120, hs["snake-dash"])

	assert.False(t, hs.Submit("snake-dash", 80))
	assert.Equal(t, 120, hs["snake-dash"])

	assert.True(t, hs.Submit("snake-dash", 200))
	assert.Equal(t, 200, hs["snake-dash"])
}

func TestCatalog_Subjects_FirstAppearanceOrder(t *testing.T) {
	c := DefaultCatalog()
	assert.Equal(t, []Subject{SubjectMath, SubjectReading, SubjectScience, SubjectLogic}, c.Subjects())
}

func TestCatalog_TopicsInChapter(t *testing.T) {
	c := DefaultCatalog()
	topics := c.TopicsInChapter(1)
	require.Len(t, topics, 4)
	for _, tp := range topics {
		assert.Equal(t, 1, tp.ChapterID)
	}
	assert.Empty(t, c.TopicsInChapter(99))
}
