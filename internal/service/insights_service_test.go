package service

import (
	"context"
	"testing"
	"time"

	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInsights() (*InsightsService, *ProgressService) {
	repo := newTestRepo()
	catalog := model.DefaultCatalog()
	return NewInsightsService(repo, catalog), NewProgressService(repo, catalog)
}

func TestGetRecommendedTopics_EmptyRecordUsesCatalogOrder(t *testing.T) {
	insights, _ := newTestInsights()

	got := insights.GetRecommendedTopics(context.Background(), 3)
	require.Len(t, got, 3)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 2, got[1].ID)
	assert.Equal(t, 3, got[2].ID)
}

func TestGetRecommendedTopics_InProgressComesFirst(t *testing.T) {
	insights, progress := newTestInsights()
	ctx := context.Background()

	require.NoError(t, progress.MarkLessonComplete(ctx, 7, 60))

	got := insights.GetRecommendedTopics(ctx, 3)
	require.Len(t, got, 3)
	assert.Equal(t, 7, got[0].ID)
}

func TestGetRecommendedTopics_BestSubjectFillsSecondPass(t *testing.T) {
	insights, progress := newTestInsights()
	ctx := context.Background()

	// Strong at science, weak at math; science topics should fill the
	// untouched slots.
	require.NoError(t, progress.RecordQuizAttempt(ctx, model.QuizAttempt{TopicID: 9, Score: 95}))
	require.NoError(t, progress.RecordQuizAttempt(ctx, model.QuizAttempt{TopicID: 1, Score: 40}))

	got := insights.GetRecommendedTopics(ctx, 2)
	require.Len(t, got, 2)
	for _, tp := range got {
		assert.Equal(t, model.SubjectScience, tp.Subject)
	}
}

func TestGetRecommendedTopics_IsDeterministic(t *testing.T) {
	insights, progress := newTestInsights()
	ctx := context.Background()

	require.NoError(t, progress.MarkLessonComplete(ctx, 5, 60))
	require.NoError(t, progress.RecordQuizAttempt(ctx, model.QuizAttempt{TopicID: 13, Score: 88}))

	first := insights.GetRecommendedTopics(ctx, 3)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, insights.GetRecommendedTopics(ctx, 3))
	}
}

func TestCalculateStudyStreak_StopsAtFirstGap(t *testing.T) {
	insights, progress := newTestInsights()
	ctx := context.Background()

	today := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	insights.now = func() time.Time { return today }

	// Viewed today, yesterday, and three days ago: streak is 2.
	for _, d := range []int{0, -1, -3} {
		offset := d
		progress.now = func() time.Time { return today.AddDate(0, 0, offset) }
		topicID := 1 - offset
		require.NoError(t, progress.MarkLessonComplete(ctx, topicID, 60))
	}

	assert.Equal(t, 2, insights.CalculateStudyStreak(ctx))
}

func TestCalculateStudyStreak_NoLessonsMeansZero(t *testing.T) {
	insights, _ := newTestInsights()
	assert.Equal(t, 0, insights.CalculateStudyStreak(context.Background()))
}

func TestCalculateStudyStreak_BrokenToday(t *testing.T) {
	insights, progress := newTestInsights()
	ctx := context.Background()

	today := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	insights.now = func() time.Time { return today }

	progress.now = func() time.Time { return today.AddDate(0, 0, -1) }
	require.NoError(t, progress.MarkLessonComplete(ctx, 1, 60))

	// Yesterday alone does not count until today is touched.
	assert.Equal(t, 0, insights.CalculateStudyStreak(ctx))
}

func TestCalculateStudyStreak_ClockZoneDiffersFromStoredTimestamps(t *testing.T) {
	insights, progress := newTestInsights()
	ctx := context.Background()

	// Timestamps round-trip through the slot as JSON and come back in
	// UTC; the wall clock runs in another zone. Day matching works on
	// the instant, not the parsed location.
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	for _, d := range []int{0, -1} {
		offset := d
		progress.now = func() time.Time { return base.AddDate(0, 0, offset) }
		require.NoError(t, progress.MarkLessonComplete(ctx, 1-offset, 60))
	}

	ahead := time.FixedZone("UTC+2", 2*60*60)
	insights.now = func() time.Time { return base.In(ahead) }
	assert.Equal(t, 2, insights.CalculateStudyStreak(ctx))
}

func TestCalculateStudyStreak_LocalClockAfterReload(t *testing.T) {
	insights, progress := newTestInsights()
	ctx := context.Background()

	require.NoError(t, progress.MarkLessonComplete(ctx, 1, 60))
	require.NoError(t, progress.Repo.Flush(ctx))

	// Default clocks: the stored timestamp parses back in UTC while
	// time.Now reports time.Local. Today must still count.
	assert.GreaterOrEqual(t, insights.CalculateStudyStreak(ctx), 1)
}

func TestAnalyzeCommonMistakes_TopThreeByFrequency(t *testing.T) {
	insights, progress := newTestInsights()
	ctx := context.Background()

	attempts := []model.QuizAttempt{
		{TopicID: 2, Score: 60, Mistakes: []string{"carrying", "carrying", "place-value"}},
		{TopicID: 2, Score: 70, Mistakes: []string{"carrying", "borrowing", "place-value", "counting-on"}},
		{TopicID: 3, Score: 50, Mistakes: []string{"unrelated"}},
	}
	for _, a := range attempts {
		require.NoError(t, progress.RecordQuizAttempt(ctx, a))
	}

	got := insights.AnalyzeCommonMistakes(ctx, 2)
	require.Len(t, got, 3)
	assert.Equal(t, MistakeCount{Mistake: "carrying", Count: 3}, got[0])
	assert.Equal(t, MistakeCount{Mistake: "place-value", Count: 2}, got[1])
	// Ties keep first-encounter order.
	assert.Equal(t, MistakeCount{Mistake: "borrowing", Count: 1}, got[2])
}

func TestGetPersonalizedEncouragement_Tiers(t *testing.T) {
	insights, progress := newTestInsights()
	ctx := context.Background()

	assert.Contains(t, insights.GetPersonalizedEncouragement(ctx), "Welcome")

	for id := 1; id <= 5; id++ {
		require.NoError(t, progress.UpdateMasteryLevel(ctx, id, model.MasteryMastered))
	}
	assert.Contains(t, insights.GetPersonalizedEncouragement(ctx), "roll")

	for id := 6; id <= 10; id++ {
		require.NoError(t, progress.UpdateMasteryLevel(ctx, id, model.MasteryMastered))
	}
	assert.Contains(t, insights.GetPersonalizedEncouragement(ctx), "Ten topics")

	for id := 11; id <= 20; id++ {
		require.NoError(t, progress.UpdateMasteryLevel(ctx, id, model.MasteryMastered))
	}
	assert.Contains(t, insights.GetPersonalizedEncouragement(ctx), "true Snake Scholar")
}

func TestWeakAndStrongTopics(t *testing.T) {
	insights, progress := newTestInsights()
	ctx := context.Background()

	seed := []model.QuizAttempt{
		{TopicID: 1, Score: 40},
		{TopicID: 1, Score: 50}, // avg 45 -> weak
		{TopicID: 2, Score: 90},
		{TopicID: 2, Score: 100}, // avg 95 -> strong
		{TopicID: 3, Score: 70},  // neither
		{TopicID: 4, Score: 30},  // weak, weakest
	}
	for _, a := range seed {
		require.NoError(t, progress.RecordQuizAttempt(ctx, a))
	}

	weak := insights.WeakTopics(ctx)
	require.Len(t, weak, 2)
	assert.Equal(t, 4, weak[0].Topic.ID)
	assert.Equal(t, 1, weak[1].Topic.ID)
	assert.InDelta(t, 45, weak[1].Average, 1e-9)

	strong := insights.StrongTopics(ctx)
	require.Len(t, strong, 1)
	assert.Equal(t, 2, strong[0].Topic.ID)
}

func TestGetDueReviews_EarliestFirst(t *testing.T) {
	insights, progress := newTestInsights()
	ctx := context.Background()

	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	insights.now = func() time.Time { return now }

	// Low scores come due tomorrow, high scores in a week.
	progress.now = func() time.Time { return now.AddDate(0, 0, -10) }
	_, err := progress.ScheduleReview(ctx, 1, 30)
	require.NoError(t, err)
	progress.now = func() time.Time { return now.AddDate(0, 0, -5) }
	_, err = progress.ScheduleReview(ctx, 2, 30)
	require.NoError(t, err)
	progress.now = func() time.Time { return now }
	_, err = progress.ScheduleReview(ctx, 3, 95)
	require.NoError(t, err)

	due := insights.GetDueReviews(ctx)
	require.Len(t, due, 2)
	assert.Equal(t, 1, due[0].TopicID)
	assert.Equal(t, 2, due[1].TopicID)
}
