package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/model"
	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/repository"
	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo() *repository.ProgressRepository {
	store := repository.NewMemoryStore()
	cache := repository.NewWriteCache(store, time.Minute, time.Hour)
	return repository.NewProgressRepository(cache)
}

func newTestProgressService() *ProgressService {
	return NewProgressService(newTestRepo(), model.DefaultCatalog())
}

func TestMarkLessonComplete_IsIdempotent(t *testing.T) {
	s := newTestProgressService()
	ctx := context.Background()

	require.NoError(t, s.MarkLessonComplete(ctx, 1, 120))
	require.NoError(t, s.MarkLessonComplete(ctx, 1, 300))

	p := s.GetProgress(ctx)
	require.Len(t, p.LessonsViewed, 1)
	assert.Equal(t, 300, p.LessonsViewed[0].TimeSpent)
	assert.Equal(t, 100, p.LessonsViewed[0].CompletionRate)
	assert.Equal(t, []int{1}, p.TopicsInProgress)
}

func TestMarkLessonComplete_CompletedTopicStaysOut(t *testing.T) {
	s := newTestProgressService()
	ctx := context.Background()

	require.NoError(t, s.UpdateMasteryLevel(ctx, 1, model.MasteryMastered))
	require.NoError(t, s.MarkLessonComplete(ctx, 1, 60))

	p := s.GetProgress(ctx)
	assert.Equal(t, []int{1}, p.TopicsCompleted)
	assert.Empty(t, p.TopicsInProgress)
}

func TestUpdateMasteryLevel_MasteredIsOneWay(t *testing.T) {
	s := newTestProgressService()
	ctx := context.Background()

	require.NoError(t, s.MarkLessonComplete(ctx, 2, 60))
	require.NoError(t, s.UpdateMasteryLevel(ctx, 2, model.MasteryMastered))

	p := s.GetProgress(ctx)
	assert.Equal(t, []int{2}, p.TopicsCompleted)
	assert.Empty(t, p.TopicsInProgress)

	// Downgrading the level never removes the completion.
	require.NoError(t, s.UpdateMasteryLevel(ctx, 2, model.MasteryBeginner))
	p = s.GetProgress(ctx)
	assert.Equal(t, []int{2}, p.TopicsCompleted)
	level, ok := p.MasteryFor(2)
	require.True(t, ok)
	assert.Equal(t, model.MasteryBeginner, level)
	require.Len(t, p.MasteryLevels, 1)
}

func TestAwardStars_Accumulates(t *testing.T) {
	s := newTestProgressService()
	ctx := context.Background()

	total, err := s.AwardStars(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, total)

	total, err = s.AwardStars(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, 15, total)
}

func TestRecordBadge_OnlyUpgrades(t *testing.T) {
	s := newTestProgressService()
	ctx := context.Background()

	require.NoError(t, s.RecordBadge(ctx, "quiz-whiz", model.TierSilver))
	require.NoError(t, s.RecordBadge(ctx, "quiz-whiz", model.TierBronze))

	p := s.GetProgress(ctx)
	require.Len(t, p.Badges, 1)
	assert.Equal(t, model.TierSilver, p.Badges[0].Tier)

	require.NoError(t, s.RecordBadge(ctx, "quiz-whiz", model.TierGold))
	p = s.GetProgress(ctx)
	require.Len(t, p.Badges, 1)
	assert.Equal(t, model.TierGold, p.Badges[0].Tier)
}

func TestUpdateStickerAlbum_UniqueTiersPerTopic(t *testing.T) {
	s := newTestProgressService()
	ctx := context.Background()

	require.NoError(t, s.UpdateStickerAlbum(ctx, 3, 1))
	require.NoError(t, s.UpdateStickerAlbum(ctx, 3, 2))
	require.NoError(t, s.UpdateStickerAlbum(ctx, 3, 1))

	p := s.GetProgress(ctx)
	require.Len(t, p.StickerAlbum, 1)
	assert.Equal(t, []int{1, 2}, p.StickerAlbum[0].TiersUnlocked)
}

func TestScheduleReview_IntervalsFollowPerformance(t *testing.T) {
	s := newTestProgressService()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }

	cases := []struct {
		score int
		days  int
	}{
		{95, 7},
		{90, 7},
		{85, 3},
		{70, 3},
		{60, 1},
		{50, 1},
		{30, 1},
	}
	for _, tc := range cases {
		due, err := s.ScheduleReview(ctx, 5, tc.score)
		require.NoError(t, err)
		assert.Equal(t, base.AddDate(0, 0, tc.days), due, "score %d", tc.score)
	}

	// Rescheduling replaces, never duplicates.
	p := s.GetProgress(ctx)
	assert.Len(t, p.NextReviewDates, 1)
}

func TestRecordChallenge_FillsDefaultsAndCaps(t *testing.T) {
	s := newTestProgressService()
	ctx := context.Background()

	require.NoError(t, s.RecordChallenge(ctx, model.ChallengeResult{Correct: 8, Total: 10}))

	p := s.GetProgress(ctx)
	require.Len(t, p.ChallengeHistory, 1)
	first := p.ChallengeHistory[0]
	assert.NotEmpty(t, first.ID)
	assert.False(t, first.CompletedAt.IsZero())
	assert.InDelta(t, 0.8, first.Accuracy, 1e-9)

	for i := 0; i < model.ChallengeHistoryCap+10; i++ {
		require.NoError(t, s.RecordChallenge(ctx, model.ChallengeResult{
			ID:      fmt.Sprintf("c%d", i),
			Correct: i,
			Total:   100,
		}))
	}

	p = s.GetProgress(ctx)
	require.Len(t, p.ChallengeHistory, model.ChallengeHistoryCap)
	// The oldest entries fell off the front.
	assert.Equal(t, fmt.Sprintf("c%d", model.ChallengeHistoryCap+9), p.ChallengeHistory[len(p.ChallengeHistory)-1].ID)
}

func TestTouchSession_SameDayIsNoOp(t *testing.T) {
	s := newTestProgressService()
	ctx := context.Background()

	day := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return day }

	st, err := s.TouchSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, st.DailyCount)

	s.now = func() time.Time { return day.Add(6 * time.Hour) }
	st, err = s.TouchSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, st.DailyCount)
}

func TestTouchSession_NextDayExtends(t *testing.T) {
	s := newTestProgressService()
	ctx := context.Background()

	day := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		offset := i
		s.now = func() time.Time { return day.AddDate(0, 0, offset) }
		st, err := s.TouchSession(ctx)
		require.NoError(t, err)
		assert.Equal(t, i+1, st.DailyCount)
	}
}

func TestTouchSession_MissedDayResets(t *testing.T) {
	s := newTestProgressService()
	ctx := context.Background()

	day := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return day }
	_, err := s.TouchSession(ctx)
	require.NoError(t, err)

	// Two days later with no token: back to one.
	s.now = func() time.Time { return day.AddDate(0, 0, 2) }
	st, err := s.TouchSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, st.DailyCount)
}

func TestTouchSession_CatchUpTokenBridgesOneMissedDay(t *testing.T) {
	s := newTestProgressService()
	ctx := context.Background()

	day := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	// Seven consecutive days earn one token.
	for i := 0; i < 7; i++ {
		offset := i
		s.now = func() time.Time { return day.AddDate(0, 0, offset) }
		_, err := s.TouchSession(ctx)
		require.NoError(t, err)
	}
	st := s.GetProgress(ctx).Streak
	require.Equal(t, 7, st.DailyCount)
	require.Equal(t, 1, st.CatchUpTokens)

	// Skip day 7, return on day 8: the token bridges the gap.
	s.now = func() time.Time { return day.AddDate(0, 0, 8) }
	got, err := s.TouchSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, got.DailyCount)
	assert.Equal(t, 0, got.CatchUpTokens)
}

func TestPowerUps_AwardAndConsume(t *testing.T) {
	s := newTestProgressService()
	ctx := context.Background()

	assert.ErrorIs(t, s.ConsumePowerUp(ctx, "slow-motion"), util.ErrPowerUpEmpty)

	require.NoError(t, s.AwardPowerUp(ctx, "slow-motion", 2))
	require.NoError(t, s.ConsumePowerUp(ctx, "slow-motion"))
	require.NoError(t, s.ConsumePowerUp(ctx, "slow-motion"))
	assert.ErrorIs(t, s.ConsumePowerUp(ctx, "slow-motion"), util.ErrPowerUpEmpty)

	p := s.GetProgress(ctx)
	require.Len(t, p.PowerUps, 1)
	assert.Equal(t, 0, p.PowerUps[0].Quantity)
}

func TestUnlockSkin_SpendsStarsAndNeverGoesNegative(t *testing.T) {
	s := newTestProgressService()
	ctx := context.Background()

	_, err := s.AwardStars(ctx, 30)
	require.NoError(t, err)

	_, err = s.UnlockSkin(ctx, "lava", 50)
	assert.ErrorIs(t, err, util.ErrNotEnoughStars)

	remaining, err := s.UnlockSkin(ctx, "forest", 20)
	require.NoError(t, err)
	assert.Equal(t, 10, remaining)

	// Re-unlocking an owned skin is free.
	remaining, err = s.UnlockSkin(ctx, "forest", 20)
	require.NoError(t, err)
	assert.Equal(t, 10, remaining)

	p := s.GetProgress(ctx)
	assert.Equal(t, []string{"forest"}, p.Creative.UnlockedSkins)
}

func TestSetActiveSkin_RequiresOwnership(t *testing.T) {
	s := newTestProgressService()
	ctx := context.Background()

	assert.ErrorIs(t, s.SetActiveSkin(ctx, "forest"), util.ErrSkinNotUnlocked)

	_, err := s.AwardStars(ctx, 20)
	require.NoError(t, err)
	_, err = s.UnlockSkin(ctx, "forest", 20)
	require.NoError(t, err)

	require.NoError(t, s.SetActiveSkin(ctx, "forest"))
	assert.Equal(t, "forest", s.GetProgress(ctx).Creative.ActiveSkin)
}

func TestCompleteChapterTopic_BadgeTiersOnlyRise(t *testing.T) {
	s := newTestProgressService()
	ctx := context.Background()

	// Chapter 1 has four topics: 1/4 -> none, 2/4 -> bronze, 3/4 -> silver, 4/4 -> gold.
	ch, err := s.CompleteChapterTopic(ctx, 1, 1)
	require.NoError(t, err)
	assert.True(t, ch.Unlocked)
	assert.Equal(t, model.TierNone, ch.BadgeTier)

	ch, err = s.CompleteChapterTopic(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, model.TierBronze, ch.BadgeTier)

	ch, err = s.CompleteChapterTopic(ctx, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, model.TierSilver, ch.BadgeTier)

	ch, err = s.CompleteChapterTopic(ctx, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, model.TierGold, ch.BadgeTier)

	// Repeating a topic changes nothing.
	ch, err = s.CompleteChapterTopic(ctx, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, model.TierGold, ch.BadgeTier)
	assert.Len(t, ch.CompletedTopicIDs, 4)
}

func TestCompleteChapterTopic_UnknownChapter(t *testing.T) {
	s := newTestProgressService()
	_, err := s.CompleteChapterTopic(context.Background(), 99, 1)
	assert.ErrorIs(t, err, util.ErrUnknownChapter)
}

func TestSaveLeaderboardProfile_DerivesPercentileBand(t *testing.T) {
	s := newTestProgressService()
	ctx := context.Background()

	cases := []struct {
		stars int
		band  string
	}{
		{0, "starting out"},
		{50, "top 50%"},
		{200, "top 25%"},
		{500, "top 10%"},
	}
	for _, tc := range cases {
		_, err := s.AwardStars(ctx, tc.stars-s.GetProgress(ctx).Stars)
		require.NoError(t, err)
		require.NoError(t, s.SaveLeaderboardProfile(ctx, model.LeaderboardProfile{Nickname: "Sly"}))
		p := s.GetProgress(ctx)
		require.NotNil(t, p.LeaderboardProfile)
		assert.Equal(t, tc.band, p.LeaderboardProfile.PercentileBand, "stars %d", tc.stars)
	}

	// A caller-provided band is kept as-is.
	require.NoError(t, s.SaveLeaderboardProfile(ctx, model.LeaderboardProfile{Nickname: "Sly", PercentileBand: "top 1%"}))
	assert.Equal(t, "top 1%", s.GetProgress(ctx).LeaderboardProfile.PercentileBand)
}

func TestLogActivity_CapsLogAndFillsTitle(t *testing.T) {
	s := newTestProgressService()
	ctx := context.Background()

	require.NoError(t, s.LogActivity(ctx, model.SessionEntry{TopicID: 1, Activity: model.ActivityLesson}))

	p := s.GetProgress(ctx)
	require.Len(t, p.SessionLog, 1)
	assert.Equal(t, "Counting to 100", p.SessionLog[0].TopicTitle)
	assert.False(t, p.SessionLog[0].Timestamp.IsZero())

	for i := 0; i < model.SessionLogCap+5; i++ {
		require.NoError(t, s.LogActivity(ctx, model.SessionEntry{
			TopicID:  2,
			Activity: model.ActivityGame,
			Duration: i,
		}))
	}

	p = s.GetProgress(ctx)
	require.Len(t, p.SessionLog, model.SessionLogCap)
	// Oldest entries are gone; the newest survives at the tail.
	assert.Equal(t, model.SessionLogCap+4, p.SessionLog[len(p.SessionLog)-1].Duration)
}

func TestReset_ReturnsToDefaults(t *testing.T) {
	s := newTestProgressService()
	ctx := context.Background()

	_, err := s.AwardStars(ctx, 100)
	require.NoError(t, err)
	require.NoError(t, s.MarkLessonComplete(ctx, 1, 60))

	require.NoError(t, s.Reset(ctx))

	p := s.GetProgress(ctx)
	assert.Equal(t, 0, p.Stars)
	assert.Empty(t, p.LessonsViewed)
}
