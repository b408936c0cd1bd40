package service

import (
	"context"
	"sync"
	"time"

	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/model"
	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/repository"
	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/util"

	"github.com/google/uuid"
)

// ProgressService owns every state transition of the progress record.
// Each helper is one read-modify-write of the whole document; the mutex
// keeps concurrent handlers from interleaving between a read and its
// write.
type ProgressService struct {
	Repo    *repository.ProgressRepository
	Catalog *model.Catalog

	mu  sync.Mutex
	now func() time.Time
}

func NewProgressService(repo *repository.ProgressRepository, catalog *model.Catalog) *ProgressService {
	return &ProgressService{
		Repo:    repo,
		Catalog: catalog,
		now:     time.Now,
	}
}

// GetProgress returns the current record.
func (s *ProgressService) GetProgress(ctx context.Context) *model.UserProgress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Repo.Load(ctx)
}

// MarkLessonComplete upserts the topic's lesson view with a full
// completion rate and makes sure the topic counts as in progress. Calling
// it twice leaves a single entry carrying the second call's values.
func (s *ProgressService) MarkLessonComplete(ctx context.Context, topicID, timeSpentSeconds int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.Repo.Load(ctx)
	now := s.now()

	if lv := p.LessonFor(topicID); lv != nil {
		lv.Timestamp = now
		lv.TimeSpent = timeSpentSeconds
		lv.CompletionRate = 100
	} else {
		p.LessonsViewed = append(p.LessonsViewed, model.LessonView{
			TopicID:        topicID,
			Timestamp:      now,
			TimeSpent:      timeSpentSeconds,
			CompletionRate: 100,
		})
	}

	// A completed topic never reappears as in progress.
	if !p.HasCompleted(topicID) {
		p.TopicsInProgress, _ = model.AppendUniqueInt(p.TopicsInProgress, topicID)
	}

	return s.Repo.Save(ctx, p, false)
}

// UpdateMasteryLevel upserts the topic's mastery entry. Reaching mastered
// also moves the topic into topicsCompleted; nothing ever moves it back
// out, even if mastery is later downgraded.
func (s *ProgressService) UpdateMasteryLevel(ctx context.Context, topicID int, level model.MasteryLevel) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.Repo.Load(ctx)

	updated := false
	for i := range p.MasteryLevels {
		if p.MasteryLevels[i].TopicID == topicID {
			p.MasteryLevels[i].Level = level
			updated = true
			break
		}
	}
	if !updated {
		p.MasteryLevels = append(p.MasteryLevels, model.MasteryEntry{TopicID: topicID, Level: level})
	}

	if level == model.MasteryMastered {
		p.TopicsCompleted, _ = model.AppendUniqueInt(p.TopicsCompleted, topicID)
		p.TopicsInProgress = model.RemoveInt(p.TopicsInProgress, topicID)
	}

	return s.Repo.Save(ctx, p, false)
}

// AwardStars adds to the wallet and returns the new total for immediate
// display. Amounts are not range-checked; callers pass well-formed values.
func (s *ProgressService) AwardStars(ctx context.Context, amount int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.Repo.Load(ctx)
	p.Stars += amount
	if err := s.Repo.Save(ctx, p, false); err != nil {
		return 0, err
	}
	return p.Stars, nil
}

// RecordBadge upserts by badge id. A later call with a higher tier levels
// the badge up; a same-or-lower tier re-earn changes nothing. Never
// duplicates.
func (s *ProgressService) RecordBadge(ctx context.Context, id string, tier int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.Repo.Load(ctx)

	if b := p.BadgeFor(id); b != nil {
		if tier > b.Tier {
			b.Tier = tier
			b.EarnedAt = s.now()
		}
	} else {
		p.Badges = append(p.Badges, model.Badge{ID: id, Tier: tier, EarnedAt: s.now()})
	}

	return s.Repo.Save(ctx, p, false)
}

// UpdateStickerAlbum adds a tier to the topic's unlocked set, creating the
// entry on first unlock. Idempotent for tiers already present.
func (s *ProgressService) UpdateStickerAlbum(ctx context.Context, topicID, tier int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.Repo.Load(ctx)

	if e := p.StickerFor(topicID); e != nil {
		e.TiersUnlocked, _ = model.AppendUniqueInt(e.TiersUnlocked, tier)
	} else {
		p.StickerAlbum = append(p.StickerAlbum, model.StickerEntry{
			TopicID:       topicID,
			TiersUnlocked: []int{tier},
		})
	}

	return s.Repo.Save(ctx, p, false)
}

// RecordQuizAttempt appends to the attempt history (append-only).
func (s *ProgressService) RecordQuizAttempt(ctx context.Context, attempt model.QuizAttempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.Repo.Load(ctx)
	if attempt.Mistakes == nil {
		attempt.Mistakes = []string{}
	}
	p.QuizAttempts = append(p.QuizAttempts, attempt)
	return s.Repo.Save(ctx, p, false)
}

// ScheduleReview upserts the topic's next review date from quiz
// performance and returns it. High scores push the review out a week,
// solid ones three days, everything below that comes back tomorrow.
func (s *ProgressService) ScheduleReview(ctx context.Context, topicID, performanceScore int) (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.Repo.Load(ctx)
	due := s.now().AddDate(0, 0, reviewIntervalDays(performanceScore))

	if r := p.ReviewFor(topicID); r != nil {
		r.Date = due
	} else {
		p.NextReviewDates = append(p.NextReviewDates, model.ReviewEntry{TopicID: topicID, Date: due})
	}

	if err := s.Repo.Save(ctx, p, false); err != nil {
		return time.Time{}, err
	}
	return due, nil
}

func reviewIntervalDays(score int) int {
	if score >= 90 {
		return 7
	}
	if score >= 70 {
		return 3
	}
	if score >= 50 {
		return 1
	}
	return 1
}

// RecordChallenge appends a challenge result, dropping the oldest rows
// once the history passes its cap.
func (s *ProgressService) RecordChallenge(ctx context.Context, result model.ChallengeResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.Repo.Load(ctx)

	if result.ID == "" {
		result.ID = uuid.New().String()
	}
	if result.CompletedAt.IsZero() {
		result.CompletedAt = s.now()
	}
	if result.Accuracy == 0 && result.Total > 0 {
		result.Accuracy = float64(result.Correct) / float64(result.Total)
	}

	p.ChallengeHistory = append(p.ChallengeHistory, result)
	if over := len(p.ChallengeHistory) - model.ChallengeHistoryCap; over > 0 {
		p.ChallengeHistory = p.ChallengeHistory[over:]
	}

	return s.Repo.Save(ctx, p, false)
}

// TouchSession maintains the streak singleton. Same day is a no-op; the
// next day extends the streak; a single missed day can be bridged by a
// catch-up token; anything longer resets. Every full week of streak earns
// a token, up to the cap.
func (s *ProgressService) TouchSession(ctx context.Context) (model.Streak, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.Repo.Load(ctx)
	now := s.now()
	today := dayOf(now)

	st := &p.Streak
	switch {
	case st.LastSessionDate.IsZero():
		st.DailyCount = 1
		st.WeeklyCount = 1
	case dayOf(st.LastSessionDate).Equal(today):
		// Already counted today.
		p.LastSessionDate = now
		if err := s.Repo.Save(ctx, p, false); err != nil {
			return model.Streak{}, err
		}
		return p.Streak, nil
	case dayOf(st.LastSessionDate).AddDate(0, 0, 1).Equal(today):
		st.DailyCount++
		st.WeeklyCount = bumpWeekly(st, now)
	case dayOf(st.LastSessionDate).AddDate(0, 0, 2).Equal(today) && st.CatchUpTokens > 0:
		st.CatchUpTokens--
		st.DailyCount++
		st.WeeklyCount = bumpWeekly(st, now)
	default:
		st.DailyCount = 1
		st.WeeklyCount = 1
	}

	if st.DailyCount > 0 && st.DailyCount%7 == 0 && st.CatchUpTokens < model.CatchUpTokenCap {
		st.CatchUpTokens++
	}

	st.LastSessionDate = now
	p.LastSessionDate = now

	if err := s.Repo.Save(ctx, p, false); err != nil {
		return model.Streak{}, err
	}
	return p.Streak, nil
}

func bumpWeekly(st *model.Streak, now time.Time) int {
	ly, lw := st.LastSessionDate.ISOWeek()
	ny, nw := now.ISOWeek()
	if ly == ny && lw == nw {
		return st.WeeklyCount + 1
	}
	return 1
}

// AwardPowerUp adds quantity to a named power-up stack.
func (s *ProgressService) AwardPowerUp(ctx context.Context, name string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.Repo.Load(ctx)
	if pu := p.PowerUpFor(name); pu != nil {
		pu.Quantity += quantity
		pu.LastEarnedAt = s.now()
	} else {
		p.PowerUps = append(p.PowerUps, model.PowerUp{
			Name:         name,
			Quantity:     quantity,
			LastEarnedAt: s.now(),
		})
	}
	return s.Repo.Save(ctx, p, false)
}

// ConsumePowerUp decrements a stack, failing when none are held.
func (s *ProgressService) ConsumePowerUp(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.Repo.Load(ctx)
	pu := p.PowerUpFor(name)
	if pu == nil || pu.Quantity <= 0 {
		return util.ErrPowerUpEmpty
	}
	pu.Quantity--
	return s.Repo.Save(ctx, p, false)
}

// UnlockSkin spends stars on a skin and returns the remaining balance.
// The wallet never goes negative.
func (s *ProgressService) UnlockSkin(ctx context.Context, skinID string, costStars int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.Repo.Load(ctx)
	if p.HasSkin(skinID) {
		return p.Stars, nil
	}
	if p.Stars < costStars {
		return p.Stars, util.ErrNotEnoughStars
	}
	p.Stars -= costStars
	p.Creative.UnlockedSkins = append(p.Creative.UnlockedSkins, skinID)
	if err := s.Repo.Save(ctx, p, false); err != nil {
		return 0, err
	}
	return p.Stars, nil
}

// SetActiveSkin activates an owned skin; an active skin is always a
// member of the unlocked set.
func (s *ProgressService) SetActiveSkin(ctx context.Context, skinID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.Repo.Load(ctx)
	if !p.HasSkin(skinID) {
		return util.ErrSkinNotUnlocked
	}
	p.Creative.ActiveSkin = skinID
	return s.Repo.Save(ctx, p, false)
}

// CompleteChapterTopic marks a topic finished inside its quest chapter
// and recomputes the chapter badge tier from the completion ratio. Tiers
// only ever go up.
func (s *ProgressService) CompleteChapterTopic(ctx context.Context, chapterID, topicID int) (model.ChapterProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.Catalog.ChapterByID(chapterID); !ok {
		return model.ChapterProgress{}, util.ErrUnknownChapter
	}

	p := s.Repo.Load(ctx)

	ch := p.ChapterFor(chapterID)
	if ch == nil {
		p.ChapterProgress = append(p.ChapterProgress, model.ChapterProgress{
			ChapterID:         chapterID,
			Unlocked:          true,
			CompletedTopicIDs: []int{},
		})
		ch = &p.ChapterProgress[len(p.ChapterProgress)-1]
	}
	ch.Unlocked = true
	ch.CompletedTopicIDs, _ = model.AppendUniqueInt(ch.CompletedTopicIDs, topicID)

	if tier := chapterBadgeTier(len(ch.CompletedTopicIDs), len(s.Catalog.TopicsInChapter(chapterID))); tier > ch.BadgeTier {
		ch.BadgeTier = tier
	}

	if err := s.Repo.Save(ctx, p, false); err != nil {
		return model.ChapterProgress{}, err
	}
	return *ch, nil
}

func chapterBadgeTier(done, total int) int {
	if total == 0 {
		return model.TierNone
	}
	switch {
	case done >= total:
		return model.TierGold
	case done*3 >= total*2:
		return model.TierSilver
	case done*3 >= total:
		return model.TierBronze
	}
	return model.TierNone
}

// SaveLeaderboardProfile upserts the device-local profile. The percentile
// band is derived from the wallet when the caller leaves it empty.
func (s *ProgressService) SaveLeaderboardProfile(ctx context.Context, profile model.LeaderboardProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.Repo.Load(ctx)
	if profile.PercentileBand == "" {
		profile.PercentileBand = percentileBand(p.Stars)
	}
	p.LeaderboardProfile = &profile
	return s.Repo.Save(ctx, p, false)
}

func percentileBand(stars int) string {
	switch {
	case stars >= 500:
		return "top 10%"
	case stars >= 200:
		return "top 25%"
	case stars >= 50:
		return "top 50%"
	}
	return "starting out"
}

// AddLearningMinutes bumps the lifetime accumulator.
func (s *ProgressService) AddLearningMinutes(ctx context.Context, minutes int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.Repo.Load(ctx)
	p.TotalLearningMinutes += minutes
	return s.Repo.Save(ctx, p, false)
}

// LogActivity appends to the bounded session log, evicting the oldest
// entries once the cap is passed.
func (s *ProgressService) LogActivity(ctx context.Context, entry model.SessionEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.Repo.Load(ctx)
	if entry.Timestamp.IsZero() {
		entry.Timestamp = s.now()
	}
	if entry.TopicTitle == "" {
		if t, ok := s.Catalog.TopicByID(entry.TopicID); ok {
			entry.TopicTitle = t.Title
		}
	}

	p.SessionLog = append(p.SessionLog, entry)
	if over := len(p.SessionLog) - model.SessionLogCap; over > 0 {
		p.SessionLog = p.SessionLog[over:]
	}

	return s.Repo.Save(ctx, p, false)
}

// ReplaceProgress overwrites the record wholesale. Only the import path
// uses this, and only after validation; the write is immediate.
func (s *ProgressService) ReplaceProgress(ctx context.Context, p *model.UserProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Repo.Save(ctx, p, true)
}

// Reset clears the stored record.
func (s *ProgressService) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Repo.Reset(ctx)
}
