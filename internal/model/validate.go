package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ankitjawla/snake-scholars-quest-sub000/pkg/logger"

	"go.uber.org/zap"
)

// ValidateProgress checks an untrusted progress document against the full
// record shape and its invariants. It returns nil on any mismatch, after
// logging the reason; callers must treat nil as "reject the import".
//
// The trusted runtime load/save path never calls this. Routine reads stay
// lenient so partially-shaped legacy records keep working.
func ValidateProgress(data []byte) *UserProgress {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	p := NewUserProgress()
	if err := dec.Decode(p); err != nil {
		logger.Log.Error("progress validation: decode failed", zap.Error(err))
		return nil
	}

	if err := checkProgressShape(p); err != nil {
		logger.Log.Error("progress validation: shape mismatch", zap.Error(err))
		return nil
	}

	return p
}

func checkProgressShape(p *UserProgress) error {
	if p.Stars < 0 {
		return fmt.Errorf("stars is negative: %d", p.Stars)
	}
	if p.Streak.CatchUpTokens < 0 || p.Streak.CatchUpTokens > CatchUpTokenCap {
		return fmt.Errorf("catchUpTokens out of range: %d", p.Streak.CatchUpTokens)
	}

	seenTopics := make(map[int]bool)
	for _, id := range p.TopicsCompleted {
		if seenTopics[id] {
			return fmt.Errorf("topicsCompleted has duplicate id %d", id)
		}
		seenTopics[id] = true
	}
	for _, id := range p.TopicsInProgress {
		if seenTopics[id] {
			return fmt.Errorf("topic %d is both completed and in progress", id)
		}
	}

	seenLessons := make(map[int]bool)
	for _, lv := range p.LessonsViewed {
		if seenLessons[lv.TopicID] {
			return fmt.Errorf("lessonsViewed has duplicate entry for topic %d", lv.TopicID)
		}
		seenLessons[lv.TopicID] = true
		if lv.CompletionRate < 0 || lv.CompletionRate > 100 {
			return fmt.Errorf("completionRate out of range for topic %d: %d", lv.TopicID, lv.CompletionRate)
		}
	}

	for _, qa := range p.QuizAttempts {
		if qa.Score < 0 || qa.Score > 100 {
			return fmt.Errorf("quiz score out of range for topic %d: %d", qa.TopicID, qa.Score)
		}
	}

	seenMastery := make(map[int]bool)
	for _, m := range p.MasteryLevels {
		if seenMastery[m.TopicID] {
			return fmt.Errorf("masteryLevels has duplicate entry for topic %d", m.TopicID)
		}
		seenMastery[m.TopicID] = true
		if !m.Level.Valid() {
			return fmt.Errorf("unknown mastery level %q for topic %d", m.Level, m.TopicID)
		}
		if m.Level == MasteryMastered && !p.HasCompleted(m.TopicID) {
			return fmt.Errorf("topic %d is mastered but missing from topicsCompleted", m.TopicID)
		}
	}

	seenReviews := make(map[int]bool)
	for _, r := range p.NextReviewDates {
		if seenReviews[r.TopicID] {
			return fmt.Errorf("nextReviewDates has duplicate entry for topic %d", r.TopicID)
		}
		seenReviews[r.TopicID] = true
	}

	seenBadges := make(map[string]bool)
	for _, b := range p.Badges {
		if seenBadges[b.ID] {
			return fmt.Errorf("badges has duplicate id %q", b.ID)
		}
		seenBadges[b.ID] = true
		if !ValidTier(b.Tier) {
			return fmt.Errorf("badge %q has invalid tier %d", b.ID, b.Tier)
		}
	}

	seenStickers := make(map[int]bool)
	for _, s := range p.StickerAlbum {
		if seenStickers[s.TopicID] {
			return fmt.Errorf("stickerAlbum has duplicate entry for topic %d", s.TopicID)
		}
		seenStickers[s.TopicID] = true
		for _, t := range s.TiersUnlocked {
			if !ValidTier(t) {
				return fmt.Errorf("sticker for topic %d has invalid tier %d", s.TopicID, t)
			}
		}
	}

	seenChapters := make(map[int]bool)
	for _, ch := range p.ChapterProgress {
		if seenChapters[ch.ChapterID] {
			return fmt.Errorf("chapterProgress has duplicate entry for chapter %d", ch.ChapterID)
		}
		seenChapters[ch.ChapterID] = true
		if ch.BadgeTier < TierNone || ch.BadgeTier > TierGold {
			return fmt.Errorf("chapter %d has invalid badge tier %d", ch.ChapterID, ch.BadgeTier)
		}
	}

	for _, e := range p.SessionLog {
		if !e.Activity.Valid() {
			return fmt.Errorf("unknown activity kind %q in session log", e.Activity)
		}
	}
	if len(p.SessionLog) > SessionLogCap {
		return fmt.Errorf("session log exceeds cap: %d entries", len(p.SessionLog))
	}
	if len(p.ChallengeHistory) > ChallengeHistoryCap {
		return fmt.Errorf("challenge history exceeds cap: %d entries", len(p.ChallengeHistory))
	}

	if p.Creative.ActiveSkin != "" && !p.HasSkin(p.Creative.ActiveSkin) {
		return fmt.Errorf("active skin %q is not unlocked", p.Creative.ActiveSkin)
	}

	return nil
}
