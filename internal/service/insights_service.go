package service

import (
	"context"
	"sort"
	"time"

	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/model"
	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/repository"
)

// InsightsService is the read-only side: derived aggregates over the
// current record. Nothing here mutates.
type InsightsService struct {
	Repo    *repository.ProgressRepository
	Catalog *model.Catalog

	now func() time.Time
}

func NewInsightsService(repo *repository.ProgressRepository, catalog *model.Catalog) *InsightsService {
	return &InsightsService{
		Repo:    repo,
		Catalog: catalog,
		now:     time.Now,
	}
}

// GetRecommendedTopics fills up to limit slots in three passes: topics
// already in progress, then untouched topics from the learner's best
// subject, then anything untouched in catalog order. Deterministic for a
// fixed record and catalog.
func (s *InsightsService) GetRecommendedTopics(ctx context.Context, limit int) []model.Topic {
	p := s.Repo.Load(ctx)
	out := make([]model.Topic, 0, limit)
	picked := make(map[int]bool)

	// Pass 1: in progress but not completed, in list order.
	for _, id := range p.TopicsInProgress {
		if len(out) >= limit {
			return out
		}
		if p.HasCompleted(id) || picked[id] {
			continue
		}
		if t, ok := s.Catalog.TopicByID(id); ok {
			out = append(out, t)
			picked[id] = true
		}
	}

	// Pass 2: untouched topics from the best-scoring subject.
	if best, ok := s.bestSubject(p); ok {
		for _, t := range s.Catalog.Topics {
			if len(out) >= limit {
				return out
			}
			if t.Subject != best || picked[t.ID] || s.touched(p, t.ID) {
				continue
			}
			out = append(out, t)
			picked[t.ID] = true
		}
	}

	// Pass 3: any untouched topic, catalog order.
	for _, t := range s.Catalog.Topics {
		if len(out) >= limit {
			break
		}
		if picked[t.ID] || s.touched(p, t.ID) {
			continue
		}
		out = append(out, t)
		picked[t.ID] = true
	}

	return out
}

func (s *InsightsService) touched(p *model.UserProgress, topicID int) bool {
	return p.HasCompleted(topicID) || p.IsInProgress(topicID) || p.LessonFor(topicID) != nil
}

// bestSubject averages quiz scores per subject and picks the highest.
// Subjects are scanned in catalog first-appearance order, so the first
// one seen wins ties.
func (s *InsightsService) bestSubject(p *model.UserProgress) (model.Subject, bool) {
	sums := make(map[model.Subject]int)
	counts := make(map[model.Subject]int)
	for _, qa := range p.QuizAttempts {
		t, ok := s.Catalog.TopicByID(qa.TopicID)
		if !ok {
			continue
		}
		sums[t.Subject] += qa.Score
		counts[t.Subject]++
	}
	if len(counts) == 0 {
		return "", false
	}

	var best model.Subject
	bestAvg := -1.0
	for _, subj := range s.Catalog.Subjects() {
		if counts[subj] == 0 {
			continue
		}
		avg := float64(sums[subj]) / float64(counts[subj])
		if avg > bestAvg {
			bestAvg = avg
			best = subj
		}
	}
	return best, true
}

// CalculateStudyStreak counts consecutive calendar days with at least one
// lesson view, walking back from today and stopping at the first gap.
func (s *InsightsService) CalculateStudyStreak(ctx context.Context) int {
	p := s.Repo.Load(ctx)
	if len(p.LessonsViewed) == 0 {
		return 0
	}

	// Stored timestamps come back from JSON carrying whatever zone they
	// were serialized with, so every day key is taken in the clock's
	// location. time.Time map keys only match when the location matches.
	now := s.now()
	days := make(map[time.Time]bool, len(p.LessonsViewed))
	for _, lv := range p.LessonsViewed {
		days[dayOf(lv.Timestamp.In(now.Location()))] = true
	}

	streak := 0
	for day := dayOf(now); days[day]; day = day.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MistakeCount is one row of the common-mistake report.
type MistakeCount struct {
	Mistake string `json:"mistake"`
	Count   int    `json:"count"`
}

// AnalyzeCommonMistakes flattens the mistakes of every attempt on a topic
// and returns the three most frequent, ties kept in first-encounter
// order.
func (s *InsightsService) AnalyzeCommonMistakes(ctx context.Context, topicID int) []MistakeCount {
	p := s.Repo.Load(ctx)

	counts := make(map[string]int)
	var order []string
	for _, qa := range p.QuizAttempts {
		if qa.TopicID != topicID {
			continue
		}
		for _, m := range qa.Mistakes {
			if counts[m] == 0 {
				order = append(order, m)
			}
			counts[m]++
		}
	}

	out := make([]MistakeCount, 0, len(order))
	for _, m := range order {
		out = append(out, MistakeCount{Mistake: m, Count: counts[m]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if len(out) > 3 {
		out = out[:3]
	}
	return out
}

// GetPersonalizedEncouragement picks one of four messages from how far
// the learner has come.
func (s *InsightsService) GetPersonalizedEncouragement(ctx context.Context) string {
	p := s.Repo.Load(ctx)
	mastered := p.MasteredCount()
	completed := len(p.TopicsCompleted)

	switch {
	case mastered >= 20:
		return "Incredible! You're a true Snake Scholar — 20 topics mastered and counting!"
	case mastered >= 10:
		return "Amazing work! Ten topics mastered. Your scales are shining!"
	case completed >= 5:
		return "You're on a roll! Five topics done — keep slithering forward!"
	}
	return "Welcome, little scholar! Pick a topic and start your quest!"
}

// TopicScore pairs a topic with its mean quiz score.
type TopicScore struct {
	Topic   model.Topic `json:"topic"`
	Average float64     `json:"average"`
}

// WeakTopics lists attempted topics averaging under 60, weakest first.
func (s *InsightsService) WeakTopics(ctx context.Context) []TopicScore {
	scores := s.topicAverages(ctx)
	var out []TopicScore
	for _, ts := range scores {
		if ts.Average < 60 {
			out = append(out, ts)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Average < out[j].Average
	})
	return out
}

// StrongTopics lists attempted topics averaging 85 or better, strongest
// first.
func (s *InsightsService) StrongTopics(ctx context.Context) []TopicScore {
	scores := s.topicAverages(ctx)
	var out []TopicScore
	for _, ts := range scores {
		if ts.Average >= 85 {
			out = append(out, ts)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Average > out[j].Average
	})
	return out
}

// topicAverages keeps catalog order so downstream sorts are stable.
func (s *InsightsService) topicAverages(ctx context.Context) []TopicScore {
	p := s.Repo.Load(ctx)

	sums := make(map[int]int)
	counts := make(map[int]int)
	for _, qa := range p.QuizAttempts {
		sums[qa.TopicID] += qa.Score
		counts[qa.TopicID]++
	}

	var out []TopicScore
	for _, t := range s.Catalog.Topics {
		if counts[t.ID] == 0 {
			continue
		}
		out = append(out, TopicScore{
			Topic:   t,
			Average: float64(sums[t.ID]) / float64(counts[t.ID]),
		})
	}
	return out
}

// GetDueReviews returns review entries due at or before now, earliest
// first.
func (s *InsightsService) GetDueReviews(ctx context.Context) []model.ReviewEntry {
	p := s.Repo.Load(ctx)
	now := s.now()

	var due []model.ReviewEntry
	for _, r := range p.NextReviewDates {
		if !r.Date.After(now) {
			due = append(due, r)
		}
	}
	sort.SliceStable(due, func(i, j int) bool {
		return due[i].Date.Before(due[j].Date)
	})
	return due
}
