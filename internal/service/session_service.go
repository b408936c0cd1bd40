package service

import (
	"context"

	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/model"
	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/repository"
)

// SessionService derives statistics from the bounded activity log.
// Appending log entries goes through ProgressService.LogActivity so every
// record mutation shares one lock.
type SessionService struct {
	Repo *repository.ProgressRepository
}

func NewSessionService(repo *repository.ProgressRepository) *SessionService {
	return &SessionService{Repo: repo}
}

// Stats summarizes the log: totals, mean score over scored entries only,
// distinct topics, and the ten most recent entries newest first.
func (s *SessionService) Stats(ctx context.Context) model.SessionStats {
	p := s.Repo.Load(ctx)

	stats := model.SessionStats{
		TotalSessions: len(p.SessionLog),
		Recent:        []model.SessionEntry{},
	}

	topics := make(map[int]bool)
	scoreSum, scoreCount := 0, 0
	for _, e := range p.SessionLog {
		stats.TotalDuration += e.Duration
		topics[e.TopicID] = true
		if e.Score != nil {
			scoreSum += *e.Score
			scoreCount++
		}
	}
	stats.DistinctTopics = len(topics)
	if scoreCount > 0 {
		stats.AverageScore = float64(scoreSum) / float64(scoreCount)
	}

	n := len(p.SessionLog)
	limit := 10
	if n < limit {
		limit = n
	}
	for i := 0; i < limit; i++ {
		stats.Recent = append(stats.Recent, p.SessionLog[n-1-i])
	}

	return stats
}
