package service

import (
	"context"
	"time"

	"github.com/ankitjawla/snake-scholars-quest-sub000/pkg/logger"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// ReviewScheduler runs a daily scan for spaced-repetition reviews that
// have come due and logs a reminder summary the game surfaces on next
// launch.
type ReviewScheduler struct {
	insights  *InsightsService
	scheduler *gocron.Scheduler
	at        string
}

func NewReviewScheduler(insights *InsightsService, at string) *ReviewScheduler {
	if at == "" {
		at = "08:00"
	}
	return &ReviewScheduler{
		insights:  insights,
		scheduler: gocron.NewScheduler(time.Local),
		at:        at,
	}
}

func (s *ReviewScheduler) Start() error {
	if _, err := s.scheduler.Every(1).Day().At(s.at).Do(s.checkDueReviews); err != nil {
		return err
	}
	s.scheduler.StartAsync()
	return nil
}

func (s *ReviewScheduler) Stop() {
	s.scheduler.Stop()
}

func (s *ReviewScheduler) checkDueReviews() {
	due := s.insights.GetDueReviews(context.Background())
	if len(due) == 0 {
		return
	}

	topics := make([]int, len(due))
	for i, r := range due {
		topics[i] = r.TopicID
	}
	logger.Log.Info("reviews due",
		zap.Int("count", len(due)),
		zap.Ints("topics", topics),
	)
}
