package service

import (
	"context"
	"sync"

	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/model"
	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/repository"
)

// HighScoreService fronts the independent best-score slot game-over
// handlers hit directly. It never touches the progress record.
type HighScoreService struct {
	Repo *repository.ProgressRepository

	mu sync.Mutex
}

func NewHighScoreService(repo *repository.ProgressRepository) *HighScoreService {
	return &HighScoreService{Repo: repo}
}

func (s *HighScoreService) GetAll(ctx context.Context) model.HighScores {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Repo.LoadHighScores(ctx)
}

func (s *HighScoreService) Get(ctx context.Context, game string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	best, ok := s.Repo.LoadHighScores(ctx)[game]
	return best, ok
}

// Submit keeps the higher of the stored and submitted scores, returning
// the resulting best and whether the submission improved it.
func (s *HighScoreService) Submit(ctx context.Context, game string, score int) (int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hs := s.Repo.LoadHighScores(ctx)
	improved := hs.Submit(game, score)
	if improved {
		if err := s.Repo.SaveHighScores(ctx, hs); err != nil {
			return 0, false, err
		}
	}
	return hs[game], improved, nil
}
