package model

import "time"

const (
	// SessionLogCap bounds the activity log; oldest entries are dropped.
	SessionLogCap = 100
	// ChallengeHistoryCap bounds the challenge history the same way.
	ChallengeHistoryCap = 50
	// CatchUpTokenCap is the most streak catch-up tokens a learner can hold.
	CatchUpTokenCap = 3
)

// LessonView is the current view record for one topic. Re-viewing a topic
// updates this entry in place; there is never more than one per topic.
type LessonView struct {
	TopicID        int       `json:"topicId"`
	Timestamp      time.Time `json:"timestamp"`
	TimeSpent      int       `json:"timeSpent"`      // seconds
	CompletionRate int       `json:"completionRate"` // 0-100
}

// QuizAttempt rows are append-only; mistakes feed weak-area detection.
type QuizAttempt struct {
	TopicID      int      `json:"topicId"`
	Score        int      `json:"score"` // 0-100
	TimeToAnswer int      `json:"timeToAnswer"`
	Mistakes     []string `json:"mistakes"`
}

type MasteryEntry struct {
	TopicID int          `json:"topicId"`
	Level   MasteryLevel `json:"level"`
}

type ReviewEntry struct {
	TopicID int       `json:"topicId"`
	Date    time.Time `json:"date"`
}

type PowerUp struct {
	Name         string    `json:"name"`
	Quantity     int       `json:"quantity"`
	LastEarnedAt time.Time `json:"lastEarnedAt"`
}

type Badge struct {
	ID       string    `json:"id"`
	Tier     int       `json:"tier"` // 1-3
	EarnedAt time.Time `json:"earnedAt"`
}

type StickerEntry struct {
	TopicID       int   `json:"topicId"`
	TiersUnlocked []int `json:"tiersUnlocked"` // ascending, unique
}

type Streak struct {
	DailyCount      int       `json:"dailyCount"`
	WeeklyCount     int       `json:"weeklyCount"`
	LastSessionDate time.Time `json:"lastSessionDate"`
	CatchUpTokens   int       `json:"catchUpTokens"`
}

type ChapterProgress struct {
	ChapterID         int   `json:"chapterId"`
	Unlocked          bool  `json:"unlocked"`
	CompletedTopicIDs []int `json:"completedTopicIds"`
	BadgeTier         int   `json:"badgeTier"` // 0-3
}

type ChallengeResult struct {
	ID              string    `json:"id"`
	Correct         int       `json:"correct"`
	Total           int       `json:"total"`
	Accuracy        float64   `json:"accuracy"`
	BestStreak      int       `json:"bestStreak"`
	StarsEarned     int       `json:"starsEarned"`
	DurationSeconds int       `json:"durationSeconds"`
	FastestAnswer   float64   `json:"fastestAnswer"`
	CompletedAt     time.Time `json:"completedAt"`
}

// LeaderboardProfile is device-local only; there is no network identity.
type LeaderboardProfile struct {
	Nickname       string `json:"nickname"`
	ClassCode      string `json:"classCode,omitempty"`
	PercentileBand string `json:"percentileBand"`
}

type Creative struct {
	UnlockedSkins []string `json:"unlockedSkins"`
	ActiveSkin    string   `json:"activeSkin,omitempty"`
}

// SessionEntry is one row of the bounded activity log. Score and the
// answer counters are only present for scored activities.
type SessionEntry struct {
	Timestamp      time.Time    `json:"timestamp"`
	TopicID        int          `json:"topicId"`
	TopicTitle     string       `json:"topicTitle"`
	Activity       ActivityKind `json:"activity"`
	Duration       int          `json:"duration"` // seconds
	Score          *int         `json:"score,omitempty"`
	CorrectAnswers *int         `json:"correctAnswers,omitempty"`
	TotalQuestions *int         `json:"totalQuestions,omitempty"`
}

// UserProgress is the root record: one learner, one slot, mutated by the
// progress service helpers and persisted wholesale on every change.
type UserProgress struct {
	TopicsCompleted      []int               `json:"topicsCompleted"`
	TopicsInProgress     []int               `json:"topicsInProgress"`
	LessonsViewed        []LessonView        `json:"lessonsViewed"`
	QuizAttempts         []QuizAttempt       `json:"quizAttempts"`
	MasteryLevels        []MasteryEntry      `json:"masteryLevels"`
	NextReviewDates      []ReviewEntry       `json:"nextReviewDates"`
	Stars                int                 `json:"stars"`
	PowerUps             []PowerUp           `json:"powerUps"`
	Badges               []Badge             `json:"badges"`
	StickerAlbum         []StickerEntry      `json:"stickerAlbum"`
	Streak               Streak              `json:"streak"`
	ChapterProgress      []ChapterProgress   `json:"chapterProgress"`
	ChallengeHistory     []ChallengeResult   `json:"challengeHistory"`
	SessionLog           []SessionEntry      `json:"sessionLog"`
	TotalLearningMinutes int                 `json:"totalLearningMinutes"`
	LastSessionDate      time.Time           `json:"lastSessionDate"`
	LeaderboardProfile   *LeaderboardProfile `json:"leaderboardProfile,omitempty"`
	Creative             Creative            `json:"creative"`
}

// NewUserProgress returns the zero-default record used on first load and
// whenever the stored document is missing or corrupt.
func NewUserProgress() *UserProgress {
	return &UserProgress{
		TopicsCompleted:  []int{},
		TopicsInProgress: []int{},
		LessonsViewed:    []LessonView{},
		QuizAttempts:     []QuizAttempt{},
		MasteryLevels:    []MasteryEntry{},
		NextReviewDates:  []ReviewEntry{},
		PowerUps:         []PowerUp{},
		Badges:           []Badge{},
		StickerAlbum:     []StickerEntry{},
		ChapterProgress:  []ChapterProgress{},
		ChallengeHistory: []ChallengeResult{},
		SessionLog:       []SessionEntry{},
		Creative:         Creative{UnlockedSkins: []string{}},
	}
}

func (p *UserProgress) HasCompleted(topicID int) bool {
	return containsInt(p.TopicsCompleted, topicID)
}

func (p *UserProgress) IsInProgress(topicID int) bool {
	return containsInt(p.TopicsInProgress, topicID)
}

// LessonFor returns the current view entry for a topic, or nil.
func (p *UserProgress) LessonFor(topicID int) *LessonView {
	for i := range p.LessonsViewed {
		if p.LessonsViewed[i].TopicID == topicID {
			return &p.LessonsViewed[i]
		}
	}
	return nil
}

func (p *UserProgress) MasteryFor(topicID int) (MasteryLevel, bool) {
	for _, m := range p.MasteryLevels {
		if m.TopicID == topicID {
			return m.Level, true
		}
	}
	return "", false
}

func (p *UserProgress) ReviewFor(topicID int) *ReviewEntry {
	for i := range p.NextReviewDates {
		if p.NextReviewDates[i].TopicID == topicID {
			return &p.NextReviewDates[i]
		}
	}
	return nil
}

func (p *UserProgress) BadgeFor(id string) *Badge {
	for i := range p.Badges {
		if p.Badges[i].ID == id {
			return &p.Badges[i]
		}
	}
	return nil
}

func (p *UserProgress) StickerFor(topicID int) *StickerEntry {
	for i := range p.StickerAlbum {
		if p.StickerAlbum[i].TopicID == topicID {
			return &p.StickerAlbum[i]
		}
	}
	return nil
}

func (p *UserProgress) ChapterFor(chapterID int) *ChapterProgress {
	for i := range p.ChapterProgress {
		if p.ChapterProgress[i].ChapterID == chapterID {
			return &p.ChapterProgress[i]
		}
	}
	return nil
}

func (p *UserProgress) PowerUpFor(name string) *PowerUp {
	for i := range p.PowerUps {
		if p.PowerUps[i].Name == name {
			return &p.PowerUps[i]
		}
	}
	return nil
}

func (p *UserProgress) HasSkin(id string) bool {
	for _, s := range p.Creative.UnlockedSkins {
		if s == id {
			return true
		}
	}
	return false
}

// MasteredCount counts topics at level mastered.
func (p *UserProgress) MasteredCount() int {
	n := 0
	for _, m := range p.MasteryLevels {
		if m.Level == MasteryMastered {
			n++
		}
	}
	return n
}

func containsInt(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

// AppendUniqueInt adds v if absent and reports whether it was added.
func AppendUniqueInt(list []int, v int) ([]int, bool) {
	if containsInt(list, v) {
		return list, false
	}
	return append(list, v), true
}

// RemoveInt returns a new slice with every occurrence of v dropped. The
// input is left untouched.
func RemoveInt(list []int, v int) []int {
	out := make([]int, 0, len(list))
	for _, x := range list {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}
