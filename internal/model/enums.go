package model

// MasteryLevel is the closed set of per-topic mastery stages.
type MasteryLevel string

const (
	MasteryBeginner     MasteryLevel = "beginner"
	MasteryIntermediate MasteryLevel = "intermediate"
	MasteryAdvanced     MasteryLevel = "advanced"
	MasteryMastered     MasteryLevel = "mastered"
)

func (l MasteryLevel) Valid() bool {
	switch l {
	case MasteryBeginner, MasteryIntermediate, MasteryAdvanced, MasteryMastered:
		return true
	}
	return false
}

// ActivityKind tags session log entries.
type ActivityKind string

const (
	ActivityLesson     ActivityKind = "lesson"
	ActivityQuiz       ActivityKind = "quiz"
	ActivityGame       ActivityKind = "game"
	ActivityAssessment ActivityKind = "assessment"
	ActivityReview     ActivityKind = "review"
)

func (a ActivityKind) Valid() bool {
	switch a {
	case ActivityLesson, ActivityQuiz, ActivityGame, ActivityAssessment, ActivityReview:
		return true
	}
	return false
}

// Badge and sticker tiers run 1..3; chapter badge tier adds 0 for "none".
const (
	TierNone   = 0
	TierBronze = 1
	TierSilver = 2
	TierGold   = 3
)

func ValidTier(tier int) bool {
	return tier >= TierBronze && tier <= TierGold
}
