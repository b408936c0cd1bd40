package controller

import (
	"strconv"

	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/model"
	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/service"
	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// @Summary Get the progress record
// @Description Returns the learner's full progress record
// @Tags progress
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/progress [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	util.Success(ctx, c.ProgressService.GetProgress(ctx.Request.Context()))
}

// @Summary Mark a lesson complete
// @Description Records a finished lesson view for a topic
// @Tags progress
// @Accept json
// @Produce json
// @Param topicId path int true "Topic ID"
// @Success 200 {object} util.Response
// @Router /api/progress/lessons/{topicId}/complete [post]
func (c *ProgressController) MarkLessonComplete(ctx *gin.Context) {
	topicID, err := strconv.Atoi(ctx.Param("topicId"))
	if err != nil {
		util.BadRequest(ctx, "Invalid topic ID")
		return
	}

	var req struct {
		TimeSpent int `json:"timeSpent"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ProgressService.MarkLessonComplete(ctx.Request.Context(), topicID, req.TimeSpent); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "Lesson marked complete"})
}

// @Summary Record a quiz attempt
// @Description Appends a quiz attempt and optionally schedules the next review from its score
// @Tags progress
// @Accept json
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/progress/quizzes [post]
func (c *ProgressController) RecordQuiz(ctx *gin.Context) {
	var req struct {
		TopicID        int      `json:"topicId" binding:"required"`
		Score          int      `json:"score"`
		TimeToAnswer   int      `json:"timeToAnswer"`
		Mistakes       []string `json:"mistakes"`
		ScheduleReview bool     `json:"scheduleReview"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	attempt := model.QuizAttempt{
		TopicID:      req.TopicID,
		Score:        req.Score,
		TimeToAnswer: req.TimeToAnswer,
		Mistakes:     req.Mistakes,
	}
	if err := c.ProgressService.RecordQuizAttempt(ctx.Request.Context(), attempt); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	resp := gin.H{"message": "Quiz attempt recorded"}
	if req.ScheduleReview {
		due, err := c.ProgressService.ScheduleReview(ctx.Request.Context(), req.TopicID, req.Score)
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		resp["nextReview"] = due
	}
	util.Success(ctx, resp)
}

// @Summary Update a topic's mastery level
// @Description Upserts the mastery entry; mastered topics join topicsCompleted
// @Tags progress
// @Accept json
// @Produce json
// @Param topicId path int true "Topic ID"
// @Success 200 {object} util.Response
// @Router /api/progress/mastery/{topicId} [put]
func (c *ProgressController) UpdateMastery(ctx *gin.Context) {
	topicID, err := strconv.Atoi(ctx.Param("topicId"))
	if err != nil {
		util.BadRequest(ctx, "Invalid topic ID")
		return
	}

	var req struct {
		Level model.MasteryLevel `json:"level" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if !req.Level.Valid() {
		util.BadRequest(ctx, "Unknown mastery level")
		return
	}

	if err := c.ProgressService.UpdateMasteryLevel(ctx.Request.Context(), topicID, req.Level); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "Mastery updated"})
}

// @Summary Record a challenge run
// @Tags progress
// @Accept json
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/progress/challenges [post]
func (c *ProgressController) RecordChallenge(ctx *gin.Context) {
	var result model.ChallengeResult
	if err := ctx.ShouldBindJSON(&result); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ProgressService.RecordChallenge(ctx.Request.Context(), result); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "Challenge recorded"})
}

// @Summary Touch today's session
// @Description Updates the study streak for today and returns it
// @Tags progress
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/progress/session/touch [post]
func (c *ProgressController) TouchSession(ctx *gin.Context) {
	streak, err := c.ProgressService.TouchSession(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, streak)
}

// @Summary Add learning minutes
// @Tags progress
// @Accept json
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/progress/minutes [post]
func (c *ProgressController) AddMinutes(ctx *gin.Context) {
	var req struct {
		Minutes int `json:"minutes" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ProgressService.AddLearningMinutes(ctx.Request.Context(), req.Minutes); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "Minutes added"})
}

// @Summary Complete a topic inside a quest chapter
// @Tags progress
// @Produce json
// @Param chapterId path int true "Chapter ID"
// @Param topicId path int true "Topic ID"
// @Success 200 {object} util.Response
// @Router /api/progress/chapters/{chapterId}/topics/{topicId} [put]
func (c *ProgressController) CompleteChapterTopic(ctx *gin.Context) {
	chapterID, err := strconv.Atoi(ctx.Param("chapterId"))
	if err != nil {
		util.BadRequest(ctx, "Invalid chapter ID")
		return
	}
	topicID, err := strconv.Atoi(ctx.Param("topicId"))
	if err != nil {
		util.BadRequest(ctx, "Invalid topic ID")
		return
	}

	ch, err := c.ProgressService.CompleteChapterTopic(ctx.Request.Context(), chapterID, topicID)
	if err == util.ErrUnknownChapter {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, ch)
}

// @Summary Reset all progress
// @Description Clears the stored record; the next read returns defaults
// @Tags progress
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/progress/reset [post]
func (c *ProgressController) Reset(ctx *gin.Context) {
	if err := c.ProgressService.Reset(ctx.Request.Context()); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "Progress reset"})
}
