package controller

import (
	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/model"
	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/service"
	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/util"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	SessionService  *service.SessionService
	ProgressService *service.ProgressService
}

func NewSessionController(sessionService *service.SessionService, progressService *service.ProgressService) *SessionController {
	return &SessionController{
		SessionService:  sessionService,
		ProgressService: progressService,
	}
}

type logActivityRequest struct {
	Activity       model.ActivityKind `json:"activity" binding:"required"`
	TopicID        int                `json:"topicId"`
	Duration       int                `json:"duration"`
	Score          *int               `json:"score"`
	CorrectAnswers *int               `json:"correctAnswers"`
	TotalQuestions *int               `json:"totalQuestions"`
}

// @Summary Session statistics
// @Description Totals, average score and the most recent activities
// @Tags sessions
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/sessions/stats [get]
func (c *SessionController) Stats(ctx *gin.Context) {
	util.Success(ctx, c.SessionService.Stats(ctx.Request.Context()))
}

// @Summary Log a learning activity
// @Tags sessions
// @Accept json
// @Produce json
// @Param activity body logActivityRequest true "Activity"
// @Success 201 {object} util.Response
// @Router /api/sessions/activities [post]
func (c *SessionController) LogActivity(ctx *gin.Context) {
	var req logActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if !req.Activity.Valid() {
		util.BadRequest(ctx, "Unknown activity kind")
		return
	}

	entry := model.SessionEntry{
		Activity:       req.Activity,
		TopicID:        req.TopicID,
		Duration:       req.Duration,
		Score:          req.Score,
		CorrectAnswers: req.CorrectAnswers,
		TotalQuestions: req.TotalQuestions,
	}
	if err := c.ProgressService.LogActivity(ctx.Request.Context(), entry); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, nil)
}
