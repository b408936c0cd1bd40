package controller

import (
	"strconv"

	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/service"
	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/util"

	"github.com/gin-gonic/gin"
)

type InsightsController struct {
	InsightsService *service.InsightsService
	ProgressService *service.ProgressService
}

func NewInsightsController(insightsService *service.InsightsService, progressService *service.ProgressService) *InsightsController {
	return &InsightsController{
		InsightsService: insightsService,
		ProgressService: progressService,
	}
}

// @Summary Recommended next topics
// @Tags insights
// @Produce json
// @Param limit query int false "Slot count" default(3)
// @Success 200 {object} util.Response
// @Router /api/insights/recommendations [get]
func (c *InsightsController) Recommendations(ctx *gin.Context) {
	limit := 3
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	util.Success(ctx, c.InsightsService.GetRecommendedTopics(ctx.Request.Context(), limit))
}

// @Summary Current study streak
// @Tags insights
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/insights/streak [get]
func (c *InsightsController) Streak(ctx *gin.Context) {
	util.Success(ctx, gin.H{"days": c.InsightsService.CalculateStudyStreak(ctx.Request.Context())})
}

// @Summary Common mistakes for a topic
// @Tags insights
// @Produce json
// @Param topicId path int true "Topic ID"
// @Success 200 {object} util.Response
// @Router /api/insights/mistakes/{topicId} [get]
func (c *InsightsController) Mistakes(ctx *gin.Context) {
	topicID, err := strconv.Atoi(ctx.Param("topicId"))
	if err != nil {
		util.BadRequest(ctx, "Invalid topic ID")
		return
	}

	util.Success(ctx, c.InsightsService.AnalyzeCommonMistakes(ctx.Request.Context(), topicID))
}

// @Summary Personalized encouragement
// @Tags insights
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/insights/encouragement [get]
func (c *InsightsController) Encouragement(ctx *gin.Context) {
	util.Success(ctx, gin.H{"message": c.InsightsService.GetPersonalizedEncouragement(ctx.Request.Context())})
}

// @Summary Weak topics
// @Tags insights
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/insights/weak-topics [get]
func (c *InsightsController) WeakTopics(ctx *gin.Context) {
	util.Success(ctx, c.InsightsService.WeakTopics(ctx.Request.Context()))
}

// @Summary Strong topics
// @Tags insights
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/insights/strong-topics [get]
func (c *InsightsController) StrongTopics(ctx *gin.Context) {
	util.Success(ctx, c.InsightsService.StrongTopics(ctx.Request.Context()))
}

// @Summary Reviews due now
// @Tags insights
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/insights/reviews/due [get]
func (c *InsightsController) DueReviews(ctx *gin.Context) {
	util.Success(ctx, c.InsightsService.GetDueReviews(ctx.Request.Context()))
}

// @Summary Schedule a topic review
// @Description Sets the next review date from a performance score
// @Tags insights
// @Accept json
// @Produce json
// @Param topicId path int true "Topic ID"
// @Success 200 {object} util.Response
// @Router /api/insights/reviews/{topicId} [post]
func (c *InsightsController) ScheduleReview(ctx *gin.Context) {
	topicID, err := strconv.Atoi(ctx.Param("topicId"))
	if err != nil {
		util.BadRequest(ctx, "Invalid topic ID")
		return
	}

	var req struct {
		Score int `json:"score"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	due, err := c.ProgressService.ScheduleReview(ctx.Request.Context(), topicID, req.Score)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"nextReview": due})
}
