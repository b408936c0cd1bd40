package controller

import (
	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/service"
	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/util"

	"github.com/gin-gonic/gin"
)

type HighScoreController struct {
	HighScoreService *service.HighScoreService
}

func NewHighScoreController(highScoreService *service.HighScoreService) *HighScoreController {
	return &HighScoreController{HighScoreService: highScoreService}
}

// @Summary All high scores
// @Tags highscores
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/highscores [get]
func (c *HighScoreController) GetAll(ctx *gin.Context) {
	util.Success(ctx, c.HighScoreService.GetAll(ctx.Request.Context()))
}

// @Summary High score for one game
// @Tags highscores
// @Produce json
// @Param game path string true "Game key"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/highscores/{game} [get]
func (c *HighScoreController) Get(ctx *gin.Context) {
	score, ok := c.HighScoreService.Get(ctx.Request.Context(), ctx.Param("game"))
	if !ok {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, gin.H{"game": ctx.Param("game"), "score": score})
}

type submitScoreRequest struct {
	Score int `json:"score" binding:"min=0"`
}

// @Summary Submit a score
// @Description Keeps the score only when it beats the stored best
// @Tags highscores
// @Accept json
// @Produce json
// @Param game path string true "Game key"
// @Param score body submitScoreRequest true "Score"
// @Success 200 {object} util.Response
// @Router /api/highscores/{game} [put]
func (c *HighScoreController) Submit(ctx *gin.Context) {
	var req submitScoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	best, improved, err := c.HighScoreService.Submit(ctx.Request.Context(), ctx.Param("game"), req.Score)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"best": best, "improved": improved})
}
