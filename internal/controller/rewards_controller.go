package controller

import (
	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/model"
	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/service"
	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/util"

	"github.com/gin-gonic/gin"
)

type RewardsController struct {
	ProgressService *service.ProgressService
}

func NewRewardsController(progressService *service.ProgressService) *RewardsController {
	return &RewardsController{ProgressService: progressService}
}

// @Summary Award stars
// @Description Adds stars to the wallet and returns the new total
// @Tags rewards
// @Accept json
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/rewards/stars [post]
func (c *RewardsController) AwardStars(ctx *gin.Context) {
	var req struct {
		Amount int `json:"amount"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	total, err := c.ProgressService.AwardStars(ctx.Request.Context(), req.Amount)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"stars": total})
}

// @Summary Record a badge
// @Description Upserts a badge; a higher tier for the same id levels it up
// @Tags rewards
// @Accept json
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/rewards/badges [post]
func (c *RewardsController) RecordBadge(ctx *gin.Context) {
	var req struct {
		ID   string `json:"id" binding:"required"`
		Tier int    `json:"tier" binding:"required,min=1,max=3"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ProgressService.RecordBadge(ctx.Request.Context(), req.ID, req.Tier); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "Badge recorded"})
}

// @Summary Unlock a sticker tier
// @Tags rewards
// @Accept json
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/rewards/stickers [post]
func (c *RewardsController) UpdateSticker(ctx *gin.Context) {
	var req struct {
		TopicID int `json:"topicId" binding:"required"`
		Tier    int `json:"tier" binding:"required,min=1,max=3"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ProgressService.UpdateStickerAlbum(ctx.Request.Context(), req.TopicID, req.Tier); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "Sticker updated"})
}

// @Summary Award a power-up
// @Tags rewards
// @Accept json
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/rewards/powerups [post]
func (c *RewardsController) AwardPowerUp(ctx *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Quantity int    `json:"quantity"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	if err := c.ProgressService.AwardPowerUp(ctx.Request.Context(), req.Name, req.Quantity); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "Power-up awarded"})
}

// @Summary Consume a power-up
// @Tags rewards
// @Produce json
// @Param name path string true "Power-up name"
// @Success 200 {object} util.Response
// @Router /api/rewards/powerups/{name}/consume [post]
func (c *RewardsController) ConsumePowerUp(ctx *gin.Context) {
	name := ctx.Param("name")

	err := c.ProgressService.ConsumePowerUp(ctx.Request.Context(), name)
	if err == util.ErrPowerUpEmpty {
		util.Conflict(ctx, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "Power-up consumed"})
}

// @Summary Unlock a skin
// @Description Spends stars on a skin; fails when the wallet is short
// @Tags rewards
// @Accept json
// @Produce json
// @Param id path string true "Skin ID"
// @Success 200 {object} util.Response
// @Router /api/rewards/skins/{id}/unlock [post]
func (c *RewardsController) UnlockSkin(ctx *gin.Context) {
	skinID := ctx.Param("id")

	var req struct {
		Cost int `json:"cost"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	stars, err := c.ProgressService.UnlockSkin(ctx.Request.Context(), skinID, req.Cost)
	if err == util.ErrNotEnoughStars {
		util.Conflict(ctx, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"stars": stars})
}

// @Summary Set the active skin
// @Tags rewards
// @Accept json
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/rewards/skins/active [put]
func (c *RewardsController) SetActiveSkin(ctx *gin.Context) {
	var req struct {
		ID string `json:"id" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	err := c.ProgressService.SetActiveSkin(ctx.Request.Context(), req.ID)
	if err == util.ErrSkinNotUnlocked {
		util.Conflict(ctx, err.Error())
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "Skin activated"})
}

// @Summary Save the leaderboard profile
// @Description Device-local only; no network identity is created
// @Tags rewards
// @Accept json
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/leaderboard/profile [put]
func (c *RewardsController) SaveLeaderboardProfile(ctx *gin.Context) {
	var profile model.LeaderboardProfile
	if err := ctx.ShouldBindJSON(&profile); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if profile.Nickname == "" {
		util.BadRequest(ctx, "Nickname is required")
		return
	}

	if err := c.ProgressService.SaveLeaderboardProfile(ctx.Request.Context(), profile); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "Profile saved"})
}
