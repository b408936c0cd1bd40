package controller

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/service"
	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/util"

	"github.com/gin-gonic/gin"
)

type ExportController struct {
	ExportService *service.ExportService
}

func NewExportController(exportService *service.ExportService) *ExportController {
	return &ExportController{ExportService: exportService}
}

// @Summary Download a JSON backup
// @Description Full progress backup envelope. Pass archive=true to also push a copy to the archive store.
// @Tags export
// @Produce json
// @Param archive query bool false "Archive a copy"
// @Success 200 {file} binary
// @Router /api/export/json [get]
func (c *ExportController) ExportJSON(ctx *gin.Context) {
	file, err := c.ExportService.ExportJSON(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	c.deliver(ctx, file)
}

// @Summary Download a CSV progress report
// @Tags export
// @Produce text/csv
// @Param archive query bool false "Archive a copy"
// @Success 200 {file} binary
// @Router /api/export/csv [get]
func (c *ExportController) ExportCSV(ctx *gin.Context) {
	file, err := c.ExportService.ExportCSV(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	c.deliver(ctx, file)
}

// @Summary Download an XLSX progress report
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param archive query bool false "Archive a copy"
// @Success 200 {file} binary
// @Router /api/export/xlsx [get]
func (c *ExportController) ExportXLSX(ctx *gin.Context) {
	file, err := c.ExportService.ExportXLSX(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	c.deliver(ctx, file)
}

func (c *ExportController) deliver(ctx *gin.Context, file *service.ExportFile) {
	if ctx.Query("archive") == "true" {
		url, err := c.ExportService.ArchiveExport(ctx.Request.Context(), file)
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		ctx.Header("X-Archive-Location", url)
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	ctx.Data(http.StatusOK, file.ContentType, file.Data)
}

// @Summary Import a JSON backup
// @Description Validates the backup and replaces the stored progress wholesale
// @Tags export
// @Accept json
// @Produce json
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 422 {object} util.Response
// @Router /api/import [post]
func (c *ExportController) Import(ctx *gin.Context) {
	data, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		util.BadRequest(ctx, "Unreadable request body")
		return
	}

	err = c.ExportService.Import(ctx.Request.Context(), data)
	switch {
	case errors.Is(err, util.ErrInvalidBackup):
		util.BadRequest(ctx, "Not a valid backup file")
	case errors.Is(err, util.ErrBackupRejected):
		util.Error(ctx, http.StatusUnprocessableEntity, "Backup failed validation")
	case err != nil:
		util.LogInternalError(ctx, err)
	default:
		util.Success(ctx, gin.H{"imported": true})
	}
}
