package controllers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sonquang/laixe-registry/internal/app/models/dto"
	"github.com/sonquang/laixe-registry/internal/app/services"
	"github.com/sonquang/laixe-registry/internal/middleware"
)

// ImportController handles workbook uploads
type ImportController struct {
	importService   services.ImportService
	maxUploadSizeMB int
}

// NewImportController creates a new ImportController
func NewImportController(importService services.ImportService, maxUploadSizeMB int) *ImportController {
	return &ImportController{
		importService:   importService,
		maxUploadSizeMB: maxUploadSizeMB,
	}
}

// ImportWorkbook ingests an uploaded xlsx workbook into the collection
// @Summary Import a workbook
// @Tags imports
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "xlsx workbook"
// @Success 200 {object} dto.APIResponse{data=dto.ImportSummary}
// @Failure 400 {object} dto.ErrorResponse "Unreadable or empty workbook"
// @Router /imports [post]
func (c *ImportController) ImportWorkbook(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "A workbook file is required")
		errorDetail = errorDetail.WithField("file").WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if maxBytes := int64(c.maxUploadSizeMB) << 20; fileHeader.Size > maxBytes {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Workbook exceeds the upload size limit")
		errorDetail = errorDetail.WithField("file")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if ext := strings.ToLower(filepath.Ext(fileHeader.Filename)); ext != ".xlsx" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Only .xlsx workbooks are supported")
		errorDetail = errorDetail.WithField("file")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer file.Close()

	summary, err := c.importService.ImportWorkbook(file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(summary))
}
