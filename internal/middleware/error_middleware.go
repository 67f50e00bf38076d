package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/sonquang/laixe-registry/internal/app/models/dto"
	"github.com/sonquang/laixe-registry/internal/pkg/apperrors"
)

// HandleAPIError maps service errors onto the standard error envelope. All
// controllers funnel their error paths through here so every failure leaves
// the API with the same shape.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrTeacherNotFound):
		c.JSON(404, dto.NewAPIErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Teacher not found")))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(401, dto.NewAPIErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")))

	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(401, dto.NewAPIErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired")))

	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(401, dto.NewAPIErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token")))

	case errors.Is(err, apperrors.ErrTokenNotFound):
		c.JSON(401, dto.NewAPIErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeTokenNotFound, "Token not found")))

	case errors.Is(err, apperrors.ErrWorkbookDecode):
		c.JSON(400, dto.NewAPIErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeWorkbookDecode, "Unable to read the workbook").WithDetails(err.Error())))

	case errors.Is(err, apperrors.ErrEmptyWorkbook):
		c.JSON(400, dto.NewAPIErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeEmptyWorkbook, "The workbook contains no usable sheet")))

	case errors.Is(err, apperrors.ErrNoDataRows):
		c.JSON(400, dto.NewAPIErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeNoDataRows, "The workbook sheets contain no data rows")))

	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(400, dto.NewAPIErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").WithDetails(err.Error())))

	case errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.NewAPIErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())))

	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		c.JSON(500, dto.NewAPIErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}
