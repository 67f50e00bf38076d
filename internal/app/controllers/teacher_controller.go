package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sonquang/laixe-registry/internal/app/models/dto"
	"github.com/sonquang/laixe-registry/internal/app/services"
	"github.com/sonquang/laixe-registry/internal/middleware"
	"github.com/sonquang/laixe-registry/internal/store"
)

// TeacherController handles read access to the teacher collection
type TeacherController struct {
	teacherService services.TeacherService
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(teacherService services.TeacherService) *TeacherController {
	return &TeacherController{
		teacherService: teacherService,
	}
}

// ListTeachers returns the collection, optionally narrowed by filter
// @Summary List teachers
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Param filter query string false "ALL, HAS_CONTRACT, NO_CONTRACT or HAS_BHXH"
// @Success 200 {object} dto.APIResponse{data=dto.TeacherListResponse}
// @Router /teachers [get]
func (c *TeacherController) ListTeachers(ctx *gin.Context) {
	filter := store.ParseFilter(ctx.Query("filter"))
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.teacherService.ListTeachers(filter)))
}

// GetTeacher returns a single record by its identifier
// @Summary Get teacher details
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Teacher identifier"
// @Success 200 {object} dto.APIResponse{data=models.TeacherRecord}
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Router /teachers/{id} [get]
func (c *TeacherController) GetTeacher(ctx *gin.Context) {
	teacher, err := c.teacherService.GetTeacher(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(teacher))
}

// SearchTeacher finds the first record matching the query within the filter
// @Summary Search for a teacher
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Param q query string true "Identifier or part of the full name"
// @Param filter query string false "ALL, HAS_CONTRACT, NO_CONTRACT or HAS_BHXH"
// @Success 200 {object} dto.APIResponse{data=dto.TeacherSearchResponse}
// @Failure 404 {object} dto.ErrorResponse "No teacher matched"
// @Router /teachers/search [get]
func (c *TeacherController) SearchTeacher(ctx *gin.Context) {
	query := ctx.Query("q")
	filter := store.ParseFilter(ctx.Query("filter"))

	teacher, err := c.teacherService.SearchTeacher(query, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.TeacherSearchResponse{
		Teacher: *teacher,
		Query:   query,
	}))
}
