package controller

import (
	"errors"

	"railcollect_backend/internal/service"
	"railcollect_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProjectController struct {
	ProjectService *service.ProjectService
}

func NewProjectController(projectService *service.ProjectService) *ProjectController {
	return &ProjectController{ProjectService: projectService}
}

// @Summary Create project
// @Description Create a new collection project in IN_PROGRESS status
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param project body object true "Project name"
// @Success 201 {object} util.Response
// @Router /api/projects [post]
func (c *ProjectController) CreateProject(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ProjectService.CreateProject(user.UserID, req.Name); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, nil)
}

// @Summary List projects
// @Description List the caller's projects, newest first
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/projects [get]
func (c *ProjectController) ListProjects(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	projects, err := c.ProjectService.ListProjects(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, projects)
}

// @Summary Project detail
// @Description One project with its items and wanted entries
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Success 200 {object} util.Response
// @Router /api/projects/{id} [get]
func (c *ProjectController) GetProject(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	detail, err := c.ProjectService.GetProjectDetail(ctx.Param("id"), user.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, detail)
}
