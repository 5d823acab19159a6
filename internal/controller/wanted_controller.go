package controller

import (
	"errors"

	"railcollect_backend/internal/service"
	"railcollect_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type WantedController struct {
	WantedService *service.WantedService
}

func NewWantedController(wantedService *service.WantedService) *WantedController {
	return &WantedController{WantedService: wantedService}
}

// @Summary Add wanted entry
// @Description Record a wish-list entry against one of the caller's projects
// @Tags wanted
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param wanted body service.AddWantedInput true "Wanted fields"
// @Success 201 {object} util.Response
// @Router /api/projects/{id}/wanted [post]
func (c *WantedController) AddWanted(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.AddWantedInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	err := c.WantedService.AddWanted(ctx.Param("id"), user.UserID, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, nil)
}

// @Summary List wanted entries
// @Description All of the caller's wanted entries across projects, newest first
// @Tags wanted
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/wanted [get]
func (c *WantedController) ListWanted(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	rows, err := c.WantedService.ListWanted(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, rows)
}

// @Summary Wanted detail
// @Description One wanted entry joined with its project name
// @Tags wanted
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wanted ID"
// @Success 200 {object} util.Response
// @Router /api/wanted/{id} [get]
func (c *WantedController) GetWanted(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	row, err := c.WantedService.GetWanted(ctx.Param("id"), user.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, row)
}

// @Summary Update wanted entry
// @Tags wanted
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wanted ID"
// @Param wanted body service.UpdateWantedInput true "Wanted fields"
// @Success 200 {object} util.Response
// @Router /api/wanted/{id} [put]
func (c *WantedController) UpdateWanted(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.UpdateWantedInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	err := c.WantedService.UpdateWanted(ctx.Param("id"), user.UserID, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// @Summary Delete wanted entry
// @Tags wanted
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wanted ID"
// @Success 200 {object} util.Response
// @Router /api/wanted/{id} [delete]
func (c *WantedController) DeleteWanted(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	err := c.WantedService.DeleteWanted(ctx.Param("id"), user.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

type convertRequest struct {
	Type  string `json:"type"`
	Maker string `json:"maker"`
}

// @Summary Convert wanted entry to item
// @Description Atomically create an owned item from the wanted entry and remove the entry
// @Tags wanted
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wanted ID"
// @Param conversion body convertRequest true "Item type and optional maker override"
// @Success 201 {object} util.Response
// @Router /api/wanted/{id}/convert [post]
func (c *WantedController) ConvertWanted(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req convertRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	err := c.WantedService.ConvertByID(ctx.Param("id"), user.UserID, req.Type, req.Maker, "")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, nil)
}

// @Summary Convert wanted entry from the project page
// @Description Same conversion as /api/wanted/{id}/convert, addressed through the owning project
// @Tags wanted
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param wantedId path string true "Wanted ID"
// @Param conversion body convertRequest true "Item type and optional maker override"
// @Success 201 {object} util.Response
// @Router /api/projects/{id}/wanted/{wantedId}/convert [post]
func (c *WantedController) ConvertWantedInProject(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req convertRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	err := c.WantedService.ConvertToItem(ctx.Param("wantedId"), ctx.Param("id"), user.UserID, req.Type, req.Maker, "")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, nil)
}

type purchaseRequest struct {
	Type  string `json:"type"`
	Maker string `json:"maker"`
	Price string `json:"price"`
}

// @Summary Quick purchase
// @Description Convert the wanted entry into an owned item, recording the purchase price
// @Tags wanted
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wanted ID"
// @Param purchase body purchaseRequest true "Item type, optional maker override and price"
// @Success 201 {object} util.Response
// @Router /api/wanted/{id}/purchase [post]
func (c *WantedController) PurchaseWanted(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req purchaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	err := c.WantedService.ConvertByID(ctx.Param("id"), user.UserID, req.Type, req.Maker, req.Price)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, nil)
}
