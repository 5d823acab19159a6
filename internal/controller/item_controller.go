package controller

import (
	"errors"

	"railcollect_backend/internal/model"
	"railcollect_backend/internal/service"
	"railcollect_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ItemController struct {
	ItemService *service.ItemService
}

func NewItemController(itemService *service.ItemService) *ItemController {
	return &ItemController{ItemService: itemService}
}

// @Summary List scales
// @Description Allowed scale values with display labels, for form selects
// @Tags items
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/scales [get]
func (c *ItemController) ListScales(ctx *gin.Context) {
	scales := make([]gin.H, 0, len(model.AllScales))
	for _, s := range model.AllScales {
		scales = append(scales, gin.H{"value": s, "label": s.Label()})
	}
	util.Success(ctx, scales)
}

// @Summary Add item
// @Description Record an owned item against one of the caller's projects
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Project ID"
// @Param item body service.AddItemInput true "Item fields"
// @Success 201 {object} util.Response
// @Router /api/projects/{id}/items [post]
func (c *ItemController) AddItem(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.AddItemInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	err := c.ItemService.AddItem(ctx.Param("id"), user.UserID, req)
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

// @Summary Item detail
// @Description One owned item joined with its project name
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 200 {object} util.Response
// @Router /api/items/{id} [get]
func (c *ItemController) GetItem(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	item, err := c.ItemService.GetItemDetail(ctx.Param("id"), user.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, item)
}

// @Summary Update item
// @Description Apply the full item edit form, optionally moving the item to another of the caller's projects
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param item body service.UpdateItemInput true "Item fields"
// @Success 200 {object} util.Response
// @Router /api/items/{id} [put]
func (c *ItemController) UpdateItem(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.UpdateItemInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	err := c.ItemService.UpdateItem(ctx.Param("id"), user.UserID, req)
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
