package controller

import (
	"errors"

	"railcollect_backend/internal/service"
	"railcollect_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FriendController struct {
	FriendshipService *service.FriendshipService
}

func NewFriendController(friendshipService *service.FriendshipService) *FriendController {
	return &FriendController{FriendshipService: friendshipService}
}

// @Summary Own friend profile
// @Description The caller's display name and friend code, created on first visit
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/friends/profile [get]
func (c *FriendController) GetProfile(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	profile, err := c.FriendshipService.EnsureProfile(user.UserID, user.Name)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, profile)
}

// @Summary Send friend request
// @Description Request a friendship with the owner of the given friend code
// @Tags friends
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object true "Target friend code"
// @Success 201 {object} util.Response
// @Router /api/friends/requests [post]
func (c *FriendController) SendRequest(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req struct {
		FriendCode string `json:"friendCode"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.FriendshipService.SendFriendRequest(user.UserID, req.FriendCode); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, nil)
}

// @Summary Incoming friend requests
// @Description Pending requests addressed to the caller
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/friends/requests [get]
func (c *FriendController) ListIncomingRequests(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	requests, err := c.FriendshipService.ListIncomingRequests(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, requests)
}

func (c *FriendController) handleRequest(ctx *gin.Context, accept bool) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	err := c.FriendshipService.HandleRequest(ctx.Param("id"), user.UserID, accept)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrAlreadyHandled):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, nil)
}

// @Summary Accept friend request
// @Description Accept a pending request addressed to the caller
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Param id path string true "Friendship ID"
// @Success 200 {object} util.Response
// @Router /api/friends/requests/{id}/accept [post]
func (c *FriendController) AcceptRequest(ctx *gin.Context) {
	c.handleRequest(ctx, true)
}

// @Summary Reject friend request
// @Description Reject a pending request addressed to the caller
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Param id path string true "Friendship ID"
// @Success 200 {object} util.Response
// @Router /api/friends/requests/{id}/reject [post]
func (c *FriendController) RejectRequest(ctx *gin.Context) {
	c.handleRequest(ctx, false)
}

// @Summary List friends
// @Description Everyone with an accepted friendship with the caller, from either direction
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/friends [get]
func (c *FriendController) ListFriends(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	friends, err := c.FriendshipService.ListFriends(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, friends)
}

// @Summary Friend wanted list
// @Description Read-only view of a friend's wanted entries, optionally filtered by scale
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Param friendId path string true "Friend user ID"
// @Param scale query string false "Scale filter"
// @Success 200 {object} util.Response
// @Router /api/friends/{friendId}/wanted [get]
func (c *FriendController) GetFriendWanted(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	profile, rows, err := c.FriendshipService.GetFriendWanted(user.UserID, ctx.Param("friendId"), ctx.Query("scale"))
	if err != nil {
		if errors.Is(err, util.ErrNotFriends) || errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"friendId":   profile.UserID,
		"friendName": profile.DisplayName,
		"wanted":     rows,
	})
}

// @Summary Friend collection
// @Description Read-only view of a friend's projects and owned items
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Param friendId path string true "Friend user ID"
// @Success 200 {object} util.Response
// @Router /api/friends/{friendId}/collection [get]
func (c *FriendController) GetFriendCollection(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	collection, err := c.FriendshipService.GetFriendCollection(user.UserID, ctx.Param("friendId"))
	if err != nil {
		if errors.Is(err, util.ErrNotFriends) || errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, collection)
}
