package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/oohyj/pointsync/services"
	"github.com/oohyj/pointsync/utils"
)

// UserController handles account sign-up and lookups.
type UserController struct {
	svc *services.UserService
}

// NewUserController creates a new controller instance.
func NewUserController(svc *services.UserService) *UserController {
	return &UserController{svc: svc}
}

type signUpRequest struct {
	Name  string `json:"name" binding:"required,max=50"`
	Email string `json:"email" binding:"required,email,max=100"`
}

// SignUp registers an account with a unique email.
func (u *UserController) SignUp(ctx *gin.Context) {
	var req signUpRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40001, "name and a valid email are required")
		return
	}

	user, err := u.svc.SignUp(ctx.Request.Context(), req.Name, req.Email)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			utils.Error(ctx, http.StatusBadRequest, 40030, "email already registered")
			return
		}
		utils.Sugar.Errorw("sign-up failed", "email", req.Email, "err", err)
		utils.Error(ctx, http.StatusInternalServerError, 50030, "failed to create user")
		return
	}

	utils.Success(ctx, user)
}

// Get returns a user by id.
func (u *UserController) Get(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}

	user, err := u.svc.Get(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40410, "user not found")
			return
		}
		utils.Sugar.Errorw("load user failed", "user_id", id, "err", err)
		utils.Error(ctx, http.StatusInternalServerError, 50031, "failed to load user")
		return
	}

	utils.Success(ctx, user)
}

// GetByEmail returns a user by email.
func (u *UserController) GetByEmail(ctx *gin.Context) {
	email := ctx.Query("email")
	if email == "" {
		utils.Error(ctx, http.StatusBadRequest, 40001, "email is required")
		return
	}

	user, err := u.svc.FindByEmail(ctx.Request.Context(), email)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40410, "user not found")
			return
		}
		utils.Sugar.Errorw("load user by email failed", "err", err)
		utils.Error(ctx, http.StatusInternalServerError, 50031, "failed to load user")
		return
	}

	utils.Success(ctx, user)
}

// Delete removes an account.
func (u *UserController) Delete(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}

	if err := u.svc.Delete(ctx.Request.Context(), id); err != nil {
		utils.Sugar.Errorw("delete user failed", "user_id", id, "err", err)
		utils.Error(ctx, http.StatusInternalServerError, 50032, "failed to delete user")
		return
	}

	ctx.Status(http.StatusNoContent)
}

func paramID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil || id == 0 {
		utils.Error(ctx, http.StatusBadRequest, 40001, "id must be a positive integer")
		return 0, false
	}
	return uint(id), true
}
