package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/oohyj/pointsync/services"
	"github.com/oohyj/pointsync/utils"
)

// PointController handles manual ledger entries, totals and history.
type PointController struct {
	svc *services.PointService
}

// NewPointController creates a new controller instance.
func NewPointController(svc *services.PointService) *PointController {
	return &PointController{svc: svc}
}

type appendPointsRequest struct {
	UserID uint   `json:"user_id" binding:"required"`
	Amount int    `json:"amount"`
	Reason string `json:"reason" binding:"required,max=50"`
}

// Append records a ledger entry; positive credits, negative debits.
func (p *PointController) Append(ctx *gin.Context) {
	var req appendPointsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40001, "invalid request body")
		return
	}

	entry, err := p.svc.Append(ctx.Request.Context(), req.UserID, req.Amount, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrZeroAmount):
			utils.Error(ctx, http.StatusBadRequest, 40020, "amount cannot be zero")
		case errors.Is(err, services.ErrUserNotFound):
			utils.Error(ctx, http.StatusNotFound, 40410, "user not found")
		default:
			utils.Sugar.Errorw("ledger append failed", "user_id", req.UserID, "err", err)
			utils.Error(ctx, http.StatusInternalServerError, 50020, "failed to record points")
		}
		return
	}

	utils.Success(ctx, entry)
}

// Total returns the user's running balance.
func (p *PointController) Total(ctx *gin.Context) {
	userID, ok := queryUserID(ctx)
	if !ok {
		return
	}

	total, err := p.svc.Total(ctx.Request.Context(), userID)
	if err != nil {
		utils.Sugar.Errorw("ledger total failed", "user_id", userID, "err", err)
		utils.Error(ctx, http.StatusInternalServerError, 50021, "failed to load total")
		return
	}

	utils.Success(ctx, gin.H{"user_id": userID, "total": total})
}

// History returns one page of ledger entries, newest first.
func (p *PointController) History(ctx *gin.Context) {
	userID, ok := queryUserID(ctx)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))

	history, err := p.svc.History(ctx.Request.Context(), userID, page, size)
	if err != nil {
		utils.Sugar.Errorw("ledger history failed", "user_id", userID, "err", err)
		utils.Error(ctx, http.StatusInternalServerError, 50022, "failed to load history")
		return
	}

	utils.Success(ctx, history)
}
