package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/oohyj/pointsync/models"
	"github.com/oohyj/pointsync/services"
	"github.com/oohyj/pointsync/utils"
)

// AttendanceController handles check-in, calendar and summary endpoints.
type AttendanceController struct {
	svc *services.AttendanceService
}

// NewAttendanceController creates a new controller instance.
func NewAttendanceController(svc *services.AttendanceService) *AttendanceController {
	return &AttendanceController{svc: svc}
}

// CheckIn records today's attendance for the given user. Safe to repeat:
// later calls the same day return the same state with today_point = 0.
func (a *AttendanceController) CheckIn(ctx *gin.Context) {
	userID, ok := queryUserID(ctx)
	if !ok {
		return
	}

	result, err := a.svc.CheckIn(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.Error(ctx, http.StatusNotFound, 40410, "user not found")
			return
		}
		utils.Sugar.Errorw("check-in failed", "user_id", userID, "err", err)
		utils.Error(ctx, http.StatusInternalServerError, 50010, "failed to record check-in")
		return
	}

	utils.Success(ctx, result)
}

// Calendar returns the user's attended dates within [from, to].
func (a *AttendanceController) Calendar(ctx *gin.Context) {
	userID, ok := queryUserID(ctx)
	if !ok {
		return
	}

	from, err := models.ParseDate(ctx.Query("from"))
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40002, "from must be formatted as 2006-01-02")
		return
	}
	to, err := models.ParseDate(ctx.Query("to"))
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40002, "to must be formatted as 2006-01-02")
		return
	}

	dates, err := a.svc.GetCalendar(ctx.Request.Context(), userID, from, to)
	if err != nil {
		if errors.Is(err, services.ErrInvalidRange) {
			utils.Error(ctx, http.StatusBadRequest, 40010, "from must not be after to")
			return
		}
		utils.Sugar.Errorw("calendar query failed", "user_id", userID, "err", err)
		utils.Error(ctx, http.StatusInternalServerError, 50011, "failed to load calendar")
		return
	}

	utils.Success(ctx, gin.H{"user_id": userID, "dates": dates})
}

// Summary returns today's attendance flag, total points and streaks.
func (a *AttendanceController) Summary(ctx *gin.Context) {
	userID, ok := queryUserID(ctx)
	if !ok {
		return
	}

	result, err := a.svc.GetSummary(ctx.Request.Context(), userID)
	if err != nil {
		utils.Sugar.Errorw("summary failed", "user_id", userID, "err", err)
		utils.Error(ctx, http.StatusInternalServerError, 50012, "failed to load summary")
		return
	}

	utils.Success(ctx, result)
}

// queryUserID parses the user_id query parameter, writing a 400 on failure.
func queryUserID(ctx *gin.Context) (uint, bool) {
	raw := ctx.Query("user_id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		utils.Error(ctx, http.StatusBadRequest, 40001, "user_id must be a positive integer")
		return 0, false
	}
	return uint(id), true
}
