package handler

import (
	"net/http"
	"strings"
	"time"

	"fintrack/internal/report"
	"fintrack/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ReportHandler exposes the aggregation engine: ranged statistics and
// the unranged overall net worth.
type ReportHandler struct {
	Reports *report.Service
}

func NewReportHandler(db *gorm.DB) *ReportHandler {
	return &ReportHandler{Reports: report.NewService(db)}
}

// GetStatistics serves the reportStatistics operation:
// ?range=day|week|month|quarter|year and optional ?date= reference day.
func (h *ReportHandler) GetStatistics(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	rng, err := report.ParseRange(strings.ToLower(c.DefaultQuery("range", string(report.RangeMonth))))
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "range must be day, week, month, quarter or year")
		return
	}

	ref := time.Now()
	if s := c.Query("date"); s != "" {
		t, err := util.ParseDateTime(s)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid date")
			return
		}
		ref = t
	}

	stats, err := h.Reports.Statistics(user.ID, rng, ref)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "build report failed")
		return
	}

	util.Success(c, util.Response{
		"statistics": stats,
	})
}

// GetOverall serves the overallTotalValue operation: totals over every
// transaction ever recorded plus current asset value.
func (h *ReportHandler) GetOverall(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}

	overall, err := h.Reports.OverallTotalValue(user.ID)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "build report failed")
		return
	}

	util.Success(c, util.Response{
		"overall": overall,
	})
}
