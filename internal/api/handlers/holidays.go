package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thumbert/bust-sub001/internal/api/models"
	"github.com/thumbert/bust-sub001/internal/calendar"
	"github.com/thumbert/bust-sub001/internal/holiday"
)

// ListHolidays handles GET /api/v1/holidays?year=2022. The year defaults to
// the current one.
func ListHolidays(c *gin.Context) {
	var req models.HolidaysRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondError(c, http.StatusBadRequest, models.CodeInvalidParam, "year must be an integer", nil)
		return
	}
	if req.Year == 0 {
		req.Year = time.Now().Year()
	}
	if req.Year < calendar.MinYear || req.Year > calendar.MaxYear {
		respondError(c, http.StatusBadRequest, models.CodeInvalidParam,
			fmt.Sprintf("year %d is outside %d-%d", req.Year, calendar.MinYear, calendar.MaxYear), nil)
		return
	}

	observed := holiday.Observed(req.Year)
	out := make([]models.HolidayInfo, len(observed))
	for i, h := range observed {
		out[i] = models.HolidayInfo{
			Name:    h.Name,
			Date:    h.Date.String(),
			Weekday: h.Date.Weekday().String(),
			Actual:  h.Actual.String(),
			Shifted: h.Shifted,
		}
	}
	c.JSON(http.StatusOK, models.HolidaysResponse{Year: req.Year, Holidays: out})
}
