package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Mallqui258/Automatizacion2/internal/models"
	"github.com/Mallqui258/Automatizacion2/internal/repositories"
	"github.com/Mallqui258/Automatizacion2/internal/services"
	"github.com/gin-gonic/gin"
)

func ParseStringIDParam(c *gin.Context, param string) string {
	idStr := c.Param(param)
	idStr = strings.TrimSpace(idStr)
	if idStr == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid " + param,
			Details: "ID cannot be empty",
			Code:    CodeValidationFailed,
		})
		return ""
	}
	return idStr
}

func parseIntQuery(c *gin.Context, param string, defaultValue int) int {
	valueStr := c.Query(param)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// parseSessionFilters reads the list query parameters. Paging is off unless
// limit (or size) is given; page is 1-based.
func parseSessionFilters(c *gin.Context) (repositories.SessionFilters, error) {
	filters := repositories.SessionFilters{
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	limit := parseIntQuery(c, "limit", parseIntQuery(c, "size", 0))
	if limit > 0 {
		filters.Limit = limit
		if page := parseIntQuery(c, "page", 0); page > 1 {
			filters.Offset = (page - 1) * limit
		}
	}
	if offset := parseIntQuery(c, "offset", 0); offset > 0 {
		filters.Offset = offset
	}

	if value := c.Query("sex"); value != "" {
		sex, err := models.ParseSex(value)
		if err != nil {
			return filters, err
		}
		filters.Sex = &sex
	}

	if value := c.Query("completed"); value != "" {
		completed, err := strconv.ParseBool(value)
		if err != nil {
			return filters, services.ValidationErrors{{Field: "completed", Message: "must be true or false", Value: value}}
		}
		filters.Completed = &completed
	}

	for _, param := range []struct {
		name string
		dest **time.Time
	}{
		{"date_from", &filters.DateFrom},
		{"date_to", &filters.DateTo},
	} {
		value := c.Query(param.name)
		if value == "" {
			continue
		}
		t, err := parseDate(value)
		if err != nil {
			return filters, services.ValidationErrors{{Field: param.name, Message: "must be an RFC 3339 timestamp or YYYY-MM-DD date", Value: value}}
		}
		*param.dest = &t
	}

	return filters, nil
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, value)
}
