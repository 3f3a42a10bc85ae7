package handler

import (
	"net/http"
	"strconv"
	"strings"

	"bakery/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// errInvalidParam is returned for malformed path and query parameters.
var errInvalidParam = echo.NewHTTPError(http.StatusBadRequest, "Invalid request parameter")

// parseID reads the positive integer path parameter "id".
func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.WithStack(errInvalidParam)
	}

	return id, nil
}

// parsePage reads page, size and sort query parameters. Sort fields are
// comma separated, a leading "-" sorts descending: ?sort=-dueDate,id
func parsePage(c echo.Context) (repository.PageRequest, error) {
	var page repository.PageRequest

	if raw := c.QueryParam("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return page, errors.WithStack(errInvalidParam)
		}
		page.Page = n
	}
	if raw := c.QueryParam("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return page, errors.WithStack(errInvalidParam)
		}
		page.Size = n
	}
	for field := range strings.SplitSeq(c.QueryParam("sort"), ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		desc := strings.HasPrefix(field, "-")
		page.Sort = append(page.Sort, repository.SortOrder{Field: strings.TrimPrefix(field, "-"), Descending: desc})
	}

	return page.Normalize(), nil
}

// parseOptionalInt reads an integer query parameter, returning def when absent.
func parseOptionalInt(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.WithStack(errInvalidParam)
	}

	return n, nil
}
