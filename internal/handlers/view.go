package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"targetrack/internal/filter"
	"targetrack/internal/pagination"
)

// ViewResponse is one page of a filtered list together with the filter
// state that produced it. Filters.Page is the page actually served, after
// clamping into range.
type ViewResponse[T any] struct {
	pagination.PageResponse[T]
	Filters filter.State `json:"filters"`
}

// bindView reads the filter state from the query string. On failure it has
// already written the error response.
func bindView(c *gin.Context) (filter.State, bool) {
	state := filter.New()
	if err := c.ShouldBindQuery(&state); err != nil {
		respondWithBindError(c, err)
		return state, false
	}
	return state, true
}

func respondWithView[T any](c *gin.Context, items []T, pred filter.Predicate[T], state filter.State) {
	page, served := filter.Paginate(filter.Apply(items, pred), state)
	c.JSON(http.StatusOK, ViewResponse[T]{PageResponse: page, Filters: served})
}
