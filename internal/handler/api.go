package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/user/flicks/internal/model"
	"github.com/user/flicks/internal/utils"
)

// SearchQuery binds the /api/movies/search query parameters. The length caps
// keep absurd query strings out of the filter and the search cache.
type SearchQuery struct {
	Name  string `form:"name" binding:"omitempty,max=100"`
	ID    *int64 `form:"id"`
	Genre string `form:"genre" binding:"omitempty,max=100"`
}

// SearchAPI is the JSON search endpoint. A supplied id must be positive —
// anything else is a 400 before the service is consulted. No matches is a
// 200 with an empty array, never an error.
func (h *Handler) SearchAPI(c *gin.Context) {
	var q SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			utils.BadRequest(c, "invalid search parameters: "+verrs[0].Field())
			return
		}
		utils.BadRequest(c, "invalid search parameters")
		return
	}

	criteria := model.SearchCriteria{Name: q.Name, Genre: q.Genre}
	if q.ID != nil {
		if *q.ID <= 0 {
			log.Printf("invalid movie id in search: %d", *q.ID)
			utils.BadRequest(c, "id must be a positive integer")
			return
		}
		criteria.ID = *q.ID
	}

	results := h.Service.Search(criteria)
	log.Printf("api search returned %d results", len(results))

	c.JSON(http.StatusOK, results)
}

// MoviesAPI returns the full catalog.
func (h *Handler) MoviesAPI(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.GetAll())
}

// MovieAPI returns a single movie by id.
func (h *Handler) MovieAPI(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		utils.BadRequest(c, "id must be a positive integer")
		return
	}

	movie, ok := h.Service.GetByID(id)
	if !ok {
		utils.NotFound(c, "movie not found")
		return
	}

	c.JSON(http.StatusOK, movie)
}

// GenresAPI returns the sorted distinct genre labels.
func (h *Handler) GenresAPI(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.AllGenres())
}
