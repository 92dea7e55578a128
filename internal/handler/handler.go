package handler

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/user/flicks/internal/config"
	"github.com/user/flicks/internal/model"
	"github.com/user/flicks/internal/service"
	"github.com/user/flicks/internal/utils"
)

const maxRecentSearches = 5

// Handler serves the HTML pages and the JSON API.
type Handler struct {
	Service service.MovieService
	Reviews *service.ReviewService
	Config  *config.Config
}

// NewHandler wires the handler to its services and configuration.
func NewHandler(svc service.MovieService, reviews *service.ReviewService, cfg *config.Config) *Handler {
	return &Handler{
		Service: svc,
		Reviews: reviews,
		Config:  cfg,
	}
}

// RenderData merges the common template data with page-specific data.
func (h *Handler) RenderData(c *gin.Context, data gin.H) gin.H {
	res := gin.H{
		"SiteName": h.Config.SiteName,
		"SiteUrl":  h.Config.SiteUrl,
		"Path":     c.Request.URL.Path,
	}
	for k, v := range data {
		res[k] = v
	}
	return res
}

// Home redirects to the catalog listing.
func (h *Handler) Home(c *gin.Context) {
	c.Redirect(http.StatusFound, "/movies")
}

// Movies renders the catalog listing. With any non-trivial name/id/genre
// query parameter it becomes a search results page; otherwise it shows the
// full catalog. A non-positive id does not count as a search here — only the
// JSON API rejects it.
func (h *Handler) Movies(c *gin.Context) {
	name := c.Query("name")
	genre := c.Query("genre")
	var id int64
	if raw := c.Query("id"); raw != "" {
		id, _ = strconv.ParseInt(raw, 10, 64)
	}

	log.Printf("fetching movies, name=%q id=%d genre=%q", name, id, genre)

	isSearch := strings.TrimSpace(name) != "" || id > 0 || strings.TrimSpace(genre) != ""

	data := gin.H{
		"Title":       h.Config.SiteName + " - Movie Catalog",
		"SearchName":  name,
		"SearchID":    c.Query("id"),
		"SearchGenre": genre,
	}

	var movies []model.Movie
	if isSearch {
		movies = h.Service.Search(model.SearchCriteria{Name: name, ID: id, Genre: genre})
		data["SearchPerformed"] = true
		data["ResultCount"] = len(movies)
		h.rememberSearch(c,
			model.RecentSearch{Param: "name", Term: name},
			model.RecentSearch{Param: "genre", Term: genre},
		)
	} else {
		movies = h.Service.GetAll()
		data["SearchPerformed"] = false
	}

	data["Movies"] = movies
	data["AllGenres"] = h.Service.AllGenres()
	data["RecentSearches"] = h.recentSearches(c)

	c.HTML(http.StatusOK, "movies.html", h.RenderData(c, data))
}

// MovieDetails renders the detail page for one movie, with its icon and
// reviews. The aggregated page data is cached per movie since the catalog
// never changes.
func (h *Handler) MovieDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.renderNotFound(c, c.Param("id"))
		return
	}

	cacheKey := "movie_details:" + strconv.FormatInt(id, 10)
	if cached, found := utils.CacheGet(cacheKey); found {
		if data, ok := cached.(gin.H); ok {
			c.HTML(http.StatusOK, "movie-details.html", h.RenderData(c, data))
			return
		}
	}

	movie, ok := h.Service.GetByID(id)
	if !ok {
		log.Printf("movie %d not found", id)
		h.renderNotFound(c, c.Param("id"))
		return
	}

	data := gin.H{
		"Title":     movie.MovieName + " - " + h.Config.SiteName,
		"Movie":     movie,
		"MovieIcon": utils.MovieIcon(movie.MovieName, movie.Genre),
		"Reviews":   h.Reviews.ReviewsFor(movie.ID),
	}
	utils.CacheSet(cacheKey, data, 1*time.Hour)

	c.HTML(http.StatusOK, "movie-details.html", h.RenderData(c, data))
}

func (h *Handler) renderNotFound(c *gin.Context, id string) {
	c.HTML(http.StatusNotFound, "error.html", h.RenderData(c, gin.H{
		"Title":   "Movie Not Found - " + h.Config.SiteName,
		"Heading": "Movie Not Found",
		"Message": "Movie with ID " + id + " was not found.",
	}))
}

// rememberSearch keeps the latest search terms in the cookie session, most
// recent first, without duplicates. Each term keeps its query parameter so
// a remembered genre replays as a genre search, not a name search.
func (h *Handler) rememberSearch(c *gin.Context, terms ...model.RecentSearch) {
	session := sessions.Default(c)
	recent, _ := session.Get("recent_searches").([]model.RecentSearch)

	for _, term := range terms {
		term.Term = strings.TrimSpace(term.Term)
		if term.Term == "" {
			continue
		}
		next := make([]model.RecentSearch, 0, len(recent)+1)
		next = append(next, term)
		for _, old := range recent {
			if old.Param != term.Param || !strings.EqualFold(old.Term, term.Term) {
				next = append(next, old)
			}
		}
		recent = next
	}
	if len(recent) > maxRecentSearches {
		recent = recent[:maxRecentSearches]
	}

	session.Set("recent_searches", recent)
	if err := session.Save(); err != nil {
		log.Printf("saving session failed: %v", err)
	}
}

func (h *Handler) recentSearches(c *gin.Context) []model.RecentSearch {
	session := sessions.Default(c)
	recent, _ := session.Get("recent_searches").([]model.RecentSearch)
	return recent
}
