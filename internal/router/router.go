package router

import (
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-gonic/gin"

	"github.com/user/flicks/internal/handler"
)

// RegisterRoutes wires all routes to the handler.
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// HTML pages
	r.GET("/", h.Home)
	r.GET("/movies", h.Movies)
	r.GET("/movies/:id/details", h.MovieDetails)

	// JSON API
	api := r.Group("/api")
	{
		api.GET("/movies", h.MoviesAPI)
		api.GET("/movies/search", h.SearchAPI)
		api.GET("/movie/:id", h.MovieAPI)
		api.GET("/genres", h.GenresAPI)
	}
}

// LoadTemplates assembles the page templates with multitemplate so every
// page shares the layout and partials.
func LoadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		panic(err)
	}

	partials, err := filepath.Glob(templatesDir + "/partials/*.html")
	if err != nil {
		panic(err)
	}

	assemble := func(view string) []string {
		files := make([]string, 0, len(layouts)+len(partials)+1)
		files = append(files, layouts...)
		files = append(files, partials...)
		files = append(files, view)
		return files
	}

	funcMap := template.FuncMap{
		"dict": func(values ...interface{}) (map[string]interface{}, error) {
			if len(values)%2 != 0 {
				return nil, fmt.Errorf("invalid dict call")
			}
			dict := make(map[string]interface{}, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				key, ok := values[i].(string)
				if !ok {
					return nil, fmt.Errorf("dict keys must be strings")
				}
				dict[key] = values[i+1]
			}
			return dict, nil
		},
		"stars": func(rating float64) string {
			full := int(rating + 0.5)
			if full < 0 {
				full = 0
			}
			if full > 5 {
				full = 5
			}
			return strings.Repeat("★", full) + strings.Repeat("☆", 5-full)
		},
	}

	pages := []string{
		"movies", "movie-details", "error",
	}

	for _, page := range pages {
		viewPath := templatesDir + "/pages/" + page + ".html"
		r.AddFromFilesFuncs(page+".html", funcMap, assemble(viewPath)...)
	}

	return r
}
