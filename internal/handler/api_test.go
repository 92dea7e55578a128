package handler_test

import (
	"encoding/gob"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/user/flicks/internal/catalog"
	"github.com/user/flicks/internal/config"
	"github.com/user/flicks/internal/handler"
	"github.com/user/flicks/internal/model"
	"github.com/user/flicks/internal/router"
	"github.com/user/flicks/internal/service"
	"github.com/user/flicks/internal/utils"
)

func init() {
	gob.Register([]model.RecentSearch{})
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		SiteName: "Flicks",
		SiteUrl:  "http://localhost",
	}

	cat, err := catalog.Load("")
	if err != nil {
		t.Fatalf("loading catalog: %v", err)
	}
	reviews, err := catalog.LoadReviews("")
	if err != nil {
		t.Fatalf("loading reviews: %v", err)
	}

	utils.InitCache()

	h := handler.NewHandler(
		service.NewMovieService(cat, 64, time.Minute),
		service.NewReviewService(reviews),
		cfg,
	)

	r := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("test_session", store))
	r.HTMLRender = router.LoadTemplates("../../web/templates")
	router.RegisterRoutes(r, h)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeMovies(t *testing.T, w *httptest.ResponseRecorder) []model.Movie {
	t.Helper()
	var movies []model.Movie
	if err := json.Unmarshal(w.Body.Bytes(), &movies); err != nil {
		t.Fatalf("decoding movie array: %v (body: %s)", err, w.Body.String())
	}
	return movies
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) utils.Response {
	t.Helper()
	var resp utils.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding envelope: %v (body: %s)", err, w.Body.String())
	}
	return resp
}

func TestSearchAPIByNameAndGenre(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, "/api/movies/search?name=the&genre=drama")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	movies := decodeMovies(t, w)
	if len(movies) != 2 {
		t.Fatalf("expected 2 movies, got %d", len(movies))
	}
	if movies[0].MovieName != "The Prison Escape" || movies[1].MovieName != "The Family Boss" {
		t.Errorf("unexpected results: %q, %q", movies[0].MovieName, movies[1].MovieName)
	}
}

func TestSearchAPINoMatchReturnsEmptyArray(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, "/api/movies/search?id=999")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for no matches, got %d", w.Code)
	}
	if body := w.Body.String(); body != "[]" {
		t.Errorf("expected empty JSON array, got %s", body)
	}
}

func TestSearchAPIRejectsNonPositiveID(t *testing.T) {
	r := newTestRouter(t)

	for _, url := range []string{
		"/api/movies/search?id=-1",
		"/api/movies/search?id=0",
	} {
		w := doRequest(t, r, url)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", url, w.Code)
			continue
		}
		resp := decodeEnvelope(t, w)
		if resp.Success {
			t.Errorf("%s: error envelope marked success", url)
		}
	}
}

func TestSearchAPIRejectsMalformedID(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, "/api/movies/search?id=abc")

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed id, got %d", w.Code)
	}
}

func TestSearchAPINoCriteriaReturnsAll(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, "/api/movies/search")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if movies := decodeMovies(t, w); len(movies) != 12 {
		t.Errorf("expected full catalog, got %d movies", len(movies))
	}
}

func TestMoviesAPIListsCatalog(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, "/api/movies")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if movies := decodeMovies(t, w); len(movies) != 12 {
		t.Errorf("expected 12 movies, got %d", len(movies))
	}
}

func TestMovieAPIDetail(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, "/api/movie/1")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var movie model.Movie
	if err := json.Unmarshal(w.Body.Bytes(), &movie); err != nil {
		t.Fatalf("decoding movie: %v", err)
	}
	if movie.MovieName != "The Prison Escape" {
		t.Errorf("got %q", movie.MovieName)
	}
}

func TestMovieAPINotFound(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, "/api/movie/999")

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if resp := decodeEnvelope(t, w); resp.Success {
		t.Error("error envelope marked success")
	}
}

func TestMovieAPIMalformedID(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, "/api/movie/abc")

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestGenresAPISorted(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, "/api/genres")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var genres []string
	if err := json.Unmarshal(w.Body.Bytes(), &genres); err != nil {
		t.Fatalf("decoding genres: %v", err)
	}
	if len(genres) == 0 {
		t.Fatal("expected genres")
	}
	for i := 1; i < len(genres); i++ {
		if genres[i-1] >= genres[i] {
			t.Errorf("genres not sorted/unique at %d: %v", i, genres)
		}
	}
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, "/health")

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}
