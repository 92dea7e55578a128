package main

import (
	"context"
	"encoding/gob"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/user/flicks/internal/catalog"
	"github.com/user/flicks/internal/config"
	"github.com/user/flicks/internal/handler"
	"github.com/user/flicks/internal/middleware"
	"github.com/user/flicks/internal/model"
	"github.com/user/flicks/internal/router"
	"github.com/user/flicks/internal/service"
	"github.com/user/flicks/internal/utils"
)

func main() {
	// recent searches are stored in the cookie session
	gob.Register([]model.RecentSearch{})

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment")
	}

	cfg := config.Load()

	// The catalog is loaded once and never mutated afterwards, so every
	// request can read it without coordination.
	cat, err := catalog.Load(cfg.MoviesDataFile)
	if err != nil {
		log.Fatalf("loading movie catalog failed: %v", err)
	}
	log.Printf("loaded %d movies, %d genres", cat.Len(), len(cat.Genres()))

	reviews, err := catalog.LoadReviews(cfg.ReviewsDataFile)
	if err != nil {
		log.Fatalf("loading reviews failed: %v", err)
	}

	utils.InitCache()

	movieService := service.NewMovieService(cat, cfg.SearchCacheSize, cfg.SearchCacheTTL)
	reviewService := service.NewReviewService(reviews)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.Use(gzip.Gzip(gzip.DefaultCompression))

	store := cookie.NewStore([]byte(cfg.AppSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("flicks_session", store))

	r.HTMLRender = router.LoadTemplates("./web/templates")
	r.Static("/static", "./web/static")

	r.Use(middleware.Logger())
	r.Use(middleware.Security())
	r.Use(middleware.CORS())

	h := handler.NewHandler(movieService, reviewService, cfg)
	router.RegisterRoutes(r, h)

	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Printf("server listening on http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shut down:", err)
	}

	log.Println("server exited")
}
