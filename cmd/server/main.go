package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/clara-app/clara-server/internal/config"
	"github.com/clara-app/clara-server/internal/database"
	"github.com/clara-app/clara-server/internal/handler"
	"github.com/clara-app/clara-server/internal/queue"
	"github.com/clara-app/clara-server/internal/repository"
	"github.com/clara-app/clara-server/internal/router"
	queue_publisher "github.com/clara-app/clara-server/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer func() { _ = db.Close() }()

	// Redis is optional: nil disables rate limiting and caching.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; rate limiting and caching disabled")
	}

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	profiles := repository.NewProfileRepo(db)
	articles := repository.NewArticleRepo(db)
	pins := repository.NewPinRepo(db)
	flags := repository.NewFlagRepo(db)

	h := router.Handlers{
		Auth:      handler.NewAuthHandler(cfg, users, tokens, profiles),
		Articles:  handler.NewArticleHandler(articles, pins, flags, profiles, queue_publisher.PublishArticleFlagged),
		Dashboard: handler.NewDashboardHandler(profiles, articles, pins),
	}

	// Moderation consumer runs for the process lifetime and survives
	// broker outages on its own.
	go func() {
		if err := queue.StartFlagConsumer(); err != nil {
			log.Printf("flag-consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.HideBanner = true
	router.Register(e, h, cfg, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
