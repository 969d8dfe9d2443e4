package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"career-quiz-service/internal/analysis"
	"career-quiz-service/internal/config"
	"career-quiz-service/internal/content"
	"career-quiz-service/internal/db"
	"career-quiz-service/internal/event"
	"career-quiz-service/internal/extractor"
	"career-quiz-service/internal/handlers"
	"career-quiz-service/internal/llm"
	"career-quiz-service/internal/repository"
	"career-quiz-service/internal/resolver"
	"career-quiz-service/internal/service"
	"career-quiz-service/internal/userclient"
	"career-quiz-service/internal/videosearch"
)

func main() {
	config.Load()
	cfg := config.AppConfig

	gin.SetMode(cfg.GinMode)
	db.InitMongo(cfg.MongoURI)
	database := db.Client.Database(cfg.MongoDatabase)

	// Best-effort event publisher; the service runs fine without it.
	var publisher *event.Publisher
	if cfg.RabbitMQURI != "" && cfg.RabbitMQExchange != "" {
		var err error
		publisher, err = event.NewPublisher(cfg.RabbitMQURI, cfg.RabbitMQExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, domain events will not be published")
	}

	quizRepo := repository.NewQuizRepository(database)
	contentRepo := repository.NewContentRepository(database)

	generator := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel)

	var videoSearcher videosearch.Searcher
	if cfg.YouTubeAPIKey != "" {
		yt, err := videosearch.NewYouTubeClient(context.Background(), cfg.YouTubeAPIKey)
		if err != nil {
			log.Printf("YouTube client unavailable, video recommendations disabled: %v", err)
		} else {
			videoSearcher = yt
		}
	} else {
		log.Println("YouTube API key not configured, video recommendations disabled")
	}

	var users *userclient.Client
	var validator handlers.TokenValidator
	if cfg.UserServiceURL != "" {
		users = userclient.New(cfg.UserServiceURL)
		validator = users
	} else {
		log.Println("User service not configured, tokens are parsed locally")
	}

	quizResolver := resolver.New(quizRepo)
	orchestrator := analysis.NewOrchestrator(generator)
	pipeline := content.NewPipeline(generator, videoSearcher)
	traitExtractor := extractor.New(extractor.DefaultTables())

	var rewards service.Rewarder
	if users != nil {
		rewards = users
	}
	quizService := service.NewQuizService(quizRepo, quizResolver, orchestrator, rewards, publisher)
	recommendationService := service.NewRecommendationService(
		quizResolver, orchestrator, pipeline, contentRepo, quizRepo, traitExtractor, publisher)

	quizHandler := handlers.NewQuizHandler(quizService)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationService)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "X-Session-ID", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "X-Session-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(handlers.Identity(validator, cfg.JWTSecret))

	api := r.Group("/api")
	{
		quiz := api.Group("/quiz")
		{
			quiz.POST("/generate", quizHandler.Generate)
			quiz.POST("/:id/submit", quizHandler.Submit)
			quiz.GET("/result", quizHandler.Result)
		}
		rec := api.Group("/recommendations")
		{
			rec.GET("", recommendationHandler.Bundle)
			rec.GET("/summary", recommendationHandler.Summary)
			rec.GET("/history", recommendationHandler.History)
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": cfg.ServiceName})
	})

	log.Printf("%s listening on :%s", cfg.ServiceName, cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
