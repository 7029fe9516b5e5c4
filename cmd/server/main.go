package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"btc-pulse/internal/bot"
	"btc-pulse/internal/cache"
	"btc-pulse/internal/classifier"
	"btc-pulse/internal/collector"
	"btc-pulse/internal/config"
	"btc-pulse/internal/decision"
	"btc-pulse/internal/handler"
	"btc-pulse/internal/processor"
	"btc-pulse/internal/provider"
	"btc-pulse/internal/service"
	"btc-pulse/internal/store"
	"btc-pulse/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	_ "btc-pulse/docs"
)

var (
	loadEnvFunc          = godotenv.Load
	loadConfigFunc       = config.Load
	connectRedisFunc     = cache.Connect
	initTracerFunc       = tracing.InitTracer
	startTelegramBotFunc = func(token string, analysis *service.AnalysisService) {
		bot.StartTelegramBot(token, analysis)
	}
	newRouterFunc          = gin.Default
	setupSignalNotify      = signal.Notify
	waitForSignalFunc      = func(quit <-chan os.Signal) { <-quit }
	startHTTPServerFunc    = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownHTTPServerFunc = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
)

// @title           BTC Pulse API
// @version         1.0
// @description     Bitcoin price and news sentiment analysis service.

// @host      localhost:8080
// @BasePath  /
func main() {
	loadEnvFunc()

	cfg := loadConfigFunc()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Report caching is optional: a missing or unreachable Redis only
	// costs repeat requests the cache, never startup.
	var cacheClient service.RedisClient
	if redisClient, err := connectRedisFunc(ctx, cfg.RedisURL); err != nil {
		log.Printf("Warning: %v, report caching disabled", err)
	} else if redisClient != nil {
		cacheClient = redisClient
	}

	tp, tracer, err := initTracerFunc(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("error shutting down tracer provider: %v", err)
		}
	}()

	prices := store.NewPriceStore()
	news := store.NewNewsStore()

	// Price sources in fallback order; the synthetic generator at the end
	// cannot fail.
	priceSources := []collector.PriceSource{
		provider.NewCoinGecko(tracer),
		provider.NewBinance(tracer),
		provider.NewCoinCap(tracer),
		provider.NewSynthetic(),
	}

	var newsSources []collector.NewsSource
	if cfg.NewsAPIKey != "" {
		newsAPI, err := provider.NewNewsAPI(tracer, cfg.NewsAPIURL, cfg.NewsAPIKey, cfg.BitcoinKeywords, cfg.MaxArticles)
		if err != nil {
			log.Fatalf("failed to build NewsAPI source: %v", err)
		}
		newsSources = append(newsSources, newsAPI)
	}
	rss, err := provider.NewRSSFeeds(tracer, cfg.RSSFeeds, cfg.BitcoinKeywords, cfg.MaxArticles)
	if err != nil {
		log.Fatalf("failed to build RSS source: %v", err)
	}
	newsSources = append(newsSources, rss)

	sentiment := classifier.WithFallback(
		classifier.NewHuggingFace(tracer, cfg.HuggingFaceURL, cfg.HuggingFaceKey),
		classifier.NewLexicon(),
	)

	analysisService := service.NewAnalysisService(
		tracer,
		collector.New(tracer, prices, news, priceSources, newsSources),
		processor.New(tracer, prices, news, sentiment, cfg.MaxConcurrent),
		decision.New(tracer, prices, news),
		service.NewPeriod(),
		cacheClient,
	)

	startTelegramBotFunc(cfg.TelegramBotToken, analysisService)

	h := handler.New(tracer, analysisService)

	r := newRouterFunc()
	r.Use(otelgin.Middleware("btc-pulse"))

	h.RegisterRoutes(r)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: r,
	}

	go func() {
		if err := startHTTPServerFunc(srv); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	log.Println("Shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := shutdownHTTPServerFunc(srv, shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
