package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"AdminBrowseAPI/internal/browse"
	"AdminBrowseAPI/internal/config"
	"AdminBrowseAPI/internal/countcache"
	"AdminBrowseAPI/internal/db"
	"AdminBrowseAPI/internal/handler"
	"AdminBrowseAPI/internal/logger"
	"AdminBrowseAPI/internal/resource"
	"AdminBrowseAPI/internal/router"
)

func main() {
	debugFlag := flag.Bool("d", false, "enable debug logging")
	flag.Parse()

	if err := logger.Init("."); err != nil {
		fmt.Fprintf(os.Stderr, "log init failed: %v\n", err)
		os.Exit(1)
	}
	logger.SetDebug(*debugFlag)

	cfg := config.LoadConfig()

	// PostgreSQL
	if err := db.InitPostgres(cfg.PostgresDSN); err != nil {
		logger.Error("postgres_init_failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	if err := db.InitReplica(cfg.ReplicaDSN); err != nil {
		logger.Error("replica_init_failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	logger.Info("postgres_connected", nil)

	// Redis для кэша счётчиков
	db.InitRedis(cfg.RedisAddr)
	if err := db.PingRedis(); err != nil {
		// кэш недоступен — работаем без него, промахи считаются живьём
		logger.Warn("redis_unavailable", map[string]any{"error": err.Error()})
	}

	// Реестр ресурсов
	if err := resource.InitRegistry(cfg.ResourcesDir); err != nil {
		logger.Error("registry_init_failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	logger.Info("resources_initialized", map[string]any{"count": len(resource.Registry)})

	// Фасад браузера
	coordinator := countcache.New(
		countcache.NewRedisStore(db.RDB),
		cfg.CountCache.Threshold,
		time.Duration(cfg.CountCache.TTLSeconds)*time.Second,
	)
	facade := browse.New(&browse.PgxExecutor{Primary: db.Pool, Replica: db.Replica}, coordinator)
	handler.Init(facade)

	// Маршруты и HTTP-сервер
	router.InitRoutes(cfg)
	logger.Info("server_start", map[string]any{"port": cfg.Port})
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		logger.Error("server_error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
