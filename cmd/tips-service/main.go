package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	sharedcache "github.com/radieske/bet-tips-dashboard-poc/internal/shared/cache"
	"github.com/radieske/bet-tips-dashboard-poc/internal/shared/config"
	"github.com/radieske/bet-tips-dashboard-poc/internal/shared/db"
	"github.com/radieske/bet-tips-dashboard-poc/internal/shared/logger"
	"github.com/radieske/bet-tips-dashboard-poc/internal/shared/metrics"
	"github.com/radieske/bet-tips-dashboard-poc/internal/shared/supabase"
	tcache "github.com/radieske/bet-tips-dashboard-poc/internal/tips-service/cache"
	thttp "github.com/radieske/bet-tips-dashboard-poc/internal/tips-service/http"
	"github.com/radieske/bet-tips-dashboard-poc/internal/tips-service/loader"
	"github.com/radieske/bet-tips-dashboard-poc/internal/tips-service/render"
	"github.com/radieske/bet-tips-dashboard-poc/internal/tips-service/repo"
	"github.com/radieske/bet-tips-dashboard-poc/internal/tips-service/session"
)

func main() {
	cfg := config.Load()
	log, _ := logger.New(cfg.ServiceName, cfg.Env)
	defer log.Sync()

	// Postgres (users / pending_users)
	pg, err := db.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("pg", zap.Error(err))
	}
	defer pg.Close()

	// Redis (sessões + cache do dashboard)
	rdb, err := sharedcache.ConnectRedis(cfg.RedisAddr)
	if err != nil {
		log.Fatal("redis", zap.Error(err))
	}
	defer rdb.Close()

	// deps
	users := repo.NewPostgres(pg)
	sessions := session.NewStore(rdb, cfg.SessionTTL)
	cloud := supabase.New(cfg.SupabaseURL, cfg.SupabaseAnonKey, log)
	if !cloud.Configured() {
		log.Warn("SUPABASE_URL/SUPABASE_ANON_KEY ausentes, dashboard em modo exemplo")
	}
	tipsLoader := &loader.Loader{
		Log:     log,
		Fetcher: cloud,
		Cache:   tcache.New(rdb),
		TTL:     cfg.TipsCacheTTL,
		Timeout: cfg.FetchTimeout,
	}

	origins := strings.Split(cfg.AllowedOrigins, ",")
	api := thttp.NewServer(log, users, sessions, tipsLoader, render.New(), origins, cfg.SessionTTL)

	apiSrv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: api.Router(),
	}

	// metrics/health em porta separada
	metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		if err := pg.PingContext(ctx); err != nil {
			return fmt.Errorf("pg: %w", err)
		}
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		return nil
	})

	log.Info("tips-service listening", zap.String("addr", apiSrv.Addr))
	if err := apiSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("api", zap.Error(err))
	}
}
