package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/radieske/bet-tips-dashboard-poc/internal/shared/cache"
	"github.com/radieske/bet-tips-dashboard-poc/internal/shared/config"
	skafka "github.com/radieske/bet-tips-dashboard-poc/internal/shared/kafka"
	"github.com/radieske/bet-tips-dashboard-poc/internal/shared/logger"
	"github.com/radieske/bet-tips-dashboard-poc/internal/shared/metrics"
	"github.com/radieske/bet-tips-dashboard-poc/internal/shared/supabase"
	"github.com/radieske/bet-tips-dashboard-poc/internal/tips-refresh/refresher"
	tcache "github.com/radieske/bet-tips-dashboard-poc/internal/tips-service/cache"
)

func main() {
	cfg := config.Load()
	log, err := logger.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Redis: destino do cache reaquecido
	rdb, err := cache.ConnectRedis(cfg.RedisAddr)
	if err != nil {
		log.Fatal("redis connect", zap.Error(err))
	}
	defer rdb.Close()

	// Consumer Kafka (consumer group tips-refresh)
	reader := skafka.NewReader(cfg.KafkaBrokers, cfg.TopicTipsUpdated, "tips-refresh")
	defer reader.Close()

	// Métricas Prometheus para monitoramento do reaquecimento
	consumed := prometheus.NewCounter(prometheus.CounterOpts{Name: "tips_refresh_messages_consumed_total", Help: "mensagens consumidas"})
	refreshed := prometheus.NewCounter(prometheus.CounterOpts{Name: "tips_refresh_cache_sets_total", Help: "reaquecimentos concluídos"})
	errorsBy := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "tips_refresh_errors_total", Help: "erros por estágio"}, []string{"stage"})
	prometheus.MustRegister(consumed, refreshed, errorsBy)

	cloud := supabase.New(cfg.SupabaseURL, cfg.SupabaseAnonKey, log)

	proc := &refresher.Refresher{
		Log:          log,
		Reader:       reader,
		Fetcher:      cloud,
		Cache:        tcache.New(rdb),
		CacheTTL:     cfg.TipsCacheTTL,
		FetchTimeout: cfg.FetchTimeout,
		OnConsumed:   func() { consumed.Inc() },
		OnRefreshed:  func() { refreshed.Inc() },
		OnError:      func(stage string) { errorsBy.WithLabelValues(stage).Inc() },
	}

	metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		return nil
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// aquece o cache na subida, antes do primeiro evento
	if err := proc.RefreshOnce(ctx); err != nil {
		log.Warn("aquecimento inicial falhou", zap.Error(err))
	}

	log.Info("tips-refresh-worker consuming", zap.String("topic", cfg.TopicTipsUpdated))
	if err := proc.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatal("consumer", zap.Error(err))
	}
}
