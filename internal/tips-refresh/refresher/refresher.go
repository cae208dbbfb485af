package refresher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/radieske/bet-tips-dashboard-poc/internal/shared/classifier"
	"github.com/radieske/bet-tips-dashboard-poc/pkg/contracts/events"
	"github.com/radieske/bet-tips-dashboard-poc/pkg/contracts/tips"
)

type Fetcher interface {
	FetchBets(ctx context.Context) (*tips.Payload, error)
}

type Cache interface {
	SetDashboard(ctx context.Context, v any, ttl time.Duration) error
}

// Reader é satisfeito por *kafka.Reader
type Reader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// Refresher consome eventos tips_updated e reaquece o cache do dashboard:
// busca as três coleções, classifica e regrava. O tips-service só enxerga
// cache quente ou busca própria, nunca estado intermediário.
// Callbacks de métricas podem ser usadas para monitoramento de cada etapa
type Refresher struct {
	Log     *zap.Logger
	Reader  Reader
	Fetcher Fetcher
	Cache   Cache

	CacheTTL     time.Duration
	FetchTimeout time.Duration

	OnConsumed  func()       // métricas (counter++)
	OnRefreshed func()       // métricas
	OnError     func(string) // métricas por fase
}

// Run inicia o loop principal de consumo e reaquecimento
func (r *Refresher) Run(ctx context.Context) error {
	for {
		m, err := r.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err() // encerra se o contexto for cancelado
			}
			r.Log.Warn("kafka read failed", zap.Error(err))
			if r.OnError != nil {
				r.OnError("read")
			}
			time.Sleep(500 * time.Millisecond)
			continue
		}

		if r.OnConsumed != nil {
			r.OnConsumed()
		}

		var ev events.TipsUpdated
		if err := json.Unmarshal(m.Value, &ev); err != nil {
			r.Log.Warn("invalid message", zap.Error(err))
			if r.OnError != nil {
				r.OnError("decode")
			}
			continue
		}
		r.Log.Info("palpites atualizados na nuvem",
			zap.String("source", ev.Source),
			zap.Strings("collections", ev.Collections),
		)

		if err := r.RefreshOnce(ctx); err != nil {
			r.Log.Warn("reaquecimento falhou", zap.Error(err))
			if r.OnError != nil {
				r.OnError("refresh")
			}
			continue
		}
		if r.OnRefreshed != nil {
			r.OnRefreshed()
		}
	}
}

// RefreshOnce refaz busca+classificação e regrava o cache (tudo-ou-nada;
// falha deixa o cache anterior intacto).
func (r *Refresher) RefreshOnce(ctx context.Context) error {
	timeout := r.FetchTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	p, err := r.Fetcher.FetchBets(ctx)
	if err != nil {
		return err
	}

	view := classifier.Classify(p.Individual, p.Multiple)
	d := &tips.Dashboard{Payload: *p, Top: view.Top, Safe: view.Safe}
	return r.Cache.SetDashboard(ctx, d, r.CacheTTL)
}
