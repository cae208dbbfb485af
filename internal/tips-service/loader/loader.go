package loader

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/radieske/bet-tips-dashboard-poc/internal/shared/classifier"
	"github.com/radieske/bet-tips-dashboard-poc/pkg/contracts/tips"
)

// Fetcher lê as três coleções da nuvem (tudo-ou-nada).
type Fetcher interface {
	FetchBets(ctx context.Context) (*tips.Payload, error)
}

// Cache é opcional; sem ele toda carga vai direto na nuvem.
type Cache interface {
	GetDashboard(ctx context.Context, dst any) (bool, error)
	SetDashboard(ctx context.Context, v any, ttl time.Duration) error
}

// Loader junta cache, data client e classificador. Gatilhos de refresh
// concorrentes são colapsados num único voo (singleflight): ninguém vê
// resultado de uma busca superada e nenhuma resposta atrasada sobrescreve
// uma mais nova.
type Loader struct {
	Log     *zap.Logger
	Fetcher Fetcher
	Cache   Cache
	TTL     time.Duration
	Timeout time.Duration

	sf singleflight.Group
}

// Load devolve o dashboard, preferencialmente do cache.
func (l *Loader) Load(ctx context.Context) (*tips.Dashboard, error) {
	if l.Cache != nil {
		var d tips.Dashboard
		if ok, err := l.Cache.GetDashboard(ctx, &d); err != nil {
			l.Log.Warn("leitura do cache falhou", zap.Error(err))
		} else if ok {
			return &d, nil
		}
	}
	return l.fly()
}

// Refresh ignora o cache e recomputa tudo (botão "analisar"); cada ciclo
// refaz busca+classificação do zero, sem estado intermediário.
func (l *Loader) Refresh(ctx context.Context) (*tips.Dashboard, error) {
	return l.fly()
}

func (l *Loader) fly() (*tips.Dashboard, error) {
	v, err, _ := l.sf.Do("dashboard", func() (any, error) {
		return l.rebuild()
	})
	if err != nil {
		return nil, err
	}
	return v.(*tips.Dashboard), nil
}

// rebuild roda com contexto próprio e prazo limitado: o voo é compartilhado
// entre chamadores e não pode morrer junto com a request de um deles, nem
// deixar a UI num "carregando" eterno.
func (l *Loader) rebuild() (*tips.Dashboard, error) {
	timeout := l.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	p, err := l.Fetcher.FetchBets(ctx)
	if err != nil {
		return nil, err
	}

	view := classifier.Classify(p.Individual, p.Multiple)
	d := &tips.Dashboard{Payload: *p, Top: view.Top, Safe: view.Safe}

	if l.Cache != nil {
		if err := l.Cache.SetDashboard(ctx, d, l.TTL); err != nil {
			l.Log.Warn("escrita do cache falhou", zap.Error(err))
		}
	}
	return d, nil
}
