package main

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/radieske/bet-tips-dashboard-poc/internal/shared/config"
	skafka "github.com/radieske/bet-tips-dashboard-poc/internal/shared/kafka"
	"github.com/radieske/bet-tips-dashboard-poc/internal/shared/logger"
	"github.com/radieske/bet-tips-dashboard-poc/internal/shared/metrics"
	"github.com/radieske/bet-tips-dashboard-poc/pkg/contracts/events"
	"github.com/radieske/bet-tips-dashboard-poc/pkg/contracts/tips"
)

var (
	// Métricas Prometheus para monitoramento do simulador
	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cloud_sim_http_requests_total",
		Help: "Requisições REST servidas por coleção",
	}, []string{"collection"})
	eventsPublished = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cloud_sim_tips_updated_published_total",
		Help: "Eventos tips_updated publicados",
	})
)

// multipleRow replica o formato que o Postgres da nuvem devolve:
// o campo "jogos" vem serializado como string JSON, não como array.
type multipleRow struct {
	ID            string  `json:"id"`
	TotalOdd      float64 `json:"odd_total"`
	Probability   float64 `json:"probabilidade"`
	ExpectedValue float64 `json:"valor_esperado"`
	Stake         string  `json:"stake"`
	Confidence    string  `json:"confianca"`
	Jogos         string  `json:"jogos"`
}

// catalog guarda o snapshot corrente das três coleções, regenerado
// a cada ciclo de publicação.
type catalog struct {
	mu         sync.RWMutex
	individual []tips.IndividualBet
	multiple   []multipleRow
	surebets   []tips.Surebet
}

// regenerate aplica jitter nos valores do payload de exemplo e reordena
// individuais por VE decrescente, como a query order=value_expected.desc faria.
func (c *catalog) regenerate() {
	base := tips.ExamplePayload()

	ind := base.Individual
	for i := range ind {
		ind[i].ExpectedValue = jitter(ind[i].ExpectedValue)
		ind[i].Probability = clamp(jitter(ind[i].Probability), 0.05, 0.98)
	}
	sort.SliceStable(ind, func(a, b int) bool {
		return ind[a].ExpectedValue > ind[b].ExpectedValue
	})

	mul := make([]multipleRow, 0, len(base.Multiple))
	for i := range base.Multiple {
		m := base.Multiple[i]
		legs, _ := json.Marshal(m.Legs)
		mul = append(mul, multipleRow{
			ID:            string(m.ID),
			TotalOdd:      m.TotalOdd,
			Probability:   clamp(jitter(m.Probability), 0.05, 0.98),
			ExpectedValue: jitter(m.ExpectedValue),
			Stake:         m.Stake,
			Confidence:    m.Confidence,
			Jogos:         string(legs),
		})
	}

	c.mu.Lock()
	c.individual = ind
	c.multiple = mul
	c.surebets = base.Surebets
	c.mu.Unlock()
}

func (c *catalog) handler(collection string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpRequests.WithLabelValues(collection).Inc()

		c.mu.RLock()
		var body any
		switch collection {
		case "individuais":
			body = c.individual
		case "multiplas":
			body = c.multiple
		case "surebets":
			body = c.surebets
		}
		c.mu.RUnlock()

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
	}
}

// desloca o valor em até ±15%
func jitter(v float64) float64 {
	return v * (0.85 + rand.Float64()*0.30)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func main() {
	cfg := config.Load()
	log, err := logger.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	rand.Seed(time.Now().UnixNano())

	prometheus.MustRegister(httpRequests, eventsPublished)

	cat := &catalog{}
	cat.regenerate()

	writer := skafka.NewWriter(cfg.KafkaBrokers, cfg.TopicTipsUpdated)
	defer writer.Close()

	// Regenera o catálogo e avisa os consumidores a cada ciclo
	go func() {
		ticker := time.NewTicker(cfg.PublishInterval)
		defer ticker.Stop()
		for range ticker.C {
			cat.regenerate()

			evt := events.TipsUpdated{
				Source:      cfg.ServiceName,
				Collections: []string{"individuais", "multiplas", "surebets"},
				UpdatedAt:   time.Now().UTC(),
			}
			payload, _ := json.Marshal(evt)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := skafka.WriteJSON(ctx, writer, evt.Source, payload); err != nil {
				log.Warn("kafka publish failed", zap.Error(err))
			} else {
				eventsPublished.Inc()
			}
			cancel()
		}
	}()

	appMux := http.NewServeMux()
	appMux.HandleFunc("/rest/v1/individuais", cat.handler("individuais"))
	appMux.HandleFunc("/rest/v1/multiplas", cat.handler("multiplas"))
	appMux.HandleFunc("/rest/v1/surebets", cat.handler("surebets"))

	metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		return nil
	})

	log.Info("cloud-simulator up",
		zap.String("http_port", cfg.HTTPPort),
		zap.String("topic", cfg.TopicTipsUpdated),
	)
	if err := http.ListenAndServe(":"+cfg.HTTPPort, appMux); err != nil {
		log.Fatal("http server", zap.Error(err))
	}
}
