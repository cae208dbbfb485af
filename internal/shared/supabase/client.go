package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/radieske/bet-tips-dashboard-poc/pkg/contracts/tips"
)

// Client lê as coleções de palpites da interface REST da nuvem (Supabase).
// Sem URL/chave configuradas opera em modo exemplo: devolve o catálogo
// fixo pra manter o dashboard demonstrável (modo degradado, não é erro).
type Client struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
	Log     *zap.Logger
}

func New(baseURL, apiKey string, log *zap.Logger) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
		Log:     log,
	}
}

// Configured indica se a nuvem está parametrizada; a ausência de qualquer
// um dos dois valores ativa o modo exemplo.
func (c *Client) Configured() bool {
	return c.BaseURL != "" && c.APIKey != ""
}

// FetchBets busca as três coleções de forma concorrente, tudo-ou-nada:
// se qualquer leitura falhar a operação inteira falha, nada parcial sobe
// pro dashboard. Individuais já vêm ordenadas por VE decrescente.
func (c *Client) FetchBets(ctx context.Context) (*tips.Payload, error) {
	if !c.Configured() {
		c.Log.Info("nuvem não configurada, usando catálogo de exemplo")
		p := tips.ExamplePayload()
		return &p, nil
	}

	var (
		individual []tips.IndividualBet
		multiple   []tips.MultipleBet
		surebets   []tips.Surebet
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.read(ctx, "individuais", "select=*&order=value_expected.desc", &individual)
	})
	g.Go(func() error {
		return c.read(ctx, "multiplas", "select=*", &multiple)
	})
	g.Go(func() error {
		return c.read(ctx, "surebets", "select=*", &surebets)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range individual {
		individual[i].Normalize()
	}

	return &tips.Payload{
		Individual: individual,
		Multiple:   c.dropBadLegs(multiple),
		Surebets:   surebets,
	}, nil
}

// dropBadLegs aplica a política de decodificação do campo "jogos":
// registro malformado é descartado com log, o lote segue (log-and-skip).
func (c *Client) dropBadLegs(multiple []tips.MultipleBet) []tips.MultipleBet {
	kept := multiple[:0:0]
	for _, m := range multiple {
		if err := m.LegsErr(); err != nil {
			c.Log.Warn("registro de múltipla descartado",
				zap.String("id", string(m.ID)),
				zap.Error(err),
			)
			continue
		}
		kept = append(kept, m)
	}
	return kept
}

func (c *Client) read(ctx context.Context, collection, query string, dst any) error {
	url := fmt.Sprintf("%s/rest/v1/%s?%s", c.BaseURL, collection, query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", collection, err)
	}
	req.Header.Set("apikey", c.APIKey)
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	res, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", collection, err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 300 {
		return fmt.Errorf("%s: http %d", collection, res.StatusCode)
	}
	if err := json.NewDecoder(res.Body).Decode(dst); err != nil {
		return fmt.Errorf("%s: %w", collection, err)
	}
	return nil
}
