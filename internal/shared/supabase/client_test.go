package supabase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

const testKey = "chave-teste"

func newTestServer(t *testing.T, multiplasStatus int, multiplasBody string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("apikey") != testKey {
			t.Errorf("header apikey = %q, esperado %q", r.Header.Get("apikey"), testKey)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer "+testKey {
			t.Errorf("header Authorization = %q", got)
		}

		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasPrefix(r.URL.Path, "/rest/v1/individuais"):
			if r.URL.Query().Get("order") != "value_expected.desc" {
				t.Errorf("individuais sem ordenação por VE: %q", r.URL.RawQuery)
			}
			w.Write([]byte(`[{"id":1,"match":"Flamengo x Palmeiras","value_expected":0.5,"probabilidade":0.82,"odd":1.95}]`))
		case strings.HasPrefix(r.URL.Path, "/rest/v1/multiplas"):
			w.WriteHeader(multiplasStatus)
			w.Write([]byte(multiplasBody))
		case strings.HasPrefix(r.URL.Path, "/rest/v1/surebets"):
			w.Write([]byte(`[{"match":"Corinthians x Santos","lucro_pct":2.4}]`))
		default:
			t.Errorf("rota inesperada: %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestFetchBetsSuccess(t *testing.T) {
	srv := newTestServer(t, http.StatusOK,
		`[{"id":2,"odd_total":4.3,"probabilidade":0.72,"valor_esperado":0.42,"jogos":"[{\"jogo\":\"A x B\",\"aposta\":\"1x2\",\"odd\":1.4}]"}]`)
	defer srv.Close()

	c := New(srv.URL, testKey, zap.NewNop())
	p, err := c.FetchBets(context.Background())
	if err != nil {
		t.Fatalf("FetchBets: %v", err)
	}

	if len(p.Individual) != 1 || len(p.Multiple) != 1 || len(p.Surebets) != 1 {
		t.Fatalf("coleções = %d/%d/%d, esperado 1/1/1",
			len(p.Individual), len(p.Multiple), len(p.Surebets))
	}
	if p.Multiple[0].Legs[0].Match != "A x B" {
		t.Errorf("perna decodificada = %+v", p.Multiple[0].Legs)
	}
	// defaults de fronteira aplicados na busca
	if got := p.Individual[0].House; got != "betano" {
		t.Errorf("casa default = %q, esperado betano", got)
	}
	if got := p.Individual[0].Stake; got != "MÉDIO" {
		t.Errorf("stake default = %q, esperado MÉDIO", got)
	}
}

// Uma coleção falhando derruba a operação inteira: nada parcial.
func TestFetchBetsAllOrNothing(t *testing.T) {
	srv := newTestServer(t, http.StatusInternalServerError, `{"message":"boom"}`)
	defer srv.Close()

	c := New(srv.URL, testKey, zap.NewNop())
	p, err := c.FetchBets(context.Background())
	if err == nil {
		t.Fatal("esperado erro quando multiplas falha")
	}
	if p != nil {
		t.Errorf("payload parcial devolvido: %+v", p)
	}
	if !strings.Contains(err.Error(), "multiplas") {
		t.Errorf("erro não aponta a coleção: %v", err)
	}
}

// "jogos" malformado descarta só o registro; o lote segue.
func TestFetchBetsSkipsBadLegs(t *testing.T) {
	srv := newTestServer(t, http.StatusOK,
		`[{"id":1,"valor_esperado":0.4,"jogos":"{quebrado"},{"id":2,"valor_esperado":0.3,"jogos":"[]"}]`)
	defer srv.Close()

	c := New(srv.URL, testKey, zap.NewNop())
	p, err := c.FetchBets(context.Background())
	if err != nil {
		t.Fatalf("FetchBets: %v", err)
	}
	if len(p.Multiple) != 1 {
		t.Fatalf("múltiplas mantidas = %d, esperado 1", len(p.Multiple))
	}
	if got := string(p.Multiple[0].ID); got != "2" {
		t.Errorf("registro mantido = %q, esperado o id 2", got)
	}
}

// Sem URL/chave o cliente devolve o catálogo de exemplo, não erro.
func TestFetchBetsExampleMode(t *testing.T) {
	c := New("", "", zap.NewNop())
	if c.Configured() {
		t.Fatal("cliente vazio não deveria constar como configurado")
	}
	p, err := c.FetchBets(context.Background())
	if err != nil {
		t.Fatalf("modo exemplo não pode falhar: %v", err)
	}
	if len(p.Individual) == 0 {
		t.Error("catálogo de exemplo vazio")
	}
}
