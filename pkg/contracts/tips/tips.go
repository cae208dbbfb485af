package tips

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// FlexString aceita string ou número no JSON. Ids vindos do Postgres da
// nuvem chegam numéricos; registros antigos usam uuid em texto.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	// número fica na forma literal ("42", "7.5")
	*f = FlexString(data)
	return nil
}

// IndividualBet é uma linha da coleção "individuais".
// Probabilidade e value_expected já chegam validados do pipeline de IA.
type IndividualBet struct {
	ID            FlexString `json:"id"`
	Match         string     `json:"match"`
	League        string     `json:"league"`
	BetType       string     `json:"bet_type"`
	Probability   float64    `json:"probabilidade"`
	Odd           float64    `json:"odd"`
	House         string     `json:"casa_aposta"`
	ExpectedValue float64    `json:"value_expected"`
	Stake         string     `json:"stake"` // BAIXO | MÉDIO | ALTO
	Confidence    string     `json:"confidence"`
	Gender        string     `json:"genero"`
	Date          string     `json:"data"`
	Description   string     `json:"descricao"`
}

// Normalize aplica os defaults de fronteira para campos ausentes.
// Roda uma única vez no data client; o classificador nunca re-checa ausência.
func (b *IndividualBet) Normalize() {
	if b.ID == "" {
		b.ID = FlexString(uuid.NewString())
	}
	if b.Probability == 0 {
		b.Probability = 0.70
	}
	if b.House == "" {
		b.House = "betano"
	}
	if b.Stake == "" {
		b.Stake = "MÉDIO"
	}
	if b.Gender == "" {
		b.Gender = "M"
	}
	if b.Date == "" {
		b.Date = "HOJE"
	}
	if b.Description == "" {
		b.Description = "Análise da IA com VE positivo."
	}
}

// Leg é uma perna de uma aposta múltipla.
type Leg struct {
	Match   string  `json:"jogo"`
	BetType string  `json:"aposta"`
	Odd     float64 `json:"odd"`
}

// MultipleBet é uma linha da coleção "multiplas". O campo "jogos" chega
// serializado como string JSON e é decodificado via DecodeLegs; o valor
// esperado usa "valor_esperado" com fallback para "value_expected".
type MultipleBet struct {
	ID            FlexString `json:"id"`
	TotalOdd      float64    `json:"odd_total"`
	Probability   float64    `json:"probabilidade"`
	ExpectedValue float64    `json:"valor_esperado"`
	Stake         string     `json:"stake"`
	Confidence    string     `json:"confianca"`
	Legs          []Leg      `json:"jogos"`

	// legsErr registra falha de decodificação do "jogos"; o data client
	// decide a política (descarta o registro, nunca coage silenciosamente).
	legsErr error
}

// LegsErr devolve o erro de decodificação das pernas, se houve.
func (m *MultipleBet) LegsErr() error { return m.legsErr }

func (m *MultipleBet) UnmarshalJSON(data []byte) error {
	var aux struct {
		ID            FlexString      `json:"id"`
		TotalOdd      float64         `json:"odd_total"`
		Probability   float64         `json:"probabilidade"`
		ValorEsperado *float64        `json:"valor_esperado"`
		ValueExpected *float64        `json:"value_expected"`
		Stake         string          `json:"stake"`
		Confidence    string          `json:"confianca"`
		Jogos         json.RawMessage `json:"jogos"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	m.ID = aux.ID
	if m.ID == "" {
		m.ID = FlexString(uuid.NewString())
	}
	m.TotalOdd = aux.TotalOdd
	m.Probability = aux.Probability
	switch {
	case aux.ValorEsperado != nil:
		m.ExpectedValue = *aux.ValorEsperado
	case aux.ValueExpected != nil:
		m.ExpectedValue = *aux.ValueExpected
	default:
		m.ExpectedValue = 0
	}
	m.Stake = aux.Stake
	if m.Stake == "" {
		m.Stake = "MÉDIO"
	}
	m.Confidence = aux.Confidence
	m.Legs, m.legsErr = decodeLegs(aux.Jogos)
	return nil
}

// decodeLegs interpreta o campo "jogos": string com JSON dentro (forma usual
// da nuvem), array direto, ou array de nomes de partidas.
func decodeLegs(raw json.RawMessage) ([]Leg, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("jogos: %w", err)
		}
		if s == "" {
			return nil, nil
		}
		raw = []byte(s)
	}
	var legs []Leg
	if err := json.Unmarshal(raw, &legs); err == nil {
		return legs, nil
	}
	var names []string
	if err := json.Unmarshal(raw, &names); err != nil {
		return nil, fmt.Errorf("jogos: %w", err)
	}
	legs = make([]Leg, 0, len(names))
	for _, n := range names {
		legs = append(legs, Leg{Match: n})
	}
	return legs, nil
}

// Surebet é repassada sem interpretação (arbitragem calculada na nuvem).
type Surebet = json.RawMessage

// Payload são as três coleções brutas de um ciclo de busca.
type Payload struct {
	Individual []IndividualBet `json:"individual"`
	Multiple   []MultipleBet   `json:"multiple"`
	Surebets   []Surebet       `json:"surebets"`
}

// RankedBet é uma entrada das visões derivadas: individual ou múltipla,
// nunca ambas.
type RankedBet struct {
	Kind       string         `json:"kind"` // "individual" | "multipla"
	Individual *IndividualBet `json:"individual,omitempty"`
	Multiple   *MultipleBet   `json:"multipla,omitempty"`
}

// ExpectedValue devolve o VE da entrada, 0 se vazia.
func (r RankedBet) ExpectedValue() float64 {
	switch {
	case r.Individual != nil:
		return r.Individual.ExpectedValue
	case r.Multiple != nil:
		return r.Multiple.ExpectedValue
	}
	return 0
}

// ClassifiedView é recalculada a cada ciclo; nunca persiste.
type ClassifiedView struct {
	Top  []RankedBet `json:"top"`  // até 5, VE decrescente
	Safe []RankedBet `json:"safe"` // filtro de alto valor/probabilidade
}

// Dashboard é o que a UI consome: coleções + visões derivadas.
type Dashboard struct {
	Payload
	Top  []RankedBet `json:"top"`
	Safe []RankedBet `json:"safe"`
}
