package classifier

import (
	"reflect"
	"testing"

	"github.com/radieske/bet-tips-dashboard-poc/pkg/contracts/tips"
)

func ind(id string, value, prob float64) tips.IndividualBet {
	return tips.IndividualBet{ID: tips.FlexString(id), Match: id, ExpectedValue: value, Probability: prob}
}

func mult(id string, value, prob float64) tips.MultipleBet {
	return tips.MultipleBet{ID: tips.FlexString(id), ExpectedValue: value, Probability: prob}
}

func topIDs(view tips.ClassifiedView) []string {
	var ids []string
	for _, r := range view.Top {
		if r.Individual != nil {
			ids = append(ids, string(r.Individual.ID))
		} else {
			ids = append(ids, string(r.Multiple.ID))
		}
	}
	return ids
}

func safeIDs(view tips.ClassifiedView) []string {
	var ids []string
	for _, r := range view.Safe {
		if r.Individual != nil {
			ids = append(ids, string(r.Individual.ID))
		} else {
			ids = append(ids, string(r.Multiple.ID))
		}
	}
	return ids
}

func TestClassifyEmptyInput(t *testing.T) {
	view := Classify(nil, nil)
	if len(view.Top) != 0 {
		t.Errorf("top = %d entradas, esperado 0", len(view.Top))
	}
	if len(view.Safe) != 0 {
		t.Errorf("safe = %d entradas, esperado 0", len(view.Safe))
	}
}

func TestClassifyTopFiveLength(t *testing.T) {
	tests := []struct {
		name       string
		individual int
		multiple   int
		want       int
	}{
		{"SemApostas", 0, 0, 0},
		{"MenosQueCinco", 2, 1, 3},
		{"ExatamenteCinco", 3, 2, 5},
		{"MaisQueCinco", 6, 4, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var is []tips.IndividualBet
			for i := 0; i < tt.individual; i++ {
				is = append(is, ind("i", float64(i), 0.5))
			}
			var ms []tips.MultipleBet
			for i := 0; i < tt.multiple; i++ {
				ms = append(ms, mult("m", float64(i), 0.5))
			}
			view := Classify(is, ms)
			if len(view.Top) != tt.want {
				t.Errorf("len(top) = %d, esperado %d", len(view.Top), tt.want)
			}
		})
	}
}

func TestClassifyTopSortedDescending(t *testing.T) {
	is := []tips.IndividualBet{
		ind("A", 0.1, 0.5),
		ind("B", 0.9, 0.5),
		ind("C", 0.4, 0.5),
	}
	ms := []tips.MultipleBet{
		mult("M", 0.6, 0.5),
	}

	view := Classify(is, ms)
	for i := 1; i < len(view.Top); i++ {
		if view.Top[i-1].ExpectedValue() < view.Top[i].ExpectedValue() {
			t.Fatalf("top fora de ordem na posição %d: %v", i, topIDs(view))
		}
	}
	if got, want := topIDs(view), []string{"B", "M", "C", "A"}; !reflect.DeepEqual(got, want) {
		t.Errorf("top = %v, esperado %v", got, want)
	}
}

// Empate em VE preserva a ordem de chegada (cenário A/B/C da análise).
func TestClassifyStableTies(t *testing.T) {
	is := []tips.IndividualBet{
		ind("A", 0.5, 0.5),
		ind("B", 0.5, 0.5),
		ind("C", 0.1, 0.5),
	}

	view := Classify(is, nil)
	if got, want := topIDs(view), []string{"A", "B", "C"}; !reflect.DeepEqual(got, want) {
		t.Errorf("top = %v, esperado %v", got, want)
	}
}

// Individuais entram antes das múltiplas no empate.
func TestClassifyTieIndividualBeforeMultiple(t *testing.T) {
	is := []tips.IndividualBet{ind("I", 0.5, 0.5)}
	ms := []tips.MultipleBet{mult("M", 0.5, 0.5)}

	view := Classify(is, ms)
	if got, want := topIDs(view), []string{"I", "M"}; !reflect.DeepEqual(got, want) {
		t.Errorf("top = %v, esperado %v", got, want)
	}
}

func TestSafeBetThresholds(t *testing.T) {
	tests := []struct {
		name string
		ind  []tips.IndividualBet
		mult []tips.MultipleBet
		want []string
	}{
		{
			name: "IndividualAprovada",
			ind:  []tips.IndividualBet{ind("A", 0.26, 0.76)},
			want: []string{"A"},
		},
		{
			// Limiar é estrito: exatamente 0.25/0.75 reprova.
			name: "IndividualNaFronteira",
			ind:  []tips.IndividualBet{ind("A", 0.25, 0.9), ind("B", 0.9, 0.75)},
			want: nil,
		},
		{
			name: "MultiplaAprovada",
			mult: []tips.MultipleBet{mult("M", 0.31, 0.71)},
			want: []string{"M"},
		},
		{
			name: "MultiplaNaFronteira",
			mult: []tips.MultipleBet{mult("M", 0.3, 0.9), mult("N", 0.9, 0.7)},
			want: nil,
		},
		{
			name: "IndividuaisAntesDasMultiplas",
			ind:  []tips.IndividualBet{ind("A", 0.3, 0.8)},
			mult: []tips.MultipleBet{mult("M", 0.4, 0.8)},
			want: []string{"A", "M"},
		},
		{
			name: "CamposZeradosReprovam",
			ind:  []tips.IndividualBet{ind("A", 0, 0)},
			mult: []tips.MultipleBet{mult("M", 0, 0)},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := Classify(tt.ind, tt.mult)
			if got := safeIDs(view); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("safe = %v, esperado %v", got, tt.want)
			}
		})
	}
}

// VE ausente (zero) ordena por último e nunca entra nas seguras.
func TestClassifyMissingValueSortsLast(t *testing.T) {
	is := []tips.IndividualBet{
		{ID: "SEM_VE", Probability: 0.9},
		ind("COM_VE", 0.2, 0.9),
	}

	view := Classify(is, nil)
	if got, want := topIDs(view), []string{"COM_VE", "SEM_VE"}; !reflect.DeepEqual(got, want) {
		t.Errorf("top = %v, esperado %v", got, want)
	}
	if len(view.Safe) != 0 {
		t.Errorf("safe = %v, esperado vazio", safeIDs(view))
	}
}

// Classify é pura: duas chamadas idênticas, mesmo resultado, entradas intactas.
func TestClassifyIdempotentAndNonMutating(t *testing.T) {
	is := []tips.IndividualBet{
		ind("A", 0.5, 0.8),
		ind("B", 0.1, 0.9),
	}
	ms := []tips.MultipleBet{mult("M", 0.4, 0.75)}

	before := make([]tips.IndividualBet, len(is))
	copy(before, is)
	beforeM := make([]tips.MultipleBet, len(ms))
	copy(beforeM, ms)

	v1 := Classify(is, ms)
	v2 := Classify(is, ms)

	if !reflect.DeepEqual(v1, v2) {
		t.Error("duas chamadas com a mesma entrada divergiram")
	}
	if !reflect.DeepEqual(is, before) {
		t.Error("entrada individual foi mutada")
	}
	if !reflect.DeepEqual(ms, beforeM) {
		t.Error("entrada múltipla foi mutada")
	}
}

// As entradas do ranking apontam para cópias, nunca para os slices de origem.
func TestClassifyOutputDoesNotAliasInput(t *testing.T) {
	is := []tips.IndividualBet{ind("A", 0.5, 0.8)}

	view := Classify(is, nil)
	view.Top[0].Individual.Match = "alterado"
	if is[0].Match == "alterado" {
		t.Error("saída compartilha memória com a entrada")
	}
}
