package classifier

import (
	"sort"

	"github.com/radieske/bet-tips-dashboard-poc/pkg/contracts/tips"
)

// Limiares fixos de política; não são configuráveis pelo usuário.
const (
	// Apostas seguras individuais: VE e probabilidade estritamente acima.
	SafeIndividualMinValue       = 0.25
	SafeIndividualMinProbability = 0.75

	// Múltiplas acumulam risco por perna; exigem VE maior.
	SafeMultipleMinValue       = 0.3
	SafeMultipleMinProbability = 0.7

	// Tamanho do ranking de melhores apostas.
	TopN = 5
)

// Classify deriva as visões do dashboard a partir das coleções brutas.
// Pura: não altera as entradas e o resultado só depende delas. Campos
// ausentes já chegam normalizados pelo data client (ausente = 0, que
// reprova nos limiares e ordena por último).
func Classify(individual []tips.IndividualBet, multiple []tips.MultipleBet) tips.ClassifiedView {
	view := tips.ClassifiedView{
		Top:  rankTop(individual, multiple),
		Safe: filterSafe(individual, multiple),
	}
	return view
}

// filterSafe concatena individuais e depois múltiplas aprovadas, mantendo
// a ordem de chegada dentro de cada coleção.
func filterSafe(individual []tips.IndividualBet, multiple []tips.MultipleBet) []tips.RankedBet {
	var safe []tips.RankedBet
	for i := range individual {
		b := individual[i]
		if b.ExpectedValue > SafeIndividualMinValue && b.Probability > SafeIndividualMinProbability {
			safe = append(safe, tips.RankedBet{Kind: "individual", Individual: &b})
		}
	}
	for i := range multiple {
		m := multiple[i]
		if m.ExpectedValue > SafeMultipleMinValue && m.Probability > SafeMultipleMinProbability {
			safe = append(safe, tips.RankedBet{Kind: "multipla", Multiple: &m})
		}
	}
	return safe
}

// rankTop ordena todas as apostas por VE decrescente e corta nas TopN.
// Ordenação estável: empate preserva a ordem de chegada, individuais
// antes de múltiplas.
func rankTop(individual []tips.IndividualBet, multiple []tips.MultipleBet) []tips.RankedBet {
	type scored struct {
		entry tips.RankedBet
		value float64 // chave sintética, nunca sai no resultado
	}

	all := make([]scored, 0, len(individual)+len(multiple))
	for i := range individual {
		b := individual[i]
		all = append(all, scored{
			entry: tips.RankedBet{Kind: "individual", Individual: &b},
			value: b.ExpectedValue,
		})
	}
	for i := range multiple {
		m := multiple[i]
		all = append(all, scored{
			entry: tips.RankedBet{Kind: "multipla", Multiple: &m},
			value: m.ExpectedValue,
		})
	}

	sort.SliceStable(all, func(i, j int) bool { return all[i].value > all[j].value })

	n := len(all)
	if n > TopN {
		n = TopN
	}
	top := make([]tips.RankedBet, 0, n)
	for _, s := range all[:n] {
		top = append(top, s.entry)
	}
	return top
}
