package tips

import "encoding/json"

// ExamplePayload é o catálogo fixo usado quando a nuvem não está configurada
// (modo demonstração, não é erro). Mesmas partidas do simulador local.
func ExamplePayload() Payload {
	return Payload{
		Individual: []IndividualBet{
			{
				ID:            "EX001",
				Match:         "Flamengo x Palmeiras",
				League:        "Brasileirão Série A",
				BetType:       "Mais de 2.5",
				Probability:   0.82,
				Odd:           1.95,
				House:         "betano",
				ExpectedValue: 0.50,
				Stake:         "MÉDIO",
				Confidence:    "ALTA",
				Gender:        "M",
				Date:          "HOJE",
				Description:   "Análise da IA com VE positivo.",
			},
			{
				ID:            "EX002",
				Match:         "Grêmio x Internacional",
				League:        "Brasileirão Série A",
				BetType:       "Ambas marcam",
				Probability:   0.77,
				Odd:           1.80,
				House:         "bet365",
				ExpectedValue: 0.31,
				Stake:         "BAIXO",
				Confidence:    "ALTA",
				Gender:        "M",
				Date:          "HOJE",
				Description:   "Análise da IA com VE positivo.",
			},
			{
				ID:            "EX003",
				Match:         "Corinthians x Santos",
				League:        "Brasileirão Série A",
				BetType:       "Vitória mandante",
				Probability:   0.61,
				Odd:           2.10,
				House:         "betano",
				ExpectedValue: 0.18,
				Stake:         "MÉDIO",
				Confidence:    "MÉDIA",
				Gender:        "M",
				Date:          "HOJE",
				Description:   "Análise da IA com VE positivo.",
			},
		},
		Multiple: []MultipleBet{
			{
				ID:            "EXM01",
				TotalOdd:      4.30,
				Probability:   0.72,
				ExpectedValue: 0.42,
				Stake:         "MÉDIO",
				Confidence:    "MÉDIA",
				Legs: []Leg{
					{Match: "São Paulo x Vasco", BetType: "Mais de 1.5", Odd: 1.40},
					{Match: "Flamengo x Palmeiras", BetType: "Ambas marcam", Odd: 1.75},
					{Match: "Grêmio x Internacional", BetType: "Dupla chance 1X", Odd: 1.75},
				},
			},
		},
		Surebets: []Surebet{
			json.RawMessage(`{"match":"Corinthians x Santos","mercado":"1x2","lucro_pct":2.4,"casas":["betano","bet365"]}`),
		},
	}
}
