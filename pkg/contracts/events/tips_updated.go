package events

import "time"

// Evento publicado no tópico "tips_updated" quando o pipeline de IA
// regrava as coleções de palpites na nuvem.
type TipsUpdated struct {
	Source      string    `json:"source"`      // "ia-pipeline" | "cloud-simulator"
	Collections []string  `json:"collections"` // ex: ["individuais","multiplas","surebets"]
	UpdatedAt   time.Time `json:"updated_at"`
}
