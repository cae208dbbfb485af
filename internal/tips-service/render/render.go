package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/radieske/bet-tips-dashboard-poc/pkg/contracts/tips"
)

// Renderer transforma registros classificados em fragmentos HTML de
// cartão, uma grade por vez. Sem estado: a saída depende só da entrada.
type Renderer struct {
	tmpl *template.Template
}

func New() *Renderer {
	funcs := template.FuncMap{
		"porcento": func(f float64) string { return fmt.Sprintf("%.0f%%", f*100) },
	}
	return &Renderer{tmpl: template.Must(template.New("cards").Funcs(funcs).Parse(cardsTmpl))}
}

// Grids são os quatro fragmentos que o dashboard desenha.
type Grids struct {
	Top         string
	Safe        string
	Multiplas   string
	Individuais string
}

// Grids monta os fragmentos das quatro grades de uma vez; o dashboard
// atualiza tudo em bloco ou nada (nunca meia tela velha).
func (r *Renderer) Grids(d *tips.Dashboard) (Grids, error) {
	top, err := r.ranked(d.Top)
	if err != nil {
		return Grids{}, fmt.Errorf("grade top: %w", err)
	}
	safe, err := r.ranked(d.Safe)
	if err != nil {
		return Grids{}, fmt.Errorf("grade seguras: %w", err)
	}

	var multiplas []tips.RankedBet
	for i := range d.Multiple {
		multiplas = append(multiplas, tips.RankedBet{Kind: "multipla", Multiple: &d.Multiple[i]})
	}
	mult, err := r.ranked(multiplas)
	if err != nil {
		return Grids{}, fmt.Errorf("grade múltiplas: %w", err)
	}

	var individuais []tips.RankedBet
	for i := range d.Individual {
		individuais = append(individuais, tips.RankedBet{Kind: "individual", Individual: &d.Individual[i]})
	}
	ind, err := r.ranked(individuais)
	if err != nil {
		return Grids{}, fmt.Errorf("grade individuais: %w", err)
	}

	return Grids{Top: top, Safe: safe, Multiplas: mult, Individuais: ind}, nil
}

func (r *Renderer) ranked(entries []tips.RankedBet) (string, error) {
	if len(entries) == 0 {
		return `<div class="grade-vazia">Nenhum palpite disponível</div>`, nil
	}
	var sb strings.Builder
	for _, e := range entries {
		var err error
		switch {
		case e.Individual != nil:
			err = r.tmpl.ExecuteTemplate(&sb, "individual", e.Individual)
		case e.Multiple != nil:
			err = r.tmpl.ExecuteTemplate(&sb, "multipla", e.Multiple)
		}
		if err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

const cardsTmpl = `
{{define "individual" -}}
<div class="cartao-aposta" data-id="{{.ID}}">
  <div class="cabecalho-aposta"><h3>{{.Match}}</h3><span class="liga">{{.League}}</span></div>
  <div class="corpo-aposta">
    <div class="mercado">{{.BetType}}</div>
    <div class="odd">@{{printf "%.2f" .Odd}} ({{.House}})</div>
    <div class="prob">{{porcento .Probability}} · VE {{printf "%.2f" .ExpectedValue}}</div>
    <div class="stake">{{.Stake}}</div>
  </div>
  <div class="rodape-aposta">{{.Description}}</div>
</div>
{{- end}}
{{define "multipla" -}}
<div class="cartao-aposta cartao-multipla" data-id="{{.ID}}">
  <div class="cabecalho-aposta"><h3>Múltipla ({{len .Legs}} jogos)</h3></div>
  <div class="corpo-aposta">
    <div class="odd">@{{printf "%.2f" .TotalOdd}} total</div>
    <div class="prob">{{porcento .Probability}} · VE {{printf "%.2f" .ExpectedValue}}</div>
    <ul class="pernas">
    {{- range .Legs}}
      <li>{{.Match}}{{if .BetType}} · {{.BetType}}{{end}}{{if .Odd}} @{{printf "%.2f" .Odd}}{{end}}</li>
    {{- end}}
    </ul>
  </div>
</div>
{{- end}}`
