package dto

import "github.com/radieske/bet-tips-dashboard-poc/pkg/contracts/tips"

// Envelope padrão da API: sempre HTTP 200 com status em banda;
// a UI decide pelo campo status, nunca pelo código HTTP.
type StatusResponse struct {
	Status string `json:"status"` // "ok" | "error"
	Msg    string `json:"msg,omitempty"`
}

type UserInfo struct {
	Email string `json:"email"`
}

type LoginResponse struct {
	Status string    `json:"status"`
	Msg    string    `json:"msg,omitempty"`
	User   *UserInfo `json:"user,omitempty"`
}

// SessionResponse vira {} quando não há sessão ativa.
type SessionResponse struct {
	User *UserInfo `json:"user,omitempty"`
}

type PendingUsersResponse struct {
	Status  string     `json:"status"`
	Msg     string     `json:"msg,omitempty"`
	Pending []UserInfo `json:"pending,omitempty"`
}

type BetsResponse struct {
	Status string `json:"status"`
	Msg    string `json:"msg,omitempty"`
	*tips.Dashboard
}

// CardsResponse devolve os fragmentos HTML prontos de cada grade.
type CardsResponse struct {
	Status      string `json:"status"`
	Msg         string `json:"msg,omitempty"`
	Top         string `json:"top,omitempty"`
	Safe        string `json:"safe,omitempty"`
	Multiplas   string `json:"multiplas,omitempty"`
	Individuais string `json:"individuais,omitempty"`
}
