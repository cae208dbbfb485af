package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/radieske/bet-tips-dashboard-poc/internal/tips-service/dto"
	"github.com/radieske/bet-tips-dashboard-poc/internal/tips-service/render"
	"github.com/radieske/bet-tips-dashboard-poc/internal/tips-service/repo"
	"github.com/radieske/bet-tips-dashboard-poc/internal/tips-service/session"
	"github.com/radieske/bet-tips-dashboard-poc/pkg/contracts/tips"
)

// Mensagens da API, exibidas direto na UI.
const (
	msgMissingFields  = "Preencha email e senha."
	msgBadCredentials = "Email ou senha incorretos."
	msgLoginOK        = "Login autorizado!"
	msgEmailTaken     = "Email já registrado."
	msgAlreadyPending = "Cadastro já solicitado!"
	msgRegisterOK     = "Cadastro enviado! Aguarde aprovação."
	msgNotAuthorized  = "Não autorizado."
	msgUserApproved   = "Usuário aprovado!"
	msgUserNotFound   = "Usuário não encontrado."
	msgInternal       = "Erro interno. Tente novamente."
	msgCloudDown      = "Erro ao carregar dados da Nuvem."
)

type UserRepo interface {
	Authenticate(ctx context.Context, email, password string) (*repo.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	PendingExists(ctx context.Context, email string) (bool, error)
	CreatePending(ctx context.Context, email, password string) error
	ListPending(ctx context.Context) ([]repo.PendingUser, error)
	Approve(ctx context.Context, email string) error
}

type SessionStore interface {
	Create(ctx context.Context, u session.User) (string, error)
	Get(ctx context.Context, token string) (*session.User, bool, error)
	Delete(ctx context.Context, token string) error
}

type BetLoader interface {
	Load(ctx context.Context) (*tips.Dashboard, error)
	Refresh(ctx context.Context) (*tips.Dashboard, error)
}

// Server expõe a API same-origin do dashboard de palpites
type Server struct {
	log        *zap.Logger
	users      UserRepo
	sessions   SessionStore
	loader     BetLoader
	render     *render.Renderer
	origins    []string
	sessionTTL time.Duration
}

func NewServer(log *zap.Logger, users UserRepo, sessions SessionStore, loader BetLoader, r *render.Renderer, origins []string, sessionTTL time.Duration) *Server {
	return &Server{
		log:        log,
		users:      users,
		sessions:   sessions,
		loader:     loader,
		render:     r,
		origins:    origins,
		sessionTTL: sessionTTL,
	}
}

// Router retorna o roteador HTTP com os endpoints do dashboard
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}))

	r.Post("/api/login", s.login)            // autentica e abre sessão
	r.Post("/api/register", s.register)      // cadastro vai pra fila de aprovação
	r.Post("/api/logout", s.logout)          // encerra sessão (best-effort)
	r.Get("/api/session", s.currentSession)  // restaura sessão no load da página
	r.Get("/api/pending_users", s.pending)   // somente admin
	r.Post("/api/approve_user", s.approve)   // somente admin
	r.Get("/api/bets", s.bets)               // coleções + visões classificadas
	r.Get("/api/cards", s.cards)             // fragmentos HTML das grades
	r.Get("/", s.index)
	return r
}

// writeJSON serializa a resposta em JSON e define o status HTTP
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// fail responde o envelope de erro em banda (sempre HTTP 200)
func fail(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusOK, dto.StatusResponse{Status: "error", Msg: msg})
}

// decodeCredentials valida localmente: campo vazio curto-circuita sem
// nenhuma chamada de rede ou banco.
func decodeCredentials(r *http.Request) (email, password string, ok bool) {
	var req dto.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return "", "", false
	}
	email = strings.TrimSpace(req.Email)
	if email == "" || strings.TrimSpace(req.Password) == "" {
		return "", "", false
	}
	return email, req.Password, true
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	email, password, ok := decodeCredentials(r)
	if !ok {
		fail(w, msgMissingFields)
		return
	}

	u, err := s.users.Authenticate(r.Context(), email, password)
	if err != nil {
		s.log.Error("authenticate", zap.Error(err))
		fail(w, msgInternal)
		return
	}
	if u == nil {
		fail(w, msgBadCredentials)
		return
	}

	token, err := s.sessions.Create(r.Context(), session.User{Email: u.Email, IsAdmin: u.IsAdmin})
	if err != nil {
		s.log.Error("session create", zap.Error(err))
		fail(w, msgInternal)
		return
	}
	s.setSessionCookie(w, token, s.sessionTTL)

	writeJSON(w, http.StatusOK, dto.LoginResponse{
		Status: "ok",
		Msg:    msgLoginOK,
		User:   &dto.UserInfo{Email: u.Email},
	})
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	email, password, ok := decodeCredentials(r)
	if !ok {
		fail(w, msgMissingFields)
		return
	}

	exists, err := s.users.EmailExists(r.Context(), email)
	if err != nil {
		s.log.Error("email exists", zap.Error(err))
		fail(w, msgInternal)
		return
	}
	if exists {
		fail(w, msgEmailTaken)
		return
	}

	pending, err := s.users.PendingExists(r.Context(), email)
	if err != nil {
		s.log.Error("pending exists", zap.Error(err))
		fail(w, msgInternal)
		return
	}
	if pending {
		fail(w, msgAlreadyPending)
		return
	}

	if err := s.users.CreatePending(r.Context(), email, password); err != nil {
		s.log.Error("create pending", zap.Error(err))
		fail(w, msgInternal)
		return
	}

	// não loga automaticamente: aprovação do admin vem antes
	writeJSON(w, http.StatusOK, dto.StatusResponse{Status: "ok", Msg: msgRegisterOK})
}

// logout sempre limpa o cookie local; falha ao avisar o servidor não
// bloqueia o encerramento (fire-and-forget).
func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(session.CookieName); err == nil {
		if err := s.sessions.Delete(r.Context(), c.Value); err != nil {
			s.log.Warn("session delete", zap.Error(err))
		}
	}
	s.setSessionCookie(w, "", -time.Second)
	writeJSON(w, http.StatusOK, dto.StatusResponse{Status: "ok"})
}

func (s *Server) currentSession(w http.ResponseWriter, r *http.Request) {
	u := s.sessionUser(r)
	if u == nil {
		writeJSON(w, http.StatusOK, dto.SessionResponse{})
		return
	}
	writeJSON(w, http.StatusOK, dto.SessionResponse{User: &dto.UserInfo{Email: u.Email}})
}

func (s *Server) pending(w http.ResponseWriter, r *http.Request) {
	if u := s.sessionUser(r); u == nil || !u.IsAdmin {
		// sem detalhar o motivo: minimização de informação
		fail(w, msgNotAuthorized)
		return
	}

	list, err := s.users.ListPending(r.Context())
	if err != nil {
		s.log.Error("list pending", zap.Error(err))
		fail(w, msgInternal)
		return
	}

	out := make([]dto.UserInfo, 0, len(list))
	for _, p := range list {
		out = append(out, dto.UserInfo{Email: p.Email})
	}
	writeJSON(w, http.StatusOK, dto.PendingUsersResponse{Status: "ok", Pending: out})
}

func (s *Server) approve(w http.ResponseWriter, r *http.Request) {
	if u := s.sessionUser(r); u == nil || !u.IsAdmin {
		fail(w, msgNotAuthorized)
		return
	}

	var req dto.ApproveUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Email) == "" {
		fail(w, msgUserNotFound)
		return
	}

	switch err := s.users.Approve(r.Context(), strings.TrimSpace(req.Email)); {
	case errors.Is(err, repo.ErrPendingNotFound):
		fail(w, msgUserNotFound)
	case err != nil:
		s.log.Error("approve", zap.Error(err))
		fail(w, msgInternal)
	default:
		writeJSON(w, http.StatusOK, dto.StatusResponse{Status: "ok", Msg: msgUserApproved})
	}
}

// bets devolve as três coleções e as visões derivadas. Qualquer falha de
// busca vira uma única mensagem genérica, nunca um payload parcial.
func (s *Server) bets(w http.ResponseWriter, r *http.Request) {
	if u := s.sessionUser(r); u == nil {
		fail(w, msgNotAuthorized)
		return
	}

	d, err := s.loadDashboard(r)
	if err != nil {
		s.log.Warn("carga dos palpites falhou", zap.Error(err))
		fail(w, msgCloudDown)
		return
	}
	writeJSON(w, http.StatusOK, dto.BetsResponse{Status: "ok", Dashboard: d})
}

func (s *Server) cards(w http.ResponseWriter, r *http.Request) {
	if u := s.sessionUser(r); u == nil {
		fail(w, msgNotAuthorized)
		return
	}

	d, err := s.loadDashboard(r)
	if err != nil {
		s.log.Warn("carga dos palpites falhou", zap.Error(err))
		fail(w, msgCloudDown)
		return
	}

	g, err := s.render.Grids(d)
	if err != nil {
		s.log.Error("render", zap.Error(err))
		fail(w, msgInternal)
		return
	}
	writeJSON(w, http.StatusOK, dto.CardsResponse{
		Status:      "ok",
		Top:         g.Top,
		Safe:        g.Safe,
		Multiplas:   g.Multiplas,
		Individuais: g.Individuais,
	})
}

// loadDashboard honra ?refresh=1 do botão "analisar"
func (s *Server) loadDashboard(r *http.Request) (*tips.Dashboard, error) {
	if r.URL.Query().Get("refresh") == "1" {
		return s.loader.Refresh(r.Context())
	}
	return s.loader.Load(r.Context())
}

// sessionUser resolve o cookie de sessão; nil quando não há sessão válida
func (s *Server) sessionUser(r *http.Request) *session.User {
	c, err := r.Cookie(session.CookieName)
	if err != nil {
		return nil
	}
	u, ok, err := s.sessions.Get(r.Context(), c.Value)
	if err != nil {
		s.log.Warn("session get", zap.Error(err))
		return nil
	}
	if !ok {
		return nil
	}
	return u
}

func (s *Server) setSessionCookie(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
