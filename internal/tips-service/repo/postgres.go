package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrPendingNotFound indica aprovação de um email sem cadastro pendente.
var ErrPendingNotFound = errors.New("cadastro pendente não encontrado")

// Postgres implementa a persistência de usuários e cadastros pendentes
type Postgres struct{ db *sql.DB }

// NewPostgres retorna uma instância do repositório de usuários
func NewPostgres(db *sql.DB) *Postgres { return &Postgres{db: db} }

// Authenticate compara email+senha contra a tabela users.
// Credencial inválida devolve (nil, nil); erro é só falha de infra.
func (p *Postgres) Authenticate(ctx context.Context, email, password string) (*User, error) {
	var u User
	err := p.db.QueryRowContext(ctx,
		`SELECT email, is_admin FROM users WHERE email=$1 AND password=$2`,
		email, password,
	).Scan(&u.Email, &u.IsAdmin)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// EmailExists verifica se o email já consta em users
func (p *Postgres) EmailExists(ctx context.Context, email string) (bool, error) {
	var n int
	err := p.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM users WHERE email=$1`, email,
	).Scan(&n)
	return n > 0, err
}

// PendingExists verifica se já existe cadastro pendente pro email
func (p *Postgres) PendingExists(ctx context.Context, email string) (bool, error) {
	var n int
	err := p.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM pending_users WHERE email=$1`, email,
	).Scan(&n)
	return n > 0, err
}

// CreatePending insere um cadastro aguardando aprovação
func (p *Postgres) CreatePending(ctx context.Context, email, password string) error {
	_, err := p.db.ExecContext(ctx,
		`INSERT INTO pending_users (email, password) VALUES ($1, $2)`,
		email, password,
	)
	return err
}

// ListPending retorna os cadastros aguardando aprovação
func (p *Postgres) ListPending(ctx context.Context) ([]PendingUser, error) {
	rows, err := p.db.QueryContext(ctx,
		`SELECT email, requested_at FROM pending_users ORDER BY requested_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PendingUser
	for rows.Next() {
		var u PendingUser
		if err := rows.Scan(&u.Email, &u.RequestedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// Approve move o cadastro de pending_users pra users numa transação
func (p *Postgres) Approve(ctx context.Context, email string) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var password string
	err = tx.QueryRowContext(ctx,
		`SELECT password FROM pending_users WHERE email=$1`, email,
	).Scan(&password)
	if err == sql.ErrNoRows {
		return ErrPendingNotFound
	}
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO users (email, password, is_admin) VALUES ($1, $2, false)`,
		email, password,
	); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM pending_users WHERE email=$1`, email,
	); err != nil {
		return err
	}

	return tx.Commit()
}
