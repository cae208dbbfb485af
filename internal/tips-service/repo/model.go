package repo

import "time"

// User é o modelo persistido na tabela users.
type User struct {
	Email     string
	Password  string
	IsAdmin   bool
	CreatedAt time.Time
}

// PendingUser é um cadastro aguardando aprovação do admin.
type PendingUser struct {
	Email       string
	Password    string
	RequestedAt time.Time
}
