package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/SantoTourViagens/santo-tour-agency/internal/config"
	"github.com/SantoTourViagens/santo-tour-agency/internal/domain"
)

// UsuarioRepository wraps DB access for back-office operator accounts.
type UsuarioRepository struct {
	DB *sql.DB
}

func (r UsuarioRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

func (r UsuarioRepository) GetByEmail(email string) (domain.Usuario, error) {
	var u domain.Usuario
	err := r.db().QueryRow(
		`SELECT id, nome, email, senha_hash FROM usuarios WHERE email=?`, email).
		Scan(&u.ID, &u.Nome, &u.Email, &u.SenhaHash)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Usuario{}, domain.NotFoundError{Resource: "usuario", Err: err}
	}
	if err != nil {
		return domain.Usuario{}, fmt.Errorf("buscar usuario: %w", err)
	}
	return u, nil
}

func (r UsuarioRepository) Create(u domain.Usuario) (domain.Usuario, error) {
	res, err := r.db().Exec(
		`INSERT INTO usuarios (nome, email, senha_hash) VALUES (?,?,?)`,
		u.Nome, u.Email, u.SenhaHash)
	if err != nil {
		if isDuplicateEntry(err) {
			return u, domain.ConflictError{Resource: "usuario", Msg: "email ja cadastrado"}
		}
		return u, fmt.Errorf("inserir usuario: %w", err)
	}
	u.ID, _ = res.LastInsertId()
	return u, nil
}
