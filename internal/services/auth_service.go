package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/SantoTourViagens/santo-tour-agency/internal/domain"
	"github.com/SantoTourViagens/santo-tour-agency/internal/repositories"
)

// AuthService issues HS256 tokens for back-office operators.
type AuthService struct {
	Usuarios repositories.UsuarioRepository
	Secret   []byte
	TokenTTL time.Duration
}

func (s AuthService) ttl() time.Duration {
	if s.TokenTTL > 0 {
		return s.TokenTTL
	}
	return 24 * time.Hour
}

func (s AuthService) Register(nome, email, senha string) (domain.Usuario, error) {
	nome = strings.TrimSpace(nome)
	email = strings.ToLower(strings.TrimSpace(email))

	if nome == "" {
		return domain.Usuario{}, domain.ValidationError{Field: "nome", Msg: "obrigatorio"}
	}
	if email == "" || !strings.Contains(email, "@") {
		return domain.Usuario{}, domain.ValidationError{Field: "email", Msg: "email invalido"}
	}
	if len(senha) < 6 {
		return domain.Usuario{}, domain.ValidationError{Field: "senha", Msg: "minimo de 6 caracteres"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return domain.Usuario{}, fmt.Errorf("gerar hash de senha: %w", err)
	}
	return s.Usuarios.Create(domain.Usuario{Nome: nome, Email: email, SenhaHash: string(hash)})
}

// Login validates the credentials and returns a signed token plus the user.
func (s AuthService) Login(email, senha string) (string, domain.Usuario, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.Usuarios.GetByEmail(email)
	if err != nil {
		if domain.IsNotFound(err) {
			return "", domain.Usuario{}, domain.ValidationError{Msg: "email ou senha incorretos"}
		}
		return "", domain.Usuario{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.SenhaHash), []byte(senha)); err != nil {
		return "", domain.Usuario{}, domain.ValidationError{Msg: "email ou senha incorretos"}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": u.ID,
		"email":   u.Email,
		"exp":     time.Now().Add(s.ttl()).Unix(),
	})
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return "", domain.Usuario{}, fmt.Errorf("assinar token: %w", err)
	}
	return signed, u, nil
}

// ParseToken validates a bearer token and returns the user id claim.
func (s AuthService) ParseToken(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("metodo de assinatura inesperado: %v", t.Header["alg"])
		}
		return s.Secret, nil
	})
	if err != nil || !token.Valid {
		return 0, domain.ValidationError{Msg: "token invalido"}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, domain.ValidationError{Msg: "token invalido"}
	}
	id, _ := claims["user_id"].(float64)
	return int64(id), nil
}
