package domain

// Usuario is an authenticated back-office operator.
type Usuario struct {
	ID        int64  `json:"id"`
	Nome      string `json:"nome"`
	Email     string `json:"email"`
	SenhaHash string `json:"-"`
}
