package handlers

import (
	"sync"

	"go.uber.org/zap"

	"github.com/SantoTourViagens/santo-tour-agency/internal/services"
)

var (
	depsMu    sync.RWMutex
	log       *zap.Logger
	jwtSecret []byte
)

// Configure injects the shared handler dependencies. Repositories default to
// the shared pool in internal/config, so only cross-cutting values live here.
func Configure(logger *zap.Logger, secret []byte) {
	depsMu.Lock()
	defer depsMu.Unlock()
	log = logger
	jwtSecret = secret
}

func logger() *zap.Logger {
	depsMu.RLock()
	defer depsMu.RUnlock()
	if log != nil {
		return log
	}
	return zap.NewNop()
}

func secret() []byte {
	depsMu.RLock()
	defer depsMu.RUnlock()
	return jwtSecret
}

func viagemService() services.ViagemService {
	return services.ViagemService{Log: logger()}
}

func clienteService() services.ClienteService {
	return services.ClienteService{}
}

func passageiroService() services.PassageiroService {
	return services.PassageiroService{}
}

func adiantamentoService() services.AdiantamentoService {
	return services.AdiantamentoService{}
}

func relatorioService() services.RelatorioService {
	return services.RelatorioService{}
}

func authService() services.AuthService {
	return services.AuthService{Secret: secret()}
}
