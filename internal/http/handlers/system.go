package handlers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/SantoTourViagens/santo-tour-agency/internal/config"
)

var (
	routerMu sync.RWMutex
	router   *gin.Engine
)

// SetRouter stores the active gin engine for later inspection (/api/routes).
func SetRouter(r *gin.Engine) {
	routerMu.Lock()
	defer routerMu.Unlock()
	router = r
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "santo tour backend no ar"})
}

func DBCheck(c *gin.Context) {
	if err := config.EnsureDB(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "banco de dados indisponivel: " + err.Error()})
		return
	}
	var viagens int
	if err := config.DB.QueryRow("SELECT COUNT(*) FROM viagens").Scan(&viagens); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "falha ao consultar o banco: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "conexao com o banco OK", "viagens": viagens})
}

func Routes(c *gin.Context) {
	routerMu.RLock()
	r := router
	routerMu.RUnlock()
	if r == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "router nao inicializado"})
		return
	}

	routes := r.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{
			"method":  rt.Method,
			"path":    rt.Path,
			"handler": rt.Handler,
		})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}
