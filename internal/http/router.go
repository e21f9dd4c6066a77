package api

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SantoTourViagens/santo-tour-agency/internal/config"
	h "github.com/SantoTourViagens/santo-tour-agency/internal/http/handlers"
	"github.com/SantoTourViagens/santo-tour-agency/internal/http/middleware"
)

func NewRouter(env config.Env, log *zap.Logger) *gin.Engine {
	h.Configure(log, []byte(env.JWTSecret))

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(log), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Warn("falha ao configurar trusted proxies", zap.Error(err))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "rota nao encontrada",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	auth := middleware.Auth([]byte(env.JWTSecret))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		authGroup := api.Group("/auth")
		authGroup.POST("/login", h.Login)
		authGroup.POST("/register", h.Register)

		clientes := api.Group("/clientes")
		clientes.GET("", h.GetClientes)
		clientes.GET("/:id", h.GetClienteByID)
		clientes.GET("/cpf/:cpf", h.GetClienteByCPF)
		clientes.POST("", auth, h.CreateCliente)
		clientes.PUT("/:id", auth, h.UpdateCliente)
		clientes.DELETE("/:id", auth, h.DeleteCliente)

		viagens := api.Group("/viagens")
		viagens.GET("", h.GetViagens)
		viagens.GET("/:id", h.GetViagemByID)
		viagens.POST("", auth, h.CreateViagem)
		viagens.PUT("/:id", auth, h.UpdateViagem)
		viagens.PUT("/:id/preco-sugerido", auth, h.UpdatePrecoSugerido)
		viagens.DELETE("/:id", auth, h.DeleteViagem)

		passageiros := api.Group("/passageiros")
		passageiros.GET("", h.GetPassageiros)
		passageiros.GET("/:id", h.GetPassageiroByID)
		passageiros.POST("", auth, h.CreatePassageiro)
		passageiros.PUT("/:id", auth, h.UpdatePassageiro)
		passageiros.DELETE("/:id", auth, h.DeletePassageiro)

		adiantamentos := api.Group("/adiantamentos")
		adiantamentos.GET("", h.GetAdiantamentoByViagem)
		adiantamentos.POST("", auth, h.CreateAdiantamento)
		adiantamentos.PUT("/:id", auth, h.UpdateAdiantamento)

		relatorios := api.Group("/relatorios")
		relatorios.GET("/viagens", h.GetResumoViagens)
		relatorios.GET("/viagens/:id/pdf", h.GetExtratoViagemPDF)
	}

	h.SetRouter(r)
	return r
}
