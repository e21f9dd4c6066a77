package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SantoTourViagens/santo-tour-agency/internal/domain"
)

// GET /api/viagens
func GetViagens(c *gin.Context) {
	viagens, err := viagemService().List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, viagens)
}

// GET /api/viagens/:id
func GetViagemByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	v, err := viagemService().Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// POST /api/viagens — runs the calculation engine before persisting and
// echoes the fully derived record.
func CreateViagem(c *gin.Context) {
	var payload domain.Viagem
	if !BindJSONOrError(c, &payload) {
		return
	}
	v, err := viagemService().Create(payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// PUT /api/viagens/:id
func UpdateViagem(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var payload domain.Viagem
	if !BindJSONOrError(c, &payload) {
		return
	}
	payload.ID = id
	v, err := viagemService().Update(payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

type precoSugeridoRequest struct {
	PrecoSugerido float64 `json:"precosugerido"`
}

// PUT /api/viagens/:id/preco-sugerido — manual price edit.
func UpdatePrecoSugerido(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var req precoSugeridoRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	v, err := viagemService().SetPrecoSugerido(id, req.PrecoSugerido)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// DELETE /api/viagens/:id
func DeleteViagem(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	if err := viagemService().Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "viagem removida"})
}
