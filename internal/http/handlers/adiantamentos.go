package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SantoTourViagens/santo-tour-agency/internal/domain"
)

// GET /api/adiantamentos?viagem=:id — returns the stored advances row or,
// when none exists yet, an unsaved record derived from the trip totals.
func GetAdiantamentoByViagem(c *gin.Context) {
	viagemID, err := strconv.ParseInt(c.Query("viagem"), 10, 64)
	if err != nil || viagemID <= 0 {
		RespondError(c, http.StatusBadRequest, "parametro viagem obrigatorio", err)
		return
	}
	a, err := adiantamentoService().GetByViagem(viagemID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// POST /api/adiantamentos
func CreateAdiantamento(c *gin.Context) {
	var payload domain.Adiantamento
	if !BindJSONOrError(c, &payload) {
		return
	}
	a, err := adiantamentoService().Save(payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// PUT /api/adiantamentos/:id — the row is keyed by trip, the id is accepted
// for route symmetry with the other forms.
func UpdateAdiantamento(c *gin.Context) {
	if _, ok := PathID(c); !ok {
		return
	}
	var payload domain.Adiantamento
	if !BindJSONOrError(c, &payload) {
		return
	}
	a, err := adiantamentoService().Save(payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}
