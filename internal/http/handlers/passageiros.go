package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SantoTourViagens/santo-tour-agency/internal/domain"
)

// GET /api/passageiros?viagem=:id
func GetPassageiros(c *gin.Context) {
	var viagemID int64
	if raw := c.Query("viagem"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			RespondError(c, http.StatusBadRequest, "parametro viagem invalido", err)
			return
		}
		viagemID = id
	}
	passageiros, err := passageiroService().List(viagemID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, passageiros)
}

// GET /api/passageiros/:id
func GetPassageiroByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	p, err := passageiroService().Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// POST /api/passageiros
func CreatePassageiro(c *gin.Context) {
	var payload domain.Passageiro
	if !BindJSONOrError(c, &payload) {
		return
	}
	p, err := passageiroService().Create(payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// PUT /api/passageiros/:id
func UpdatePassageiro(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var payload domain.Passageiro
	if !BindJSONOrError(c, &payload) {
		return
	}
	payload.ID = id
	p, err := passageiroService().Update(payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DELETE /api/passageiros/:id
func DeletePassageiro(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	if err := passageiroService().Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "passageiro removido"})
}
