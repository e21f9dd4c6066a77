package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SantoTourViagens/santo-tour-agency/internal/domain"
)

// GET /api/clientes
func GetClientes(c *gin.Context) {
	clientes, err := clienteService().List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, clientes)
}

// GET /api/clientes/:id
func GetClienteByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	cliente, err := clienteService().Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, cliente)
}

// GET /api/clientes/cpf/:cpf — passenger form pre-fill lookup.
func GetClienteByCPF(c *gin.Context) {
	cliente, err := clienteService().GetByCPF(c.Param("cpf"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, cliente)
}

// POST /api/clientes
func CreateCliente(c *gin.Context) {
	var payload domain.Cliente
	if !BindJSONOrError(c, &payload) {
		return
	}
	cliente, err := clienteService().Create(payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cliente)
}

// PUT /api/clientes/:id
func UpdateCliente(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var payload domain.Cliente
	if !BindJSONOrError(c, &payload) {
		return
	}
	payload.ID = id
	cliente, err := clienteService().Update(payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, cliente)
}

// DELETE /api/clientes/:id
func DeleteCliente(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	if err := clienteService().Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cliente removido"})
}
