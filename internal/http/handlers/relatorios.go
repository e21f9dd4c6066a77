package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/relatorios/viagens — financial summary of every trip.
func GetResumoViagens(c *gin.Context) {
	linhas, totais, err := relatorioService().Resumo()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"viagens": linhas, "totais": totais})
}

// GET /api/relatorios/viagens/:id/pdf — trip statement.
func GetExtratoViagemPDF(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	pdf, filename, err := relatorioService().GeraExtratoPDF(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
