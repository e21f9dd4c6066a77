package calc

import "github.com/SantoTourViagens/santo-tour-agency/internal/domain"

// Capacity is the fixed seat layout of a vehicle type: total seats, seats
// reserved for guides and promotional (free) seats.
type Capacity struct {
	Assentos        int
	ReservadosGuias int
	Promocionais    int
}

var capacidadePorVeiculo = map[string]Capacity{
	domain.VeiculoOnibus:      {Assentos: 46, ReservadosGuias: 2, Promocionais: 2},
	domain.VeiculoSemiLeito:   {Assentos: 44, ReservadosGuias: 2, Promocionais: 2},
	domain.VeiculoMicroonibus: {Assentos: 28, ReservadosGuias: 1, Promocionais: 1},
	domain.VeiculoVan:         {Assentos: 15, ReservadosGuias: 1, Promocionais: 1},
	domain.VeiculoCarro:       {Assentos: 4},
}

// CapacityFor maps a vehicle type to its seat triple. Unknown or empty
// types yield the zero capacity, which cascades into zero pagantes and a
// zero break-even downstream.
func CapacityFor(tipoVeiculo string) Capacity {
	return capacidadePorVeiculo[tipoVeiculo]
}
