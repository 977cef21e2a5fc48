// Package settlement derives the figures of a shift collection record from the
// odometer readings and the amounts the driver reports.
package settlement

import (
	"math"

	"fleet_admin/internal/models"
)

// Rates are the percentages applied to a shift's takings.
type Rates struct {
	Salary        float64 // share of total_recaudado paid to the driver
	Contributions float64 // share of the salary withheld as social contributions
}

// Apply recomputes every derived field of r in place.
func (rt Rates) Apply(r *models.Recaudacion) {
	r.KmTotales = r.KmSalida - r.KmEntrada

	r.Rendimiento = 0
	if r.KmTotales > 0 {
		r.Rendimiento = round2(r.TotalRecaudado / float64(r.KmTotales))
	}

	r.Salario = round2(r.TotalRecaudado * rt.Salary)
	r.TotalGastos = round2(r.Salario + r.Combustible + r.OtrosGastos)
	r.Liquido = round2(r.TotalRecaudado - r.TotalGastos)
	r.Aportes = round2(r.Salario * rt.Contributions)
	r.SubTotal = round2(r.Liquido - r.Aportes)
	r.TotalEntregar = round2(r.SubTotal - r.H13 - r.Credito)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
