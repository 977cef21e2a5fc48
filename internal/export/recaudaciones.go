// Package export renders fleet data as spreadsheets.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"fleet_admin/internal/models"
)

// SheetName is the worksheet holding the collection records.
const SheetName = "Recaudaciones"

var recaudacionHeaders = []interface{}{
	"ID", "Fecha turno", "Fecha recibida", "Turno", "Chofer", "Coche",
	"Km entrada", "Km salida", "Km totales", "Rendimiento",
	"Total recaudado", "Salario", "Combustible", "Otros gastos", "Total gastos",
	"Líquido", "Aportes", "Sub total", "H13", "Crédito", "Total a entregar",
}

// WriteRecaudaciones writes recs as an .xlsx workbook to w, one row per record.
func WriteRecaudaciones(w io.Writer, recs []models.Recaudacion) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}

	if err := f.SetSheetRow(SheetName, "A1", &recaudacionHeaders); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetRowStyle(SheetName, 1, 1, bold); err != nil {
		return err
	}

	for i, r := range recs {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			r.ID, r.FechaTurno, r.FechaRecibida, r.Turno, choferLabel(r), cocheLabel(r),
			r.KmEntrada, r.KmSalida, r.KmTotales, r.Rendimiento,
			r.TotalRecaudado, r.Salario, r.Combustible, r.OtrosGastos, r.TotalGastos,
			r.Liquido, r.Aportes, r.SubTotal, r.H13, r.Credito, r.TotalEntregar,
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
	}

	return f.Write(w)
}

func choferLabel(r models.Recaudacion) string {
	switch {
	case r.Chofer != nil:
		return r.Chofer.NombreCompleto
	case r.ChoferID != nil:
		return fmt.Sprintf("#%d", *r.ChoferID)
	}
	return ""
}

func cocheLabel(r models.Recaudacion) string {
	switch {
	case r.Coche != nil:
		return r.Coche.MatriculaCompleta
	case r.CocheID != nil:
		return fmt.Sprintf("#%d", *r.CocheID)
	}
	return ""
}
