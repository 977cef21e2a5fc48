package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fleet_admin/internal/models"
	"fleet_admin/internal/repository"
)

var recaudacionMessages = messages{
	notFound:  "Recaudación no encontrada",
	duplicate: "Recaudación duplicada",
	inUse:     "La recaudación referencia un chofer o coche inexistente",
}

func (fc *FleetController) ListRecaudaciones(c *gin.Context) {
	recs, err := fc.store.ListRecaudaciones(c.Request.Context())
	if err != nil {
		storeFailure(c, err, recaudacionMessages)
		return
	}
	c.JSON(http.StatusOK, recs)
}

func (fc *FleetController) GetRecaudacion(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	rec, err := fc.store.GetRecaudacion(c.Request.Context(), id)
	if err != nil {
		storeFailure(c, err, recaudacionMessages)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// checkParties answers 422 when the referenced driver or vehicle does not exist.
func (fc *FleetController) checkParties(ctx context.Context, c *gin.Context, choferID, cocheID uint) bool {
	if _, err := fc.store.GetChofer(ctx, choferID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			unprocessable(c, "chofer_id", "chofer no encontrado", "value_error.foreign_key")
		} else {
			storeFailure(c, err, choferMessages)
		}
		return false
	}
	if _, err := fc.store.GetCoche(ctx, cocheID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			unprocessable(c, "coche_id", "coche no encontrado", "value_error.foreign_key")
		} else {
			storeFailure(c, err, cocheMessages)
		}
		return false
	}
	return true
}

// respond re-reads rec so the answer carries the embedded chofer and coche.
func (fc *FleetController) respond(c *gin.Context, status int, id uint) {
	rec, err := fc.store.GetRecaudacion(c.Request.Context(), id)
	if err != nil {
		storeFailure(c, err, recaudacionMessages)
		return
	}
	c.JSON(status, rec)
}

// CreateRecaudacion records a shift, settles it and stamps today's receipt date.
func (fc *FleetController) CreateRecaudacion(c *gin.Context) {
	var input models.RecaudacionCreate
	if !bind(c, &input) {
		return
	}

	ctx := c.Request.Context()
	if !fc.checkParties(ctx, c, input.ChoferID, input.CocheID) {
		return
	}

	rec := models.Recaudacion{
		ChoferID:       &input.ChoferID,
		CocheID:        &input.CocheID,
		Turno:          input.Turno,
		FechaTurno:     input.FechaTurno,
		FechaRecibida:  fc.now().Format("2006-01-02"),
		KmEntrada:      input.KmEntrada,
		KmSalida:       input.KmSalida,
		TotalRecaudado: input.TotalRecaudado,
		Combustible:    input.Combustible,
		OtrosGastos:    input.OtrosGastos,
		H13:            input.H13,
		Credito:        input.Credito,
	}
	fc.rates.Apply(&rec)

	if err := fc.store.CreateRecaudacion(ctx, &rec); err != nil {
		storeFailure(c, err, recaudacionMessages)
		return
	}
	fc.respond(c, http.StatusCreated, rec.ID)
}

// UpdateRecaudacion merges the patch and settles the record again.
func (fc *FleetController) UpdateRecaudacion(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var patch models.RecaudacionPatch
	if !bind(c, &patch) {
		return
	}

	ctx := c.Request.Context()
	rec, err := fc.store.GetRecaudacion(ctx, id)
	if err != nil {
		storeFailure(c, err, recaudacionMessages)
		return
	}

	if patch.ChoferID != nil {
		rec.ChoferID = patch.ChoferID
	}
	if patch.CocheID != nil {
		rec.CocheID = patch.CocheID
	}
	if patch.Turno != nil {
		rec.Turno = *patch.Turno
	}
	if patch.FechaTurno != nil {
		rec.FechaTurno = *patch.FechaTurno
	}
	if patch.KmEntrada != nil {
		rec.KmEntrada = *patch.KmEntrada
	}
	if patch.KmSalida != nil {
		rec.KmSalida = *patch.KmSalida
	}
	if patch.TotalRecaudado != nil {
		rec.TotalRecaudado = *patch.TotalRecaudado
	}
	if patch.Combustible != nil {
		rec.Combustible = *patch.Combustible
	}
	if patch.OtrosGastos != nil {
		rec.OtrosGastos = *patch.OtrosGastos
	}
	if patch.H13 != nil {
		rec.H13 = *patch.H13
	}
	if patch.Credito != nil {
		rec.Credito = *patch.Credito
	}

	if rec.KmSalida < rec.KmEntrada {
		unprocessable(c, "km_salida", "km_salida must be greater than or equal to km_entrada", "value_error")
		return
	}
	if patch.ChoferID != nil || patch.CocheID != nil {
		if rec.ChoferID == nil || rec.CocheID == nil {
			unprocessable(c, "chofer_id", "field required", "value_error.missing")
			return
		}
		if !fc.checkParties(ctx, c, *rec.ChoferID, *rec.CocheID) {
			return
		}
	}
	fc.rates.Apply(rec)
	rec.Chofer, rec.Coche = nil, nil

	if err := fc.store.UpdateRecaudacion(ctx, rec); err != nil {
		storeFailure(c, err, recaudacionMessages)
		return
	}
	fc.respond(c, http.StatusOK, rec.ID)
}

func (fc *FleetController) DeleteRecaudacion(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := fc.store.DeleteRecaudacion(c.Request.Context(), id); err != nil {
		storeFailure(c, err, recaudacionMessages)
		return
	}
	c.Status(http.StatusNoContent)
}
