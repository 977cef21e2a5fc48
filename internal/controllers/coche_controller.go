package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleet_admin/internal/models"
)

var cocheMessages = messages{
	notFound:  "Coche no encontrado",
	duplicate: "Ya existe un coche con esa matrícula",
	inUse:     "El coche tiene recaudaciones asociadas",
}

func (fc *FleetController) matriculaCompleta(co *models.Coche) {
	co.MatriculaCompleta = fc.platePrefix + " " + co.Matricula
}

func (fc *FleetController) ListCoches(c *gin.Context) {
	coches, err := fc.store.ListCoches(c.Request.Context())
	if err != nil {
		storeFailure(c, err, cocheMessages)
		return
	}
	c.JSON(http.StatusOK, coches)
}

func (fc *FleetController) GetCoche(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	coche, err := fc.store.GetCoche(c.Request.Context(), id)
	if err != nil {
		storeFailure(c, err, cocheMessages)
		return
	}
	c.JSON(http.StatusOK, coche)
}

func (fc *FleetController) CreateCoche(c *gin.Context) {
	var input models.CocheCreate
	if !bind(c, &input) {
		return
	}

	coche := models.Coche{
		Matricula:  input.Matricula,
		Movil:      input.Movil,
		Marca:      optional(input.Marca),
		Modelo:     optional(input.Modelo),
		Anio:       optional(input.Anio),
		Kilometros: input.Kilometros,
		Estado:     input.Estado,
	}
	if coche.Estado == "" {
		coche.Estado = models.EstadoActivo
	}
	fc.matriculaCompleta(&coche)

	if err := fc.store.CreateCoche(c.Request.Context(), &coche); err != nil {
		storeFailure(c, err, cocheMessages)
		return
	}
	c.JSON(http.StatusCreated, coche)
}

func (fc *FleetController) UpdateCoche(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var patch models.CochePatch
	if !bind(c, &patch) {
		return
	}

	ctx := c.Request.Context()
	coche, err := fc.store.GetCoche(ctx, id)
	if err != nil {
		storeFailure(c, err, cocheMessages)
		return
	}

	if patch.Matricula != nil {
		coche.Matricula = *patch.Matricula
	}
	if patch.Movil != nil {
		coche.Movil = *patch.Movil
	}
	if patch.Marca != nil {
		coche.Marca = optional(*patch.Marca)
	}
	if patch.Modelo != nil {
		coche.Modelo = optional(*patch.Modelo)
	}
	if patch.Anio != nil {
		coche.Anio = optional(*patch.Anio)
	}
	if patch.Kilometros != nil {
		coche.Kilometros = *patch.Kilometros
	}
	if patch.Estado != nil {
		coche.Estado = *patch.Estado
	}
	fc.matriculaCompleta(coche)

	if err := fc.store.UpdateCoche(ctx, coche); err != nil {
		storeFailure(c, err, cocheMessages)
		return
	}
	c.JSON(http.StatusOK, coche)
}

func (fc *FleetController) DeleteCoche(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := fc.store.DeleteCoche(c.Request.Context(), id); err != nil {
		storeFailure(c, err, cocheMessages)
		return
	}
	c.Status(http.StatusNoContent)
}
