package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleet_admin/internal/models"
)

var choferMessages = messages{
	notFound:  "Chofer no encontrado",
	duplicate: "Ya existe un chofer con ese código",
	inUse:     "El chofer tiene recaudaciones asociadas",
}

func nombreCompleto(ch *models.Chofer) {
	ch.NombreCompleto = ch.Nombre + " " + ch.Apellido
}

func (fc *FleetController) ListChoferes(c *gin.Context) {
	choferes, err := fc.store.ListChoferes(c.Request.Context())
	if err != nil {
		storeFailure(c, err, choferMessages)
		return
	}
	c.JSON(http.StatusOK, choferes)
}

func (fc *FleetController) GetChofer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	chofer, err := fc.store.GetChofer(c.Request.Context(), id)
	if err != nil {
		storeFailure(c, err, choferMessages)
		return
	}
	c.JSON(http.StatusOK, chofer)
}

// CreateChofer registers a driver; estado defaults to Activo.
func (fc *FleetController) CreateChofer(c *gin.Context) {
	var input models.ChoferCreate
	if !bind(c, &input) {
		return
	}

	chofer := models.Chofer{
		CodigoChofer:       input.CodigoChofer,
		CedulaIdentidad:    input.CedulaIdentidad,
		Nombre:             input.Nombre,
		Apellido:           input.Apellido,
		Telefono:           optional(input.Telefono),
		VencimientoLibreta: input.VencimientoLibreta,
		FechaIngreso:       input.FechaIngreso,
		Estado:             input.Estado,
	}
	if chofer.Estado == "" {
		chofer.Estado = models.EstadoActivo
	}
	nombreCompleto(&chofer)

	if err := fc.store.CreateChofer(c.Request.Context(), &chofer); err != nil {
		storeFailure(c, err, choferMessages)
		return
	}
	c.JSON(http.StatusCreated, chofer)
}

// UpdateChofer applies the fields present in the body. An empty telefono or
// fecha_egreso clears it.
func (fc *FleetController) UpdateChofer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var patch models.ChoferPatch
	if !bind(c, &patch) {
		return
	}

	ctx := c.Request.Context()
	chofer, err := fc.store.GetChofer(ctx, id)
	if err != nil {
		storeFailure(c, err, choferMessages)
		return
	}

	if patch.CodigoChofer != nil {
		chofer.CodigoChofer = *patch.CodigoChofer
	}
	if patch.CedulaIdentidad != nil {
		chofer.CedulaIdentidad = *patch.CedulaIdentidad
	}
	if patch.Nombre != nil {
		chofer.Nombre = *patch.Nombre
	}
	if patch.Apellido != nil {
		chofer.Apellido = *patch.Apellido
	}
	if patch.Telefono != nil {
		chofer.Telefono = optional(*patch.Telefono)
	}
	if patch.VencimientoLibreta != nil {
		chofer.VencimientoLibreta = *patch.VencimientoLibreta
	}
	if patch.FechaIngreso != nil {
		chofer.FechaIngreso = *patch.FechaIngreso
	}
	if patch.FechaEgreso != nil {
		chofer.FechaEgreso = optional(*patch.FechaEgreso)
	}
	if patch.Estado != nil {
		chofer.Estado = *patch.Estado
	}
	nombreCompleto(chofer)

	if err := fc.store.UpdateChofer(ctx, chofer); err != nil {
		storeFailure(c, err, choferMessages)
		return
	}
	c.JSON(http.StatusOK, chofer)
}

func (fc *FleetController) DeleteChofer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := fc.store.DeleteChofer(c.Request.Context(), id); err != nil {
		storeFailure(c, err, choferMessages)
		return
	}
	c.Status(http.StatusNoContent)
}
