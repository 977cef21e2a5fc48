package pages

import "fleet_admin/internal/models"

// Presentation categories for status badges.
const (
	BadgeGreen  = "badge badge-green"
	BadgeGray   = "badge badge-gray"
	BadgeBlue   = "badge badge-blue"
	BadgeYellow = "badge badge-yellow"
	BadgeOrange = "badge badge-orange"
	BadgeRed    = "badge badge-red"
	BadgeIndigo = "badge badge-indigo"
)

var choferEstadoClasses = map[string]string{
	models.EstadoActivo:             BadgeGreen,
	models.EstadoInactivo:           BadgeGray,
	models.EstadoLicenciaVacacional: BadgeBlue,
	models.EstadoLicenciaMedica:     BadgeYellow,
	models.EstadoBajaTemporal:       BadgeOrange,
	models.EstadoBajaPermanente:     BadgeRed,
}

var cocheEstadoClasses = map[string]string{
	models.EstadoActivo:        BadgeGreen,
	models.EstadoDisponible:    BadgeBlue,
	models.EstadoInactivo:      BadgeGray,
	models.EstadoMantenimiento: BadgeYellow,
}

var turnoClasses = map[string]string{
	models.TurnoManana: BadgeYellow,
	models.TurnoNoche:  BadgeIndigo,
	models.TurnoSolo:   BadgeGreen,
}

// ChoferEstadoClass falls back to the Inactivo entry for unknown states.
func ChoferEstadoClass(estado string) string {
	if class, ok := choferEstadoClasses[estado]; ok {
		return class
	}
	return choferEstadoClasses[models.EstadoInactivo]
}

// CocheEstadoClass falls back to the Inactivo entry for unknown states.
func CocheEstadoClass(estado string) string {
	if class, ok := cocheEstadoClasses[estado]; ok {
		return class
	}
	return cocheEstadoClasses[models.EstadoInactivo]
}

// TurnoClass has its own neutral fallback rather than a named entry.
func TurnoClass(turno string) string {
	if class, ok := turnoClasses[turno]; ok {
		return class
	}
	return "badge badge-gray"
}
