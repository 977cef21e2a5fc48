// internal/models/coche.go
package models

// Vehicle states accepted by the backend. Activo and Inactivo are shared with drivers.
const (
	EstadoDisponible    = "Disponible"
	EstadoMantenimiento = "Mantenimiento"
)

// CocheEstados lists every vehicle state in display order.
var CocheEstados = []string{
	EstadoActivo,
	EstadoDisponible,
	EstadoInactivo,
	EstadoMantenimiento,
}

// Coche is a vehicle as returned by the backend. MatriculaCompleta is derived server-side.
type Coche struct {
	ID                uint    `json:"id" gorm:"primaryKey"`
	Matricula         string  `json:"matricula" gorm:"size:4;uniqueIndex;not null"`
	Movil             string  `json:"movil" gorm:"size:4;not null"`
	Marca             *string `json:"marca,omitempty"`
	Modelo            *string `json:"modelo,omitempty"`
	Anio              *string `json:"anio,omitempty"`
	Kilometros        int     `json:"kilometros" gorm:"not null;default:0"`
	Estado            string  `json:"estado" gorm:"not null;default:Activo"`
	MatriculaCompleta string  `json:"matricula_completa"`
}

func (Coche) TableName() string { return "coches" }

// CocheCreate is the body of POST /coches/.
type CocheCreate struct {
	Matricula  string `json:"matricula" binding:"required,max=4"`
	Movil      string `json:"movil" binding:"required,max=4"`
	Marca      string `json:"marca,omitempty"`
	Modelo     string `json:"modelo,omitempty"`
	Anio       string `json:"anio,omitempty"`
	Kilometros int    `json:"kilometros" binding:"min=0"`
	Estado     string `json:"estado,omitempty" binding:"omitempty,coche_estado"`
}

// CochePatch is the body of PATCH /coches/{id}.
type CochePatch struct {
	Matricula  *string `json:"matricula,omitempty" binding:"omitempty,min=1,max=4"`
	Movil      *string `json:"movil,omitempty" binding:"omitempty,min=1,max=4"`
	Marca      *string `json:"marca,omitempty"`
	Modelo     *string `json:"modelo,omitempty"`
	Anio       *string `json:"anio,omitempty"`
	Kilometros *int    `json:"kilometros,omitempty" binding:"omitempty,min=0"`
	Estado     *string `json:"estado,omitempty" binding:"omitempty,coche_estado"`
}

// IsCocheEstado reports whether s is a known vehicle state.
func IsCocheEstado(s string) bool {
	for _, e := range CocheEstados {
		if e == s {
			return true
		}
	}
	return false
}
