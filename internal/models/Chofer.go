// internal/models/chofer.go
package models

// Driver states accepted by the backend.
const (
	EstadoActivo             = "Activo"
	EstadoInactivo           = "Inactivo"
	EstadoLicenciaVacacional = "Licencia Vacacional"
	EstadoLicenciaMedica     = "Licencia Médica"
	EstadoBajaTemporal       = "Baja Temporal"
	EstadoBajaPermanente     = "Baja Permanente"
)

// ChoferEstados lists every driver state in display order.
var ChoferEstados = []string{
	EstadoActivo,
	EstadoInactivo,
	EstadoLicenciaVacacional,
	EstadoLicenciaMedica,
	EstadoBajaTemporal,
	EstadoBajaPermanente,
}

// Chofer is a driver as returned by the backend. NombreCompleto is derived server-side.
type Chofer struct {
	ID                 uint    `json:"id" gorm:"primaryKey"`
	CodigoChofer       string  `json:"codigo_chofer" gorm:"size:5;uniqueIndex;not null"`
	CedulaIdentidad    string  `json:"cedula_identidad" gorm:"not null"`
	Nombre             string  `json:"nombre" gorm:"not null"`
	Apellido           string  `json:"apellido" gorm:"not null"`
	Telefono           *string `json:"telefono,omitempty"`
	VencimientoLibreta string  `json:"vencimiento_libreta" gorm:"size:10;not null"`
	FechaIngreso       string  `json:"fecha_ingreso" gorm:"size:10;not null"`
	FechaEgreso        *string `json:"fecha_egreso,omitempty" gorm:"size:10"`
	Estado             string  `json:"estado" gorm:"not null;default:Activo"`
	NombreCompleto     string  `json:"nombre_completo"`
}

func (Chofer) TableName() string { return "choferes" }

// ChoferCreate is the body of POST /choferes/.
type ChoferCreate struct {
	CodigoChofer       string `json:"codigo_chofer" binding:"required,max=5"`
	CedulaIdentidad    string `json:"cedula_identidad" binding:"required"`
	Nombre             string `json:"nombre" binding:"required"`
	Apellido           string `json:"apellido" binding:"required"`
	Telefono           string `json:"telefono,omitempty"`
	VencimientoLibreta string `json:"vencimiento_libreta" binding:"required,datetime=2006-01-02"`
	FechaIngreso       string `json:"fecha_ingreso" binding:"required,datetime=2006-01-02"`
	Estado             string `json:"estado,omitempty" binding:"omitempty,chofer_estado"`
}

// ChoferPatch is the body of PATCH /choferes/{id}. Nil fields are left untouched.
type ChoferPatch struct {
	CodigoChofer       *string `json:"codigo_chofer,omitempty" binding:"omitempty,min=1,max=5"`
	CedulaIdentidad    *string `json:"cedula_identidad,omitempty" binding:"omitempty,min=1"`
	Nombre             *string `json:"nombre,omitempty" binding:"omitempty,min=1"`
	Apellido           *string `json:"apellido,omitempty" binding:"omitempty,min=1"`
	Telefono           *string `json:"telefono,omitempty"`
	VencimientoLibreta *string `json:"vencimiento_libreta,omitempty" binding:"omitempty,datetime=2006-01-02"`
	FechaIngreso       *string `json:"fecha_ingreso,omitempty" binding:"omitempty,datetime=2006-01-02"`
	FechaEgreso        *string `json:"fecha_egreso,omitempty" binding:"omitempty,date_or_empty"`
	Estado             *string `json:"estado,omitempty" binding:"omitempty,chofer_estado"`
}

// IsChoferEstado reports whether s is a known driver state.
func IsChoferEstado(s string) bool {
	for _, e := range ChoferEstados {
		if e == s {
			return true
		}
	}
	return false
}
