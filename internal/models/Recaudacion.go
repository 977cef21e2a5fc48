// internal/models/recaudacion.go
package models

// Shift types.
const (
	TurnoManana = "Mañana"
	TurnoNoche  = "Noche"
	TurnoSolo   = "Solo"
)

var Turnos = []string{TurnoManana, TurnoNoche, TurnoSolo}

// Recaudacion is the collection record of one shift. Everything from KmTotales to
// TotalEntregar is computed by the backend and only displayed by the console.
type Recaudacion struct {
	ID             uint    `json:"id" gorm:"primaryKey"`
	Turno          string  `json:"turno" gorm:"not null"`
	FechaTurno     string  `json:"fecha_turno" gorm:"size:10;not null"`
	FechaRecibida  string  `json:"fecha_recibida" gorm:"size:10"`
	KmEntrada      int     `json:"km_entrada"`
	KmSalida       int     `json:"km_salida"`
	KmTotales      int     `json:"km_totales"`
	Rendimiento    float64 `json:"rendimiento"`
	TotalRecaudado float64 `json:"total_recaudado"`
	Salario        float64 `json:"salario"`
	Combustible    float64 `json:"combustible"`
	OtrosGastos    float64 `json:"otros_gastos"`
	TotalGastos    float64 `json:"total_gastos"`
	Liquido        float64 `json:"liquido"`
	Aportes        float64 `json:"aportes"`
	SubTotal       float64 `json:"sub_total"`
	H13            float64 `json:"h13"`
	Credito        float64 `json:"credito"`
	TotalEntregar  float64 `json:"total_entregar"`

	ChoferID *uint   `json:"chofer_id,omitempty" gorm:"index"`
	CocheID  *uint   `json:"coche_id,omitempty" gorm:"index"`
	Chofer   *Chofer `json:"chofer,omitempty" gorm:"foreignKey:ChoferID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Coche    *Coche  `json:"coche,omitempty" gorm:"foreignKey:CocheID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}

func (Recaudacion) TableName() string { return "recaudaciones" }

// RecaudacionCreate is the body of POST /recaudaciones/.
type RecaudacionCreate struct {
	ChoferID       uint    `json:"chofer_id" binding:"required"`
	CocheID        uint    `json:"coche_id" binding:"required"`
	Turno          string  `json:"turno" binding:"required,turno"`
	FechaTurno     string  `json:"fecha_turno" binding:"required,datetime=2006-01-02"`
	KmEntrada      int     `json:"km_entrada" binding:"min=0"`
	KmSalida       int     `json:"km_salida" binding:"gtefield=KmEntrada"`
	TotalRecaudado float64 `json:"total_recaudado" binding:"min=0"`
	Combustible    float64 `json:"combustible" binding:"min=0"`
	OtrosGastos    float64 `json:"otros_gastos" binding:"min=0"`
	H13            float64 `json:"h13"`
	Credito        float64 `json:"credito"`
}

// RecaudacionPatch is the body of PATCH /recaudaciones/{id}.
type RecaudacionPatch struct {
	ChoferID       *uint    `json:"chofer_id,omitempty" binding:"omitempty,min=1"`
	CocheID        *uint    `json:"coche_id,omitempty" binding:"omitempty,min=1"`
	Turno          *string  `json:"turno,omitempty" binding:"omitempty,turno"`
	FechaTurno     *string  `json:"fecha_turno,omitempty" binding:"omitempty,datetime=2006-01-02"`
	KmEntrada      *int     `json:"km_entrada,omitempty" binding:"omitempty,min=0"`
	KmSalida       *int     `json:"km_salida,omitempty" binding:"omitempty,min=0"`
	TotalRecaudado *float64 `json:"total_recaudado,omitempty" binding:"omitempty,min=0"`
	Combustible    *float64 `json:"combustible,omitempty" binding:"omitempty,min=0"`
	OtrosGastos    *float64 `json:"otros_gastos,omitempty" binding:"omitempty,min=0"`
	H13            *float64 `json:"h13,omitempty"`
	Credito        *float64 `json:"credito,omitempty"`
}

// IsTurno reports whether s is a known shift type.
func IsTurno(s string) bool {
	for _, t := range Turnos {
		if t == s {
			return true
		}
	}
	return false
}
