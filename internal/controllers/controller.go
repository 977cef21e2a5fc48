package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	logrus "github.com/sirupsen/logrus"

	"fleet_admin/internal/middleware"
	"fleet_admin/internal/models"
	"fleet_admin/internal/repository"
	"fleet_admin/internal/settlement"
)

// FleetController serves the REST resources the console consumes.
type FleetController struct {
	store       repository.Store
	rates       settlement.Rates
	platePrefix string
	now         func() time.Time
}

func NewFleetController(store repository.Store, rates settlement.Rates, platePrefix string) *FleetController {
	RegisterValidations()
	return &FleetController{
		store:       store,
		rates:       rates,
		platePrefix: platePrefix,
		now:         time.Now,
	}
}

// ErrorDetail is one entry of a 422 response, shaped like FastAPI's.
type ErrorDetail struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

var registerOnce sync.Once

// RegisterValidations teaches gin's validator the fleet enumerations and makes
// it report JSON field names.
func RegisterValidations() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("chofer_estado", func(fl validator.FieldLevel) bool {
			return models.IsChoferEstado(fl.Field().String())
		})
		_ = v.RegisterValidation("coche_estado", func(fl validator.FieldLevel) bool {
			return models.IsCocheEstado(fl.Field().String())
		})
		_ = v.RegisterValidation("turno", func(fl validator.FieldLevel) bool {
			return models.IsTurno(fl.Field().String())
		})
		// An empty string is allowed so a PATCH can clear the date.
		_ = v.RegisterValidation("date_or_empty", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			if s == "" {
				return true
			}
			_, err := time.Parse("2006-01-02", s)
			return err == nil
		})
	})
}

// bind decodes the JSON body into obj and answers 422 when that fails.
func bind(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": validationDetails(err)})
		return false
	}
	return true
}

func unprocessable(c *gin.Context, field, msg, typ string) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": []ErrorDetail{
		{Loc: []string{"body", field}, Msg: msg, Type: typ},
	}})
}

func validationDetails(err error) []ErrorDetail {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]ErrorDetail, 0, len(verrs))
		for _, fe := range verrs {
			msg, typ := describe(fe)
			out = append(out, ErrorDetail{Loc: []string{"body", fe.Field()}, Msg: msg, Type: typ})
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []ErrorDetail{{
			Loc:  []string{"body", typeErr.Field},
			Msg:  fmt.Sprintf("value is not a valid %s", typeErr.Type),
			Type: "type_error",
		}}
	}

	return []ErrorDetail{{Loc: []string{"body"}, Msg: err.Error(), Type: "value_error.jsondecode"}}
}

func describe(fe validator.FieldError) (msg, typ string) {
	switch fe.Tag() {
	case "required":
		return "field required", "value_error.missing"
	case "max":
		return fmt.Sprintf("ensure this value has at most %s characters", fe.Param()), "value_error.any_str.max_length"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("ensure this value has at least %s characters", fe.Param()), "value_error.any_str.min_length"
		}
		return fmt.Sprintf("ensure this value is greater than or equal to %s", fe.Param()), "value_error.number.not_ge"
	case "datetime", "date_or_empty":
		return "invalid date format", "value_error.date"
	case "gtefield":
		return "km_salida must be greater than or equal to km_entrada", "value_error"
	case "chofer_estado":
		return "value is not a valid enumeration member; permitted: " + quoted(models.ChoferEstados), "type_error.enum"
	case "coche_estado":
		return "value is not a valid enumeration member; permitted: " + quoted(models.CocheEstados), "type_error.enum"
	case "turno":
		return "value is not a valid enumeration member; permitted: " + quoted(models.Turnos), "type_error.enum"
	}
	return fe.Error(), "value_error"
}

func quoted(values []string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = "'" + v + "'"
	}
	return strings.Join(parts, ", ")
}

// parseID reads the :id path parameter.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": []ErrorDetail{
			{Loc: []string{"path", "id"}, Msg: "value is not a valid integer", Type: "type_error.integer"},
		}})
		return 0, false
	}
	return uint(id), true
}

// messages are the Spanish details returned for one resource kind.
type messages struct {
	notFound  string
	duplicate string
	inUse     string
}

// storeFailure maps repository errors onto HTTP answers.
func storeFailure(c *gin.Context, err error, m messages) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": m.notFound})
	case errors.Is(err, repository.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"detail": m.duplicate})
	case errors.Is(err, repository.ErrInUse):
		c.JSON(http.StatusConflict, gin.H{"detail": m.inUse})
	default:
		middleware.Log(c).WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Error("store failure")
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error interno del servidor"})
	}
}

// optional turns an empty form value into an absent column.
func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
