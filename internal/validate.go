package internal

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var fechaRe = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// error messages carry the wire name, not the Go field name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("fecha", func(fl validator.FieldLevel) bool {
		return fechaRe.MatchString(fl.Field().String())
	})
	return v
}

// mensajeValidacion renders the first validation failure as the
// user-facing Spanish message.
func mensajeValidacion(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return "Datos inválidos"
	}
	fe := errs[0]
	switch fe.Tag() {
	case "fecha":
		return fe.Value().(string) + " no es un formato de fecha válido! Debe ser dd/mm/aaaa."
	case "required":
		return "El campo " + fe.Field() + " es requerido"
	case "oneof":
		return "Valor no permitido para el campo " + fe.Field()
	case "email":
		return "Por favor ingrese un correo válido"
	default:
		return "Datos inválidos"
	}
}
