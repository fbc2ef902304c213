package validate

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// instancia única; validator cachea metadata de structs y es seguro para uso concurrente.
var v = validator.New(validator.WithRequiredStructEnabled())

// Struct valida un DTO según sus tags `validate`. Devuelve nil si es válido.
func Struct(s interface{}) error {
	return v.Struct(s)
}

// Explain convierte un error de validación en un mensaje corto por campo,
// apto para el cuerpo de un 400 (ej. "Name: required; Email: email").
func Explain(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fe.Field()+": "+fe.Tag())
	}
	return strings.Join(parts, "; ")
}
