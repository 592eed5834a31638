package dto

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/macedocontabil/macedo-si-api/internal/domain"
)

// validate é a instância única do validador, configurada para reportar
// os nomes dos campos como aparecem no JSON.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate valida um DTO e converte a primeira violação em
// domain.ValidationError, nomeando o campo e, para enums (oneof),
// o conjunto de valores aceitos.
func Validate(in interface{}) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return domain.ErrInvalidInput
	}
	fe := errs[0]
	if fe.Tag() == "oneof" {
		return domain.NewValidationError(fe.Field(), strings.Fields(fe.Param())...)
	}
	return domain.NewValidationError(fe.Field())
}

// DateLayout é o formato de campos de data pura na API (sem hora).
const DateLayout = "2006-01-02"

// ParseDate converte uma data "2006-01-02"; erro vira ValidationError do campo.
func ParseDate(field, s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, domain.NewValidationError(field)
	}
	return t, nil
}

// FormatDate devolve a data no formato da API.
func FormatDate(t time.Time) string { return t.Format(DateLayout) }

// FormatDatePtr devolve a data formatada ou "" para nil.
func FormatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
