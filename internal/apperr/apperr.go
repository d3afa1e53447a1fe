// Package apperr define los tipos de error que exponen los pipelines de análisis.
// Los llamadores clasifican con errors.Is contra los sentinelas.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrParse: registro de entrada malformado o incompleto.
	ErrParse = errors.New("parse error")
	// ErrNotFound: actor consultado ausente de la matriz.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument: métrica desconocida o parámetro inválido.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIO: archivo ilegible o descarga fallida.
	ErrIO = errors.New("io error")
)

// ParseError identifica la línea de entrada que no se pudo convertir en registro.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is hace que errors.Is(err, ErrParse) matchee cualquier *ParseError.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// NotFound envuelve ErrNotFound con un mensaje.
func NotFound(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// InvalidArgument envuelve ErrInvalidArgument con un mensaje.
func InvalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// IO envuelve err como ErrIO, manteniendo el error original en la cadena.
func IO(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrIO, op, err)
}

// HTTPStatus traduce el tipo de error al status HTTP que devuelve la API.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, ErrParse):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrIO):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
