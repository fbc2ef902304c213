package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrHasChildren        = errors.New("el nodo tiene hijos")
	ErrCycle              = errors.New("el cambio de padre crearía un ciclo")
	ErrInvalidTransition  = errors.New("transición de estado no permitida")
	ErrFileTooLarge       = errors.New("archivo demasiado grande")
	ErrNotAnImage         = errors.New("el archivo no es una imagen")
)
