//go:build tools

package main

// Herramientas de desarrollo: swag genera docs/swagger.json a partir de las
// anotaciones de los handlers (go run github.com/swaggo/swag/cmd/swag init -g cmd/api/main.go).
import (
	_ "github.com/swaggo/swag/cmd/swag"
)
