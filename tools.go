//go:build tools

package main

// Fixa o swag CLI usado por `go generate` para produzir docs/swagger.json.
import (
	_ "github.com/swaggo/swag"
)
