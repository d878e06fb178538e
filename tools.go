//go:build tools
// +build tools

package tools

// Pins development and build tooling in go.mod; nothing here is imported by
// application code.

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "github.com/pressly/goose/v3/cmd/goose"
	_ "github.com/sqlc-dev/sqlc/cmd/sqlc"
	_ "github.com/swaggo/swag/cmd/swag"
	_ "github.com/vektra/mockery/v2"
	_ "golang.org/x/perf/cmd/benchstat"
)
