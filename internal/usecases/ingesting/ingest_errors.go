package ingesting

import (
	"errors"
)

// Erros específicos para o contexto de ingestão
var (
	// Erros de validação de linha
	ErrBlankRequiredField = errors.New("required field is blank")
	ErrInvalidTimestamp   = errors.New("invalid event timestamp")
	ErrUnknownProduct     = errors.New("unrecognized product")
	ErrUnknownStatus      = errors.New("unrecognized status")

	// Erros de descoberta de arquivos
	ErrDataDirNotFound = errors.New("data directory not found")
	ErrNoActivityFiles = errors.New("no activity CSV files found in data directory")
)
