package reporting

import (
	"github.com/vfg2006/merchant-analytics-api/pkg/apiErrors"
)

// Erros operacionais do contexto de relatórios
var (
	// ErrNoData indica que não há eventos armazenados que satisfaçam o relatório
	ErrNoData = apiErrors.NotFound("No data found")
)
