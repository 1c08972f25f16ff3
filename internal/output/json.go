package output

import (
	json "github.com/goccy/go-json"

	"github.com/cgcalc/capitalgains-calculator/internal/domain"
)

// JSONFormatter renders the analysis as indented JSON, the same shape
// consumers of the persisted state see.
type JSONFormatter struct{}

func (JSONFormatter) Name() string      { return "json" }
func (JSONFormatter) Extension() string { return "json" }

func (JSONFormatter) Format(a *domain.Analysis) ([]byte, error) {
	return json.MarshalIndent(a, "", "  ")
}
