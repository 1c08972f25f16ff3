package output

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/cgcalc/capitalgains-calculator/internal/domain"
)

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(analysis *domain.Analysis) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
	// Extension returns the file extension used by WriteFormatted.
	Extension() string
}

// builtInFormatters stores available formatters (extended incrementally).
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	CSVFormatter{},
	JSONFormatter{},
	HTMLFormatter{},
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":        "console",
	"pretty":      "console",
	"csv-export":  "csv",
	"json-pretty": "json",
	"html-report": "html",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// WriteFormatted runs a formatter and writes its output to a timestamped file.
func WriteFormatted(f Formatter, analysis *domain.Analysis) (string, error) {
	data, err := f.Format(analysis)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("capital_gains_report_%s.%s", time.Now().Format("20060102_150405"), f.Extension())
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}
