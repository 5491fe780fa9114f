package output

import (
	"fmt"
	"io"
	"os"

	"github.com/careercalc/career-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// GenerateReport formats results and writes them to w.
func GenerateReport(w io.Writer, results *domain.CareerComparison, format string) error {
	f, err := ResolveFormatter(format)
	if err != nil {
		return err
	}
	data, err := f.Format(results)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// GenerateReportFile formats results into path, or into a timestamped file in the current
// directory when path is empty. It returns the file written.
func GenerateReportFile(results *domain.CareerComparison, format, path string) (string, error) {
	f, err := ResolveFormatter(format)
	if err != nil {
		return "", err
	}
	if path == "" {
		return WriteFormatted(f, results, "")
	}
	return path, WriteFormattedTo(f, results, path)
}

// SaveConfiguration writes a configuration as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := MarshalConfiguration(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}

// MarshalConfiguration encodes a configuration as YAML.
func MarshalConfiguration(config *domain.Configuration) ([]byte, error) {
	b, err := yaml.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("failed to encode configuration: %w", err)
	}
	return b, nil
}
