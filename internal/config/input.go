package config

import (
	"fmt"
	"os"

	"github.com/careercalc/career-calculator/internal/calculation"
	"github.com/careercalc/career-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML (or JSON) file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a configuration document.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Careers) < 2 {
		return fmt.Errorf("at least two careers are required, got %d", len(config.Careers))
	}

	seen := make(map[string]bool, len(config.Careers))
	for i, career := range config.Careers {
		if err := ip.validateCareer(&career); err != nil {
			return fmt.Errorf("career %d validation failed: %w", i, err)
		}
		if seen[career.Name] {
			return fmt.Errorf("duplicate career name %q", career.Name)
		}
		seen[career.Name] = true
	}

	if err := ip.validateComparison(config); err != nil {
		return fmt.Errorf("comparison validation failed: %w", err)
	}

	if config.Chart.Width < 0 || config.Chart.Height < 0 {
		return fmt.Errorf("chart dimensions cannot be negative")
	}

	return nil
}

// validateCareer validates a single career profile
func (ip *InputParser) validateCareer(career *domain.CareerProfile) error {
	if career.Name == "" {
		return fmt.Errorf("%w: name is required", calculation.ErrInvalidProfile)
	}
	return calculation.ValidateProfile(*career)
}

// validateComparison checks that named careers exist and differ
func (ip *InputParser) validateComparison(config *domain.Configuration) error {
	cmp := config.Comparison
	if cmp.Baseline != "" {
		if _, ok := config.FindCareer(cmp.Baseline); !ok {
			return fmt.Errorf("%w: baseline %q", calculation.ErrUnknownCareer, cmp.Baseline)
		}
	}
	if cmp.Challenger != "" {
		if _, ok := config.FindCareer(cmp.Challenger); !ok {
			return fmt.Errorf("%w: challenger %q", calculation.ErrUnknownCareer, cmp.Challenger)
		}
	}
	if baseline, challenger := calculation.ResolvePair(config); baseline == challenger {
		return fmt.Errorf("%w: %q", calculation.ErrSameCareer, baseline)
	}
	return nil
}
