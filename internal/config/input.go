package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/harvestam/compound/internal/domain"
	"github.com/harvestam/compound/internal/i18n"
	"github.com/harvestam/compound/internal/output"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of input configuration files
type InputParser struct {
	validate *validator.Validate
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	v := validator.New()
	// Report fields by their YAML key.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("format", func(fl validator.FieldLevel) bool {
		return output.GetFormatterByName(fl.Field().String()) != nil
	})
	return &InputParser{validate: v}
}

// LoadFromFile loads configuration from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes, defaults and validates a configuration document
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ApplyDefaults(&config)

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ApplyDefaults fills the optional fields left empty in a configuration
func ApplyDefaults(config *domain.Configuration) {
	if config.Language == "" {
		config.Language = string(i18n.Default)
	}
	config.Language = strings.ToLower(strings.TrimSpace(config.Language))
	if len(config.Output.Formats) == 0 {
		config.Output.Formats = []string{"console"}
	}
	if config.Output.Directory == "" {
		config.Output.Directory = "."
	}
	if config.Investment.Frequency == "" {
		config.Investment.Frequency = domain.Monthly.String()
	}
}

// ValidateConfiguration validates the loaded configuration.
// Numeric investment fields are never rejected; the engine coerces them.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config == nil {
		return errors.New("configuration is nil")
	}
	err := ip.validate.Struct(config)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", fe.Namespace(), fe.Param(), fe.Value())
	case "format":
		return fmt.Sprintf("%s: unsupported output format %q (available: %s)",
			fe.Namespace(), fe.Value(), strings.Join(output.AvailableFormatterNames(), ", "))
	case "required":
		return fmt.Sprintf("%s is required", fe.Namespace())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Namespace(), fe.Tag())
	}
}

// CreateExampleConfiguration creates an example configuration
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Investment: domain.InvestmentConfig{
			Initial:             1000000,
			MonthlyContribution: 50000,
			AnnualRate:          7,
			Variance:            1,
			Years:               10,
			Frequency:           "monthly",
		},
		Language: string(i18n.FR),
		Output: domain.OutputConfig{
			Formats:   []string{"console", "csv", "pdf"},
			Directory: "reports",
		},
	}
}

// SaveConfiguration writes a configuration as YAML
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	if err := os.WriteFile(filename, b, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
