// Package config holds the command-line configuration shared by all commands.
package config

import (
	"errors"
	"fmt"

	"github.com/idelchi/gobmo/internal/codec"
	"github.com/idelchi/gogen/pkg/validator"
)

// ErrUsage indicates an error in command-line usage or configuration.
var ErrUsage = errors.New("usage error")

// Config is populated by viper from flags and GOBMO_* environment variables.
type Config struct {
	// Show enables output display
	Show bool `label:"--show"`

	// Common flags
	Parallel int    `label:"--parallel" validate:"min=1"`
	Quiet    bool   `label:"--quiet"`
	Verbose  bool   `label:"--verbose"`
	Stats    bool   `label:"--stats"`
	Format   string `label:"--format"   validate:"oneof=text json yaml"`

	// File handling
	Files              bool     `label:"--files"`
	Delete             bool     `label:"--delete"              validate:"requires=--files"`
	PreserveTimestamps bool     `label:"--preserve-timestamps" mapstructure:"preserve-timestamps"`
	EncodeSuffix       string   `label:"--encode-ext"          mapstructure:"encode-ext"          validate:"required"`
	DecodeSuffix       string   `label:"--decode-ext"          mapstructure:"decode-ext"`
	Exclude            []string `label:"--exclude"`
	ExcludeFrom        string   `label:"--exclude-from"        mapstructure:"exclude-from"        validate:"omitempty,readable"`

	// Command-specific flags
	Method            string `label:"--method"             validate:"omitempty,method"`
	Words             string `label:"--words"              validate:"omitempty,readable"`
	Code              string `label:"--code"               validate:"exclusive=CodeFile"`
	CodeFile          string `label:"--code-file"          mapstructure:"code-file"           validate:"omitempty,readable"`
	RequireActivation bool   `label:"--require-activation" mapstructure:"require-activation"`

	// Set by the command, not by flags
	Operation codec.Operation `label:"operation" mapstructure:"-" validate:"oneof=encode decode auto"`

	// Positional arguments or standard input lines
	Inputs []string `label:"inputs" mapstructure:"-" validate:"min=1"`
}

// Display returns the value of the Show field.
func (c Config) Display() bool {
	return c.Show
}

// Validate performs configuration validation using the validator package.
// It returns a wrapped ErrUsage if any validation rules are violated.
func (c Config) Validate(config any) error {
	validator := validator.NewValidator()

	if err := register(validator); err != nil {
		return fmt.Errorf("registering validations: %w", err)
	}

	errs := validator.Validate(config)

	switch {
	case errs == nil:
		return nil
	case len(errs) == 1:
		return fmt.Errorf("%w: %w", ErrUsage, errs[0])
	default:
		return fmt.Errorf("%ws:\n%w", ErrUsage, errors.Join(errs...))
	}
}

// ParsedMethod returns the configured method, defaulting to caesar.
func (c Config) ParsedMethod() codec.Method {
	if c.Method == "" {
		return codec.MethodCaesar
	}

	method, _ := codec.ParseMethod(c.Method)

	return method
}
