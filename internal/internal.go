// Package internal holds shared flag and environment plumbing for the CLI.
package internal

import (
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// LogLevel is the logging level, configurable via LOG_LEVEL.
var LogLevel = "error"

// Flag describes a command flag bound to one typed target.
type Flag struct {
	Name      string
	Shorthand string
	Usage     string

	Bool     *bool
	String   *string
	Duration *time.Duration

	DefaultBool     bool
	DefaultString   string
	DefaultDuration time.Duration
}

// RegisterCommandFlags registers the given flags on the command.
func RegisterCommandFlags(cmd *cobra.Command, flags []*Flag) error {
	for _, f := range flags {
		switch {
		case f.Bool != nil:
			cmd.Flags().BoolVarP(f.Bool, f.Name, f.Shorthand, f.DefaultBool, f.Usage)
		case f.String != nil:
			cmd.Flags().StringVarP(f.String, f.Name, f.Shorthand, f.DefaultString, f.Usage)
		case f.Duration != nil:
			cmd.Flags().DurationVarP(f.Duration, f.Name, f.Shorthand, f.DefaultDuration, f.Usage)
		default:
			return errors.Errorf("flag %s has no target", f.Name)
		}
	}
	return nil
}

// ValidateEnv loads and validates the environment configuration.
func ValidateEnv() error {
	if v, ok := os.LookupEnv("LOG_LEVEL"); ok {
		switch level := strings.ToLower(v); level {
		case "trace", "debug", "info", "warn", "error":
			LogLevel = level
		default:
			return errors.Errorf("invalid LOG_LEVEL: %s", v)
		}
	}
	return nil
}
