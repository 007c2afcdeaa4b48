// Package cfg implements functionaltiy to configure an app.
//
// The configuration objects defined here need only be implemented once,
// but can be applied to multiple types.
//
// In order to add support for a new type, the configuration
// need only implement an ApplyX method.
//
package cfg

import (
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/asmtilde/gurted/internal/app/apps"
)

// TimeoutCfg is configuration for the request timeout.
type TimeoutCfg struct {
	timeout time.Duration
}

// NewTimeoutCfg creates a new TimeoutCfg from the given config.
func NewTimeoutCfg(timeout time.Duration) *TimeoutCfg {
	return &TimeoutCfg{
		timeout: timeout,
	}
}

// ApplyClientApp applies the TimeoutCfg to a ClientApp.
func (cfg TimeoutCfg) ApplyClientApp(app *apps.ClientApp) error {
	app.Timeout = cfg.timeout
	return nil
}

// InsecureCfg is configuration for the insecure transport mode.
type InsecureCfg struct {
	insecure bool
}

// NewInsecureCfg creates a new InsecureCfg from the given config.
func NewInsecureCfg(insecure bool) *InsecureCfg {
	return &InsecureCfg{
		insecure: insecure,
	}
}

// ApplyClientApp applies the InsecureCfg to a ClientApp.
func (cfg InsecureCfg) ApplyClientApp(app *apps.ClientApp) error {
	app.Insecure = cfg.insecure
	return nil
}

// OutputCfg is configuration for response formatting.
type OutputCfg struct {
	showHeaders bool
	pretty      bool
}

// NewOutputCfg creates a new OutputCfg from the given config.
func NewOutputCfg(showHeaders, pretty bool) *OutputCfg {
	return &OutputCfg{
		showHeaders: showHeaders,
		pretty:      pretty,
	}
}

// ApplyClientApp applies the OutputCfg to a ClientApp.
func (cfg OutputCfg) ApplyClientApp(app *apps.ClientApp) error {
	app.ShowHeaders = cfg.showHeaders
	app.Pretty = cfg.pretty
	return nil
}

// BodyCfg is configuration for the request body. The body is taken from the
// json literal, the data literal or the file path, in that order.
type BodyCfg struct {
	data        string
	file        string
	jsonData    string
	contentType string
}

// NewBodyCfg creates a new BodyCfg from the given config.
func NewBodyCfg(data, file, jsonData, contentType string) *BodyCfg {
	return &BodyCfg{
		data:        data,
		file:        file,
		jsonData:    jsonData,
		contentType: contentType,
	}
}

// ApplyClientApp applies the BodyCfg to a ClientApp.
func (cfg BodyCfg) ApplyClientApp(app *apps.ClientApp) error {
	switch {
	case cfg.jsonData != "":
		app.Body = []byte(cfg.jsonData)
		app.ContentType = "application/json"
		return nil
	case cfg.data != "":
		app.Body = []byte(cfg.data)
	case cfg.file != "":
		body, err := os.ReadFile(cfg.file)
		if err != nil {
			return errors.Wrapf(err, "read body file %s failed", cfg.file)
		}
		app.Body = body
	}
	if cfg.contentType != "" {
		app.ContentType = cfg.contentType
	}
	return nil
}
