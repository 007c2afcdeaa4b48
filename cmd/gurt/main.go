// Package main is the GURT CLI entrypoint.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/asmtilde/gurted/internal"
	"github.com/asmtilde/gurted/internal/app/apps"
	"github.com/asmtilde/gurted/internal/app/cfg"
	"github.com/asmtilde/gurted/internal/pkg/log"
	"github.com/asmtilde/gurted/internal/pkg/protocol"
)

// CLI command definitions.
var (
	logger logrus.FieldLogger = logrus.StandardLogger()

	insecure    bool
	timeout     time.Duration
	showHeaders bool
	pretty      bool
	data        string
	file        string
	jsonData    string
	contentType string

	rootCmd = &cobra.Command{
		Use:   "gurt",
		Short: "A command-line client for GURT servers.",
		RunE: func(*cobra.Command, []string) error {
			return nil
		},
	}

	getCmd = &cobra.Command{
		Use:   "get [url]",
		Short: "Sends a GET request.",
		Args:  cobra.ExactArgs(1),
		RunE:  runCmd,
	}

	postCmd = &cobra.Command{
		Use:   "post [url]",
		Short: "Sends a POST request.",
		Args:  cobra.ExactArgs(1),
		RunE:  runCmd,
	}

	putCmd = &cobra.Command{
		Use:   "put [url]",
		Short: "Sends a PUT request.",
		Args:  cobra.ExactArgs(1),
		RunE:  runCmd,
	}

	deleteCmd = &cobra.Command{
		Use:   "delete [url]",
		Short: "Sends a DELETE request.",
		Args:  cobra.ExactArgs(1),
		RunE:  runCmd,
	}

	headCmd = &cobra.Command{
		Use:   "head [url]",
		Short: "Sends a HEAD request.",
		Args:  cobra.ExactArgs(1),
		RunE:  runCmd,
	}
)

func newApp(cmd *cobra.Command) (apps.App, error) {
	cfgs := []apps.ClientAppCfg{
		cfg.NewTimeoutCfg(timeout),
		cfg.NewInsecureCfg(insecure),
		cfg.NewOutputCfg(showHeaders, pretty),
	}
	switch cmd.Name() {
	case "get", "delete", "head":
	case "post", "put":
		cfgs = append(cfgs, cfg.NewBodyCfg(data, file, jsonData, contentType))
	default:
		return nil, fmt.Errorf("unknown command: %s", cmd.Name())
	}
	app, err := apps.NewClientApp(cfgs...)
	if err != nil {
		return nil, errors.Wrap(err, "new client app failed")
	}
	return app, nil
}

func runCmd(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	if err := envCheck(ctx); err != nil {
		return errors.Wrap(err, "env check failed")
	}
	app, err := newApp(cmd)
	if err != nil {
		return errors.Wrapf(err, "new %s app failed", cmd.Name())
	}
	args = append([]string{cmd.Name()}, args...)
	return errors.Wrap(app.Run(ctx, args), "run app failed")
}

func envCheck(_ context.Context) error {
	if err := internal.ValidateEnv(); err != nil {
		return errors.Wrap(err, "validate env failed")
	}
	log.SetLogger(internal.LogLevel)
	return nil
}

func init() {
	for _, cmd := range []*cobra.Command{getCmd, postCmd, putCmd, deleteCmd, headCmd} {
		err := internal.RegisterCommandFlags(cmd, []*internal.Flag{
			{Name: "insecure", Shorthand: "k", Usage: "disable transport identity verification", Bool: &insecure},
			{Name: "timeout", Shorthand: "t", Usage: "request timeout", Duration: &timeout, DefaultDuration: protocol.DefaultRequestTimeout},
			{Name: "headers", Usage: "print response headers", Bool: &showHeaders},
			{Name: "pretty", Usage: "pretty-print json response bodies", Bool: &pretty},
		})
		if err != nil {
			logger.Fatalln(err)
		}
	}

	for _, cmd := range []*cobra.Command{postCmd, putCmd} {
		err := internal.RegisterCommandFlags(cmd, []*internal.Flag{
			{Name: "data", Shorthand: "d", Usage: "request body", String: &data},
			{Name: "file", Shorthand: "f", Usage: "read the request body from a file", String: &file},
			{Name: "json", Shorthand: "j", Usage: "request body as json", String: &jsonData},
			{Name: "content-type", Usage: "request content type", String: &contentType, DefaultString: "text/plain"},
		})
		if err != nil {
			logger.Fatalln(err)
		}
	}

	rootCmd.AddCommand(
		getCmd,
		postCmd,
		putCmd,
		deleteCmd,
		headCmd,
	)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logger.Fatalln(err)
	}
}
