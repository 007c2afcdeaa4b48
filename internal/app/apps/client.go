package apps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/asmtilde/gurted/internal/pkg/client"
	"github.com/asmtilde/gurted/internal/pkg/message"
	"github.com/asmtilde/gurted/internal/pkg/validate"
)

// ClientAppCfg configures a ClientApp.
type ClientAppCfg interface {
	ApplyClientApp(*ClientApp) error
}

// ClientApp executes one GURT verb against a server and formats the
// response. No protocol logic lives here.
type ClientApp struct {
	Timeout     time.Duration
	Insecure    bool
	ShowHeaders bool
	Pretty      bool
	Body        []byte
	ContentType string
	Out         io.Writer `validate:"required"`
}

// NewClientApp creates a new ClientApp.
func NewClientApp(cfgs ...ClientAppCfg) (*ClientApp, error) {
	app := &ClientApp{
		ContentType: "text/plain",
		Out:         os.Stdout,
	}
	for _, cfg := range cfgs {
		if err := cfg.ApplyClientApp(app); err != nil {
			return nil, errors.Wrap(err, "apply ClientApp cfg failed")
		}
	}
	if err := validate.Validate().Struct(app); err != nil {
		return nil, errors.Wrap(err, "validate ClientApp failed")
	}
	return app, nil
}

// Run executes args[0] (the verb) against args[1] (the URL).
func (app *ClientApp) Run(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: <verb> <url>")
	}
	verb, url := args[0], args[1]

	cfgs := []client.Cfg{client.WithVerifyTLS(!app.Insecure)}
	if app.Timeout > 0 {
		cfgs = append(cfgs, client.WithRequestTimeout(app.Timeout))
	}
	c, err := client.NewClient(cfgs...)
	if err != nil {
		return errors.Wrap(err, "create client failed")
	}

	var resp *message.Response
	switch verb {
	case "get":
		resp, err = c.Get(ctx, url)
	case "post":
		resp, err = c.Post(ctx, url, app.Body, app.ContentType)
	case "put":
		resp, err = c.Put(ctx, url, app.Body, app.ContentType)
	case "delete":
		resp, err = c.Delete(ctx, url)
	case "head":
		resp, err = c.Head(ctx, url)
	default:
		return errors.Errorf("unknown verb: %s", verb)
	}
	if err != nil {
		return errors.Wrapf(err, "%s %s failed", verb, url)
	}
	return app.printResponse(resp)
}

func (app *ClientApp) printResponse(resp *message.Response) error {
	fmt.Fprintf(app.Out, "Status: %d %s\n", int(resp.Status), resp.StatusMessage)
	if app.ShowHeaders {
		fmt.Fprintf(app.Out, "\nHeaders:\n")
		for key, value := range resp.Headers {
			fmt.Fprintf(app.Out, "  %s: %s\n", key, value)
		}
	}
	if len(resp.Body) == 0 {
		return nil
	}
	fmt.Fprintf(app.Out, "\nBody:\n")
	if app.Pretty && resp.Header("content-type") == "application/json" {
		var buf bytes.Buffer
		if err := json.Indent(&buf, resp.Body, "", "  "); err == nil {
			fmt.Fprintln(app.Out, buf.String())
			return nil
		}
	}
	fmt.Fprintln(app.Out, resp.Text())
	return nil
}
