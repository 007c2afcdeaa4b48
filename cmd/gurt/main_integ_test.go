// build +integration
package main_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/asmtilde/gurted/internal/app/apps"
	"github.com/asmtilde/gurted/internal/app/cfg"
	"github.com/asmtilde/gurted/internal/pkg/gurttest"
	"github.com/asmtilde/gurted/internal/pkg/message"
)

func TestClientApp(t *testing.T) {
	t.Parallel()
	if testing.Short() {
		t.Skip()
	}
	srv, err := gurttest.NewServer(
		gurttest.WithHandler(func(req *message.Request) *message.Response {
			return message.OK().WithText("it works")
		}),
	)
	require.NoError(t, err)
	defer srv.Close() // nolint: errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	app, err := apps.NewClientApp(
		cfg.NewTimeoutCfg(5*time.Second),
		cfg.NewInsecureCfg(true),
		cfg.NewOutputCfg(true, false),
	)
	require.NoError(t, err)
	require.NoError(t, app.Run(ctx, []string{"get", srv.URL("/")}))
}
