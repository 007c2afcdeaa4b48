package apps

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/asmtilde/gurted/internal/pkg/gurttest"
	"github.com/asmtilde/gurted/internal/pkg/message"
	"github.com/asmtilde/gurted/internal/pkg/protocol"
)

func TestClientAppGet(t *testing.T) {
	srv, err := gurttest.NewServer(
		gurttest.WithHandler(func(*message.Request) *message.Response {
			resp, err := message.OK().WithJSONBody(map[string]string{"message": "Hello"})
			if err != nil {
				return message.InternalServerError()
			}
			return resp
		}),
	)
	require.NoError(t, err)
	defer srv.Close() // nolint: errcheck

	app, err := NewClientApp()
	require.NoError(t, err)
	app.Insecure = true
	app.ShowHeaders = true
	app.Pretty = true
	var out bytes.Buffer
	app.Out = &out

	require.NoError(t, app.Run(context.Background(), []string{"get", srv.URL("/hello")}))
	require.Contains(t, out.String(), "Status: 200 OK")
	require.Contains(t, out.String(), "Headers:")
	require.Contains(t, out.String(), "content-type: application/json")
	require.Contains(t, out.String(), `"message": "Hello"`)
}

func TestClientAppPost(t *testing.T) {
	reqs := make(chan *message.Request, 1)
	srv, err := gurttest.NewServer(
		gurttest.WithHandler(func(req *message.Request) *message.Response {
			reqs <- req
			return message.NewResponse(protocol.StatusCreated)
		}),
	)
	require.NoError(t, err)
	defer srv.Close() // nolint: errcheck

	app, err := NewClientApp()
	require.NoError(t, err)
	app.Insecure = true
	app.Body = []byte("payload")
	app.ContentType = "text/plain"
	var out bytes.Buffer
	app.Out = &out

	require.NoError(t, app.Run(context.Background(), []string{"post", srv.URL("/items")}))
	require.Contains(t, out.String(), "Status: 201 CREATED")

	got := <-reqs
	require.Equal(t, "payload", got.Text())
	require.Equal(t, "text/plain", got.Header("content-type"))
}

func TestClientAppUnknownVerb(t *testing.T) {
	app, err := NewClientApp()
	require.NoError(t, err)
	require.Error(t, app.Run(context.Background(), []string{"patchy", "gurt://localhost/"}))
}

func TestClientAppUsage(t *testing.T) {
	app, err := NewClientApp()
	require.NoError(t, err)
	require.Error(t, app.Run(context.Background(), []string{"get"}))
}
