package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/asmtilde/gurted/internal/pkg/gurterr"
)

func TestStatusClassification(t *testing.T) {
	require.True(t, StatusOK.IsSuccess())
	require.False(t, StatusOK.IsClientError())
	require.False(t, StatusOK.IsServerError())

	require.False(t, StatusNotFound.IsSuccess())
	require.True(t, StatusNotFound.IsClientError())
	require.False(t, StatusNotFound.IsServerError())

	require.False(t, StatusInternalServerError.IsSuccess())
	require.False(t, StatusInternalServerError.IsClientError())
	require.True(t, StatusInternalServerError.IsServerError())

	// 101 is neither success nor an error.
	require.False(t, StatusSwitchingProtocols.IsSuccess())
	require.False(t, StatusSwitchingProtocols.IsClientError())
	require.False(t, StatusSwitchingProtocols.IsServerError())
}

func TestStatusMessages(t *testing.T) {
	require.Equal(t, "OK", StatusOK.Message())
	require.Equal(t, "SWITCHING_PROTOCOLS", StatusSwitchingProtocols.Message())
	require.Equal(t, "INTERNAL_SERVER_ERROR", StatusInternalServerError.Message())
	require.Equal(t, "UNKNOWN", StatusCode(299).Message())
}

func TestParseStatusCode(t *testing.T) {
	code, err := ParseStatusCode("404")
	require.NoError(t, err)
	require.Equal(t, StatusNotFound, code)

	_, err = ParseStatusCode("299")
	require.True(t, gurterr.Is(err, gurterr.Protocol))

	_, err = ParseStatusCode("abc")
	require.True(t, gurterr.Is(err, gurterr.Protocol))
}

func TestKnown(t *testing.T) {
	require.True(t, StatusGatewayTimeout.Known())
	require.False(t, StatusCode(418).Known())
}
