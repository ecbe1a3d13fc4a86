package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHealthz(t *testing.T) {
	resp := doRequest(t, "GET", "/healthz", nil, http.StatusOK)
	require.JSONEq(t, `{"status":"ok"}`, resp.Body.String())
}
