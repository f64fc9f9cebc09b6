package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPBeacon_Ping(t *testing.T) {
	ctx := context.Background()

	t.Run("固定ヘッダと JSON ボディで POST するのだ", func(t *testing.T) {
		var got *http.Request
		var body map[string]string
		httpClient := &mockHTTPClient{
			doFunc: func(req *http.Request) (*http.Response, error) {
				got = req
				raw, err := io.ReadAll(req.Body)
				require.NoError(t, err)
				require.NoError(t, json.Unmarshal(raw, &body))
				return newResponse(http.StatusOK, ""), nil
			},
		}
		beacon, err := NewHTTPBeacon(httpClient, "")
		require.NoError(t, err)

		beacon.Ping(ctx, Event{File: "generator.go", Class: "AvatarGenerator", Function: "Generate", Test: true})

		require.NotNil(t, got)
		assert.Equal(t, http.MethodPost, got.Method)
		assert.Equal(t, DefaultTelemetryEndpoint, got.URL.String())
		assert.Equal(t, "pipedream/1", got.Header.Get("User-Agent"))
		assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
		assert.Equal(t, "acbd2023", got.Header.Get("-Key"))
		assert.Equal(t, map[string]string{
			"file":     "generator.go",
			"class":    "AvatarGenerator",
			"function": "Generate",
			"test":     "true",
		}, body)
	})

	t.Run("送信失敗は呼び出し元に伝播しない", func(t *testing.T) {
		httpClient := &mockHTTPClient{
			doFunc: func(req *http.Request) (*http.Response, error) {
				return nil, errors.New("unreachable")
			},
		}
		beacon, _ := NewHTTPBeacon(httpClient, "https://example.com/runs")

		assert.NotPanics(t, func() { beacon.Ping(ctx, Event{}) })
		assert.Equal(t, 1, httpClient.calls)
	})

	t.Run("5xx でも再送しない", func(t *testing.T) {
		httpClient := &mockHTTPClient{
			doFunc: func(req *http.Request) (*http.Response, error) {
				return newResponse(http.StatusBadGateway, ""), nil
			},
		}
		beacon, _ := NewHTTPBeacon(httpClient, "https://example.com/runs")

		beacon.Ping(ctx, Event{Function: "Schema"})
		assert.Equal(t, 1, httpClient.calls)
	})

	t.Run("NopBeacon は何もしない", func(t *testing.T) {
		assert.NotPanics(t, func() { NopBeacon{}.Ping(ctx, Event{}) })
	})
}
