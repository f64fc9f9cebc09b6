package adapters

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shouni/dicebear-kit/pkg/domain"
)

func TestSchemaClient_FetchSchema(t *testing.T) {
	ctx := context.Background()

	t.Run("schema.json を取得してデコードするのだ", func(t *testing.T) {
		var requested *http.Request
		httpClient := &mockHTTPClient{
			doFunc: func(req *http.Request) (*http.Response, error) {
				requested = req
				_, hasDeadline := req.Context().Deadline()
				assert.True(t, hasDeadline, "タイムアウトが設定されているべきなのだ")
				return newResponse(http.StatusOK, `{"properties":{"seed":{"type":"string"}}}`), nil
			},
		}
		client, err := NewSchemaClient(httpClient, "", time.Second)
		require.NoError(t, err)

		schema, err := client.FetchSchema(ctx, domain.StyleBigEars)
		require.NoError(t, err)
		require.NotNil(t, requested)
		assert.Equal(t, http.MethodGet, requested.Method)
		assert.Equal(t, "https://api.dicebear.com/7.x/big-ears/schema.json", requested.URL.String())
		assert.Equal(t, []string{"seed"}, schema.PropertyNames())
		assert.Equal(t, 1, httpClient.calls)
	})

	t.Run("未知のスタイルは通信しない", func(t *testing.T) {
		httpClient := &mockHTTPClient{}
		client, _ := NewSchemaClient(httpClient, DefaultBaseURL, 0)

		_, err := client.FetchSchema(ctx, domain.Style("human"))
		assert.ErrorIs(t, err, domain.ErrUnknownStyle)
		assert.Equal(t, 0, httpClient.calls)
	})

	t.Run("5xx でもリトライせず1回で失敗する", func(t *testing.T) {
		httpClient := &mockHTTPClient{
			doFunc: func(req *http.Request) (*http.Response, error) {
				return newResponse(http.StatusServiceUnavailable, "maintenance"), nil
			},
		}
		client, _ := NewSchemaClient(httpClient, DefaultBaseURL, 0)

		_, err := client.FetchSchema(ctx, domain.StyleMicah)
		var remoteErr *domain.RemoteRequestError
		require.ErrorAs(t, err, &remoteErr)
		assert.Contains(t, remoteErr.Message, "503")
		assert.Equal(t, 1, httpClient.calls)
	})

	t.Run("4xx は httpkit のエラー型が Kind になる", func(t *testing.T) {
		httpClient := &mockHTTPClient{
			doFunc: func(req *http.Request) (*http.Response, error) {
				return newResponse(http.StatusNotFound, ""), nil
			},
		}
		client, _ := NewSchemaClient(httpClient, DefaultBaseURL, 0)

		_, err := client.FetchSchema(ctx, domain.StyleMicah)
		var remoteErr *domain.RemoteRequestError
		require.ErrorAs(t, err, &remoteErr)
		assert.Equal(t, "*httpkit.NonRetryableHTTPError", remoteErr.Kind)
		assert.True(t, httpkit.IsNonRetryableError(err))
	})

	t.Run("通信エラーは RemoteRequestError になる", func(t *testing.T) {
		httpClient := &mockHTTPClient{
			doFunc: func(req *http.Request) (*http.Response, error) {
				return nil, context.DeadlineExceeded
			},
		}
		client, _ := NewSchemaClient(httpClient, DefaultBaseURL, 0)

		_, err := client.FetchSchema(ctx, domain.StyleBottts)
		var remoteErr *domain.RemoteRequestError
		require.ErrorAs(t, err, &remoteErr)
		assert.Equal(t, "context.deadlineExceededError", remoteErr.Kind)
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
	})

	t.Run("JSON の解析エラーも RemoteRequestError になる", func(t *testing.T) {
		httpClient := &mockHTTPClient{
			doFunc: func(req *http.Request) (*http.Response, error) {
				return newResponse(http.StatusOK, `<html>`), nil
			},
		}
		client, _ := NewSchemaClient(httpClient, DefaultBaseURL, 0)

		_, err := client.FetchSchema(ctx, domain.StyleBottts)
		var remoteErr *domain.RemoteRequestError
		require.ErrorAs(t, err, &remoteErr)
		assert.Equal(t, "*json.SyntaxError", remoteErr.Kind)
	})
}

func TestSchemaClient_FetchSchema_SingleRequest(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	httpClient := httpkit.New(10*time.Second, httpkit.WithSkipNetworkValidation(true))
	client, err := NewSchemaClient(httpClient, srv.URL, time.Second)
	require.NoError(t, err)

	start := time.Now()
	_, err = client.FetchSchema(context.Background(), domain.StyleMicah)

	var remoteErr *domain.RemoteRequestError
	require.ErrorAs(t, err, &remoteErr)
	assert.NotErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, int32(1), hits.Load())
	assert.Less(t, time.Since(start), time.Second)
}

func TestNewSchemaClient(t *testing.T) {
	_, err := NewSchemaClient(nil, "", 0)
	assert.Error(t, err)

	_, err = NewSchemaClient(&mockHTTPClient{}, "ftp://example.com", 0)
	assert.Error(t, err)
}
