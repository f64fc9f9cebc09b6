package adapters

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"
)

// --- Mocks ---

// mockHTTPClient は HTTPClient を実装します。
type mockHTTPClient struct {
	fetchFunc func(ctx context.Context, url string) ([]byte, error)
	doFunc    func(req *http.Request) (*http.Response, error)
	calls     int
}

func (m *mockHTTPClient) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	m.calls++
	return m.fetchFunc(ctx, url)
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	m.calls++
	return m.doFunc(req)
}

// newResponse は指定ステータスとボディを持つレスポンスを作ります。
func newResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode:    status,
		Body:          io.NopCloser(strings.NewReader(body)),
		ContentLength: int64(len(body)),
		Header:        make(http.Header),
	}
}

// mockCache は AvatarCacher インターフェースを実装するのだ。
type mockCache struct {
	data map[string]any
}

func (m *mockCache) Get(key string) (any, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *mockCache) Set(key string, value any, d time.Duration) {
	if m.data == nil {
		m.data = make(map[string]any)
	}
	m.data[key] = value
}
