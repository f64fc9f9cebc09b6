package cli

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/shouni/dicebear-kit/pkg/adapters"
	"github.com/shouni/dicebear-kit/pkg/config"
)

type mockHTTPClient struct {
	avatar  []byte
	schema  string
	fetched []string
}

func (m *mockHTTPClient) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	m.fetched = append(m.fetched, url)
	return m.avatar, nil
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	m.fetched = append(m.fetched, req.URL.String())
	status, body := http.StatusOK, m.schema
	if body == "" {
		status, body = http.StatusNotFound, "not found"
	}
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}, nil
}

func mockDependencies(m *mockHTTPClient) dependencies {
	return dependencies{
		newHTTPClient: func(config.APIConfig) adapters.HTTPClient { return m },
	}
}
