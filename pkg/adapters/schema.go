package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shouni/dicebear-kit/pkg/domain"
)

// DefaultSchemaTimeout は schema.json 取得時のタイムアウトです。
const DefaultSchemaTimeout = 10 * time.Second

// SchemaClient はスタイルごとの JSON スキーマを取得します。
// リクエストは1回だけ送信し、リトライやキャッシュは行いません。
type SchemaClient struct {
	httpClient HTTPClient
	baseURL    string
	timeout    time.Duration
}

// NewSchemaClient は SchemaClient を生成します。baseURL が空の場合は DefaultBaseURL を使います。
func NewSchemaClient(httpClient HTTPClient, baseURL string, timeout time.Duration) (*SchemaClient, error) {
	if httpClient == nil {
		return nil, fmt.Errorf("httpClient is required")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := ValidateBaseURL(baseURL); err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = DefaultSchemaTimeout
	}
	return &SchemaClient{httpClient: httpClient, baseURL: baseURL, timeout: timeout}, nil
}

// SchemaURL はスタイルの schema.json の URL を返します。
func (c *SchemaClient) SchemaURL(style domain.Style) string {
	u, _ := ValidateBaseURL(c.baseURL)
	return u.JoinPath(style.String(), "schema.json").String()
}

// FetchSchema は指定スタイルの JSON スキーマを取得して返します。
// 無効なスタイルの場合は通信せずに ErrUnknownStyle を返します。
func (c *SchemaClient) FetchSchema(ctx context.Context, style domain.Style) (domain.Schema, error) {
	if !style.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownStyle, style)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.SchemaURL(style), nil)
	if err != nil {
		return nil, domain.NewRemoteRequestError(err)
	}
	req.Header.Set("Accept", "application/json")

	body, err := sendOnce(c.httpClient, req)
	if err != nil {
		return nil, domain.NewRemoteRequestError(err)
	}

	var schema domain.Schema
	if err := json.Unmarshal(body, &schema); err != nil {
		return nil, domain.NewRemoteRequestError(fmt.Errorf("schema.json のデコードに失敗しました: %w", err))
	}
	return schema, nil
}
