package adapters

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/shouni/dicebear-kit/pkg/domain"
	"github.com/shouni/go-http-kit/pkg/httpkit"
)

// DefaultBaseURL は DiceBear HTTP API (7.x) のベース URL です。
const DefaultBaseURL = "https://api.dicebear.com/7.x"

const cacheKeyAvatar = "avatar:"

// HTTPClient は DiceBear との通信に必要な httpkit のメソッドだけを切り出したインターフェースです。
// FetchBytes はリトライ付き、Do はリトライなしの1回きりの送信です。
type HTTPClient interface {
	httpkit.Doer
	FetchBytes(ctx context.Context, url string) ([]byte, error)
}

var _ HTTPClient = (httpkit.ClientInterface)(nil)

// sendOnce は req をリトライせずに1回だけ送信し、ステータスを検証したボディを返します。
func sendOnce(httpClient HTTPClient, req *http.Request) ([]byte, error) {
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	return httpkit.HandleResponse(resp)
}

// AvatarCacher はアバターデータのキャッシュ操作を抽象化するインターフェースです。
type AvatarCacher interface {
	Get(key string) (any, bool)
	Set(key string, value any, d time.Duration)
}

// AvatarCore はアバターのダウンロードとキャッシュを担うコンポーネントです。
type AvatarCore struct {
	httpClient HTTPClient
	cache      AvatarCacher
	cacheTTL   time.Duration
}

// NewAvatarCore は依存関係を注入して AvatarCore のインスタンスを生成します。
// cache は nil を許容します（キャッシュなし動作）。
func NewAvatarCore(httpClient HTTPClient, cache AvatarCacher, cacheTTL time.Duration) (*AvatarCore, error) {
	if httpClient == nil {
		return nil, fmt.Errorf("httpClient is required")
	}
	return &AvatarCore{
		httpClient: httpClient,
		cache:      cache,
		cacheTTL:   cacheTTL,
	}, nil
}

// FetchAvatar は URL からアバターを取得します。キャッシュにあればそれを返します。
func (c *AvatarCore) FetchAvatar(ctx context.Context, avatarURL string) ([]byte, error) {
	key := cacheKeyAvatar + avatarURL
	if c.cache != nil {
		if cached, found := c.cache.Get(key); found {
			if data, ok := cached.([]byte); ok {
				slog.DebugContext(ctx, "アバターをキャッシュから返します", "url", avatarURL)
				return data, nil
			}
			slog.WarnContext(ctx, "キャッシュデータが不正な型です", "url", avatarURL, "type", fmt.Sprintf("%T", cached))
		}
	}

	data, err := c.httpClient.FetchBytes(ctx, avatarURL)
	if err != nil {
		return nil, domain.NewRemoteRequestError(err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("アバターデータが空でした: %s", avatarURL)
	}

	if c.cache != nil {
		c.cache.Set(key, data, c.cacheTTL)
	}
	return data, nil
}

// BuildAvatarURL は {base}/{style}/{format}?seed=...&<options>&<extras> 形式の URL を組み立てます。
// クエリのキーはソートされるため、同じリクエストからは常に同じ URL が得られます。
func BuildAvatarURL(baseURL string, req domain.AvatarRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	base, err := ValidateBaseURL(baseURL)
	if err != nil {
		return "", err
	}

	q := req.Options.Query()
	if req.Seed != "" {
		q.Set("seed", req.Seed)
	}
	extraKeys := make([]string, 0, len(req.Extras))
	for k := range req.Extras {
		extraKeys = append(extraKeys, k)
	}
	sort.Strings(extraKeys)
	for _, k := range extraKeys {
		if _, reserved := q[k]; reserved {
			slog.Warn("標準パラメータと重複する追加パラメータを無視します", "key", k)
			continue
		}
		q.Set(k, req.Extras[k])
	}

	u := base.JoinPath(req.Style.String(), req.Format.String())
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// ValidateBaseURL は API のベース URL を検証します。
// 許可されたスキーム (http, https) かつホストが指定されていることを確認します。
func ValidateBaseURL(rawURL string) (*url.URL, error) {
	parsedURL, err := url.ParseRequestURI(strings.TrimRight(rawURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("URLパース失敗: %w", err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return nil, fmt.Errorf("不許可スキーム: %s", parsedURL.Scheme)
	}
	if parsedURL.Host == "" {
		return nil, fmt.Errorf("ホストが指定されていません: %s", rawURL)
	}
	return parsedURL, nil
}
