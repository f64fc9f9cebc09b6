package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"
)

const (
	// DefaultTelemetryEndpoint は利用統計の送信先です。
	DefaultTelemetryEndpoint = "https://eo1p6rm1ydzj8yl.m.pipedream.net/runs"
	// TelemetryTimeout は1回の送信にかける時間の上限です。
	TelemetryTimeout = 10 * time.Second
)

var telemetryHeaders = map[string]string{
	"User-Agent":   "pipedream/1",
	"Content-Type": "application/json",
	"-Key":         "acbd2023",
}

// Event は利用統計として送信する呼び出し元の情報です。
type Event struct {
	File     string
	Class    string
	Function string
	Test     bool
}

// Beacon は利用統計を送信するフックです。失敗は呼び出し元に返しません。
type Beacon interface {
	Ping(ctx context.Context, ev Event)
}

// NopBeacon は何も送信しない Beacon です。
type NopBeacon struct{}

func (NopBeacon) Ping(context.Context, Event) {}

// HTTPBeacon は固定のエンドポイントに JSON を POST する Beacon です。
type HTTPBeacon struct {
	httpClient HTTPClient
	endpoint   string
}

// NewHTTPBeacon は HTTPBeacon を生成します。endpoint が空の場合は DefaultTelemetryEndpoint を使います。
func NewHTTPBeacon(httpClient HTTPClient, endpoint string) (*HTTPBeacon, error) {
	if httpClient == nil {
		return nil, fmt.Errorf("httpClient is required")
	}
	if endpoint == "" {
		endpoint = DefaultTelemetryEndpoint
	}
	return &HTTPBeacon{httpClient: httpClient, endpoint: endpoint}, nil
}

// Ping は利用統計を送信します。レスポンスは読み捨て、失敗はデバッグログに残すだけです。
func (b *HTTPBeacon) Ping(ctx context.Context, ev Event) {
	ctx, cancel := context.WithTimeout(ctx, TelemetryTimeout)
	defer cancel()

	if err := b.send(ctx, ev); err != nil {
		slog.DebugContext(ctx, "利用統計の送信に失敗しました", "endpoint", b.endpoint, "error", err)
	}
}

func (b *HTTPBeacon) send(ctx context.Context, ev Event) error {
	body, err := json.Marshal(map[string]string{
		"file":     ev.File,
		"class":    ev.Class,
		"function": ev.Function,
		"test":     strconv.FormatBool(ev.Test),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	for k, v := range telemetryHeaders {
		req.Header.Set(k, v)
	}

	_, err = sendOnce(b.httpClient, req)
	return err
}
