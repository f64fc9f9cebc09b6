package generator

import (
	"context"
	"sync/atomic"

	"github.com/shouni/dicebear-kit/pkg/adapters"
	"github.com/shouni/dicebear-kit/pkg/domain"
)

// --- Mocks ---

type mockFetcher struct {
	fetchFunc func(ctx context.Context, avatarURL string) ([]byte, error)
	urls      []string
}

func (m *mockFetcher) FetchAvatar(ctx context.Context, avatarURL string) ([]byte, error) {
	m.urls = append(m.urls, avatarURL)
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, avatarURL)
	}
	return []byte(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`), nil
}

type mockSchemaFetcher struct {
	schema domain.Schema
	err    error
}

func (m *mockSchemaFetcher) FetchSchema(ctx context.Context, style domain.Style) (domain.Schema, error) {
	return m.schema, m.err
}

// mockBeacon は Ping の呼び出しをチャネルで通知するのだ。
type mockBeacon struct {
	events chan adapters.Event
}

func newMockBeacon() *mockBeacon {
	return &mockBeacon{events: make(chan adapters.Event, 8)}
}

func (m *mockBeacon) Ping(ctx context.Context, ev adapters.Event) {
	m.events <- ev
}

// blockingBeacon は release が閉じられるまで Ping を終えないのだ。
type blockingBeacon struct {
	release chan struct{}
	sent    atomic.Int32
}

func (m *blockingBeacon) Ping(ctx context.Context, ev adapters.Event) {
	<-m.release
	m.sent.Add(1)
}
