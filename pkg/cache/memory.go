package cache

import (
	"sync"
	"time"
)

type memoryItem struct {
	value     any
	expiresAt time.Time // ゼロ値は無期限
}

// Memory はプロセス内で完結する TTL 付きのキャッシュです。
type Memory struct {
	mu    sync.Mutex
	items map[string]memoryItem
	now   func() time.Time
}

// NewMemory は空の Memory キャッシュを生成します。
func NewMemory() *Memory {
	return &Memory{items: make(map[string]memoryItem), now: time.Now}
}

// Get は期限内のアイテムを返します。期限切れのアイテムはその場で削除します。
func (m *Memory) Get(key string) (any, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[key]
	if !ok {
		return nil, false
	}
	if !item.expiresAt.IsZero() && m.now().After(item.expiresAt) {
		delete(m.items, key)
		return nil, false
	}
	return item.value, true
}

// Set はアイテムを保存します。d が 0 以下の場合は無期限です。
func (m *Memory) Set(key string, value any, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item := memoryItem{value: value}
	if d > 0 {
		item.expiresAt = m.now().Add(d)
	}
	m.items[key] = item
}

// Len は保持しているアイテム数を返します（期限切れを含む）。
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}
