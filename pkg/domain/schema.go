package domain

import (
	"maps"
	"slices"
)

// Schema は DiceBear が公開しているスタイルごとの JSON スキーマです。
type Schema map[string]any

// PropertyNames は schema の "properties" に定義されたパラメータ名をソートして返します。
func (s Schema) PropertyNames() []string {
	props, ok := s["properties"].(map[string]any)
	if !ok {
		return nil
	}
	return slices.Sorted(maps.Keys(props))
}
