// Package cache は adapters.AvatarCacher の実装を提供します。
//
// Memory はプロセス内の TTL 付きキャッシュ、Redis は複数プロセスで共有する場合のキャッシュです。
package cache
