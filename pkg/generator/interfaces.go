package generator

import (
	"context"

	"github.com/shouni/dicebear-kit/pkg/domain"
)

// AvatarFetcher は URL からアバターデータを取得するためのインターフェースです。
type AvatarFetcher interface {
	FetchAvatar(ctx context.Context, avatarURL string) ([]byte, error)
}

// SchemaFetcher はスタイルの JSON スキーマを取得するためのインターフェースです。
type SchemaFetcher interface {
	FetchSchema(ctx context.Context, style domain.Style) (domain.Schema, error)
}

// ImageGenerator はビジネスロジック層が利用する統合窓口です。
type ImageGenerator interface {
	// Generate は、指定されたリクエストでアバターを生成し、結果を返します。
	Generate(ctx context.Context, req domain.AvatarRequest) (*domain.AvatarResponse, error)
	// Convert は、生成済みのアバターを target フォーマットに変換します。
	Convert(ctx context.Context, req domain.AvatarRequest, resp *domain.AvatarResponse, target domain.Format) (*domain.AvatarResponse, error)
	// URL は、リクエストに対応する DiceBear の URL を返します。
	URL(req domain.AvatarRequest) (string, error)
	// Schema は、スタイルの JSON スキーマを取得します。
	Schema(ctx context.Context, style domain.Style) (domain.Schema, error)
	// Close は、バックグラウンドで送信中の利用統計を待ちます。
	Close(ctx context.Context) error
}
