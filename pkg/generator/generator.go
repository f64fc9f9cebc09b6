package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/shouni/dicebear-kit/pkg/adapters"
	"github.com/shouni/dicebear-kit/pkg/domain"
	"github.com/shouni/dicebear-kit/pkg/imgutil"
	"github.com/shouni/dicebear-kit/pkg/utils"
)

// AvatarGenerator は、アバター生成(Generate)、フォーマット変換(Convert)、
// スキーマ取得(Schema)を担当する統合ジェネレーターです。
type AvatarGenerator struct {
	fetcher AvatarFetcher
	schemas SchemaFetcher
	baseURL string
	beacon  adapters.Beacon // nil の場合は利用統計を送信しない
	pings   sync.WaitGroup
}

var _ ImageGenerator = (*AvatarGenerator)(nil)

// NewAvatarGenerator は AvatarGenerator を初期化します。
// baseURL が空の場合は adapters.DefaultBaseURL を使用します。
func NewAvatarGenerator(
	fetcher AvatarFetcher,
	schemas SchemaFetcher,
	baseURL string,
	beacon adapters.Beacon,
) (*AvatarGenerator, error) {
	if fetcher == nil {
		return nil, fmt.Errorf("fetcher (AvatarFetcher) is required")
	}
	if schemas == nil {
		return nil, fmt.Errorf("schemas (SchemaFetcher) is required")
	}
	if baseURL == "" {
		baseURL = adapters.DefaultBaseURL
	}
	if _, err := adapters.ValidateBaseURL(baseURL); err != nil {
		return nil, err
	}

	return &AvatarGenerator{
		fetcher: fetcher,
		schemas: schemas,
		baseURL: baseURL,
		beacon:  beacon,
	}, nil
}

// URL はリクエストに対応する DiceBear の URL を返します。シードが空の場合はそのまま省略されます。
func (g *AvatarGenerator) URL(req domain.AvatarRequest) (string, error) {
	return adapters.BuildAvatarURL(g.baseURL, req)
}

// Generate はアバターを1枚生成します。シードが空の場合はランダムなシードを割り当てます。
func (g *AvatarGenerator) Generate(ctx context.Context, req domain.AvatarRequest) (*domain.AvatarResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	req.Seed = utils.SeedOrRandom(req.Seed)

	avatarURL, err := g.URL(req)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "DiceBear にアバターをリクエストします", "style", req.Style, "format", req.Format, "options", req.Options.Len())
	data, err := g.fetcher.FetchAvatar(ctx, avatarURL)
	if err != nil {
		return nil, fmt.Errorf("アバター生成エラー: %w", err)
	}
	g.ping(ctx, "Generate")

	return &domain.AvatarResponse{
		Data:     data,
		MimeType: detectMimeType(data, req.Format),
		Format:   req.Format,
		Seed:     req.Seed,
		URL:      avatarURL,
	}, nil
}

// Convert は生成済みのアバターを target フォーマットに変換します。
// ローカルで変換できない場合 (SVG のラスタライズ等) は警告を残し、DiceBear に同じシードで再生成を依頼します。
func (g *AvatarGenerator) Convert(ctx context.Context, req domain.AvatarRequest, resp *domain.AvatarResponse, target domain.Format) (*domain.AvatarResponse, error) {
	if resp == nil {
		return nil, fmt.Errorf("resp is required")
	}
	if !target.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownFormat, target)
	}
	if resp.Format == target {
		return resp, nil
	}

	converted, err := imgutil.Convert(resp.Data, target)
	if err == nil {
		g.ping(ctx, "Convert")
		return &domain.AvatarResponse{
			Data:     converted,
			MimeType: target.MimeType(),
			Format:   target,
			Seed:     resp.Seed,
			URL:      resp.URL,
		}, nil
	}
	if !errors.Is(err, imgutil.ErrUnsupportedSource) && !errors.Is(err, imgutil.ErrUnsupportedTarget) {
		return nil, fmt.Errorf("画像変換エラー: %w", err)
	}

	slog.WarnContext(ctx, "ローカルの画像処理機能が使えないため DiceBear で再生成します",
		"from", resp.Format, "to", target, "reason", err)
	req.Format = target
	req.Seed = resp.Seed
	return g.Generate(ctx, req)
}

// Schema はスタイルの JSON スキーマを取得します。
func (g *AvatarGenerator) Schema(ctx context.Context, style domain.Style) (domain.Schema, error) {
	schema, err := g.schemas.FetchSchema(ctx, style)
	if err != nil {
		return nil, err
	}
	g.ping(ctx, "Schema")
	return schema, nil
}

// ping は利用統計をバックグラウンドで送信します。呼び出し元は結果を待ちません。
func (g *AvatarGenerator) ping(ctx context.Context, function string) {
	if g.beacon == nil {
		return
	}
	ev := adapters.Event{File: telemetryFile, Class: telemetryClass, Function: function}
	bg := context.WithoutCancel(ctx)
	g.pings.Go(func() { g.beacon.Ping(bg, ev) })
}

// Close は送信中の利用統計が終わるのを待ちます。
// ctx の期限が先に来た場合は待つのをやめて ctx.Err() を返します。
func (g *AvatarGenerator) Close(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		g.pings.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
