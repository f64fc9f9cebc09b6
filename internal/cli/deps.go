package cli

import (
	"context"
	"log/slog"

	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/gcsfactory"
	"github.com/shouni/go-remote-io/pkg/remoteio"
	"github.com/shouni/go-remote-io/pkg/s3factory"

	"github.com/shouni/dicebear-kit/pkg/adapters"
	"github.com/shouni/dicebear-kit/pkg/cache"
	"github.com/shouni/dicebear-kit/pkg/config"
	"github.com/shouni/dicebear-kit/pkg/generator"
)

// dependencies lets tests replace the network-facing pieces.
type dependencies struct {
	newHTTPClient func(api config.APIConfig) adapters.HTTPClient
}

func defaultDependencies() dependencies {
	return dependencies{
		newHTTPClient: func(api config.APIConfig) adapters.HTTPClient {
			return httpkit.New(api.Timeout.Duration, httpClientOptions(api)...)
		},
	}
}

// httpClientOptions turns off the private-network guard for self-hosted
// instances, which usually live on loopback or private addresses.
func httpClientOptions(api config.APIConfig) []httpkit.ClientOption {
	if api.BaseURL == "" || api.BaseURL == adapters.DefaultBaseURL {
		return nil
	}
	return []httpkit.ClientOption{httpkit.WithSkipNetworkValidation(true)}
}

// newStorage returns a reader and writer able to handle uri.
// Cloud clients are only created for gs:// and s3:// URIs.
func newStorage(ctx context.Context, uri string) (remoteio.InputReader, remoteio.OutputWriter, func(), error) {
	var newFactory func(context.Context) (remoteio.IOFactory, error)
	switch {
	case remoteio.IsGCSURI(uri):
		newFactory = gcsfactory.New
	case remoteio.IsS3URI(uri):
		newFactory = s3factory.New
	default:
		return remoteio.NewUniversalInputReader(nil, nil), remoteio.NewUniversalIOWriter(nil, nil), func() {}, nil
	}

	factory, err := newFactory(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	closeFactory := func() {
		if err := factory.Close(); err != nil {
			slog.Warn("ストレージクライアントのクローズに失敗しました", "error", err)
		}
	}
	reader, err := factory.InputReader()
	if err != nil {
		closeFactory()
		return nil, nil, nil, err
	}
	writer, err := factory.OutputWriter()
	if err != nil {
		closeFactory()
		return nil, nil, nil, err
	}
	return reader, writer, closeFactory, nil
}

// newCache returns the configured avatar cache and a cleanup function.
func (a *app) newCache() (adapters.AvatarCacher, func()) {
	if a.cfg.Cache.RedisAddr == "" {
		return cache.NewMemory(), func() {}
	}
	r, err := cache.NewRedis(a.cfg.Cache.RedisAddr, "")
	if err != nil {
		slog.Warn("Redis キャッシュを使えないためメモリキャッシュを使用します", "error", err)
		return cache.NewMemory(), func() {}
	}
	return r, func() { _ = r.Close() }
}

// newGenerator wires the HTTP client, cache, schema client and telemetry beacon.
// The returned cleanup waits for pending telemetry before releasing the cache.
func (a *app) newGenerator() (*generator.AvatarGenerator, func(), error) {
	httpClient := a.deps.newHTTPClient(a.cfg.API)
	avatarCache, closeCache := a.newCache()

	core, err := adapters.NewAvatarCore(httpClient, avatarCache, a.cfg.Cache.TTL.Duration)
	if err != nil {
		closeCache()
		return nil, nil, err
	}
	schemas, err := adapters.NewSchemaClient(httpClient, a.cfg.API.BaseURL, a.cfg.API.Timeout.Duration)
	if err != nil {
		closeCache()
		return nil, nil, err
	}

	var beacon adapters.Beacon
	if a.cfg.Telemetry.Enabled {
		b, err := adapters.NewHTTPBeacon(httpClient, a.cfg.Telemetry.Endpoint)
		if err != nil {
			closeCache()
			return nil, nil, err
		}
		beacon = b
	}

	gen, err := generator.NewAvatarGenerator(core, schemas, a.cfg.API.BaseURL, beacon)
	if err != nil {
		closeCache()
		return nil, nil, err
	}

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), adapters.TelemetryTimeout)
		defer cancel()
		if err := gen.Close(ctx); err != nil {
			slog.Debug("利用統計の送信完了を待てませんでした", "error", err)
		}
		closeCache()
	}
	return gen, cleanup, nil
}
