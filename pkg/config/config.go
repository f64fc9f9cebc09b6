package config

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/shouni/go-remote-io/pkg/remoteio"
	"gopkg.in/yaml.v3"

	"github.com/shouni/dicebear-kit/pkg/adapters"
	"github.com/shouni/dicebear-kit/pkg/domain"
)

// Config は CLI やアプリケーションから DiceBear を使う際の設定です。
type Config struct {
	API       APIConfig       `toml:"api" yaml:"api"`
	Cache     CacheConfig     `toml:"cache" yaml:"cache"`
	Telemetry TelemetryConfig `toml:"telemetry" yaml:"telemetry"`
	Defaults  DefaultsConfig  `toml:"defaults" yaml:"defaults"`
}

type APIConfig struct {
	BaseURL string   `toml:"base_url" yaml:"base_url"`
	Timeout Duration `toml:"timeout" yaml:"timeout"`
}

type CacheConfig struct {
	TTL       Duration `toml:"ttl" yaml:"ttl"`
	RedisAddr string   `toml:"redis_addr" yaml:"redis_addr"` // 空ならメモリキャッシュ
}

type TelemetryConfig struct {
	Enabled  bool   `toml:"enabled" yaml:"enabled"`
	Endpoint string `toml:"endpoint" yaml:"endpoint"`
}

// DefaultsConfig はコマンドラインで省略されたときに使う生成パラメータです。
// Options のキーは DiceBear のパラメータ名 (flip, rotate, backgroundColor ...) です。
type DefaultsConfig struct {
	Style   string         `toml:"style" yaml:"style"`
	Format  string         `toml:"format" yaml:"format"`
	Options map[string]any `toml:"options" yaml:"options"`
}

// Duration は "10s" のような文字列で書ける time.Duration です。
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Default はファイルが指定されなかった場合の設定を返します。
func Default() Config {
	return Config{
		API:   APIConfig{BaseURL: adapters.DefaultBaseURL, Timeout: Duration{adapters.DefaultSchemaTimeout}},
		Cache: CacheConfig{TTL: Duration{time.Hour}},
		Telemetry: TelemetryConfig{
			Endpoint: adapters.DefaultTelemetryEndpoint,
		},
		Defaults: DefaultsConfig{
			Style:  string(domain.StyleAdventurer),
			Format: string(domain.FormatSVG),
		},
	}
}

// Load は reader 経由で uri の設定ファイルを読み込みます。
// 拡張子が .toml なら TOML、.yaml/.yml なら YAML として解釈し、未指定の項目は Default の値を使います。
func Load(ctx context.Context, reader remoteio.InputReader, uri string) (Config, error) {
	if reader == nil {
		return Config{}, fmt.Errorf("reader is required")
	}
	rc, err := reader.Open(ctx, uri)
	if err != nil {
		return Config{}, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return Config{}, fmt.Errorf("設定ファイルの読み込みに失敗しました: %w", err)
	}

	cfg := Default()
	switch ext := strings.ToLower(path.Ext(uri)); ext {
	case ".toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("TOML の解析に失敗しました: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("YAML の解析に失敗しました: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("未対応の設定ファイル形式です: %q", ext)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate は設定値の整合性を確認します。
func (c Config) Validate() error {
	if _, err := adapters.ValidateBaseURL(c.API.BaseURL); err != nil {
		return fmt.Errorf("api.base_url: %w", err)
	}
	if c.Defaults.Style != "" {
		if _, err := domain.StyleFromName(c.Defaults.Style); err != nil {
			return fmt.Errorf("defaults.style: %w", err)
		}
	}
	if c.Defaults.Format != "" {
		if _, err := domain.FormatFromName(c.Defaults.Format); err != nil {
			return fmt.Errorf("defaults.format: %w", err)
		}
	}
	if _, err := c.DefaultOptions(); err != nil {
		return fmt.Errorf("defaults.options: %w", err)
	}
	return nil
}

// DefaultOptions は defaults.options を Options に変換します。
func (c Config) DefaultOptions() (domain.Options, error) {
	return domain.OptionsFromMap(c.Defaults.Options)
}
