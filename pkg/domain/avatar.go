package domain

import "fmt"

// AvatarRequest は単一のアバター生成要求です。
// Seed が空の場合は呼び出し側でランダムなシードが割り当てられます。
type AvatarRequest struct {
	Style   Style
	Seed    string
	Format  Format
	Options Options
	Extras  map[string]string // スタイル固有のパラメータ (schema.json 参照)
}

// Validate はスタイルとフォーマットが有効かを検証します。
func (r AvatarRequest) Validate() error {
	if !r.Style.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStyle, r.Style)
	}
	if !r.Format.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, r.Format)
	}
	return nil
}

// AvatarResponse は生成されたアバターデータとそのメタデータです。
type AvatarResponse struct {
	Data     []byte
	MimeType string
	Format   Format
	Seed     string
	URL      string // 取得元の URL。ローカル変換した場合は変換前のもの
}
