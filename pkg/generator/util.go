package generator

import (
	"github.com/shouni/dicebear-kit/pkg/domain"
	"github.com/shouni/dicebear-kit/pkg/imgutil"
)

// detectMimeType はレスポンスの中身からMIMEタイプを決めるのだ。
// 判別できない場合は要求したフォーマットのものを使うのだよ。
func detectMimeType(data []byte, requested domain.Format) string {
	if f, ok := imgutil.DetectFormat(data); ok {
		return f.MimeType()
	}
	return requested.MimeType()
}
