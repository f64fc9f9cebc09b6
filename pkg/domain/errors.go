package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidColorFormat は色指定が "transparent" でも 6 桁の16進数でもない場合のエラーです。
	ErrInvalidColorFormat = errors.New("invalid color format")
	// ErrUnknownStyle は DiceBear が提供していないスタイル名が指定された場合のエラーです。
	ErrUnknownStyle = errors.New("unknown avatar style")
	// ErrUnknownFormat は未対応の出力フォーマットが指定された場合のエラーです。
	ErrUnknownFormat = errors.New("unknown avatar format")
)

// InvalidColorError は検証に失敗した色セグメントを保持します。
type InvalidColorError struct {
	Segment string
}

func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidColorFormat, e.Segment)
}

func (e *InvalidColorError) Unwrap() error { return ErrInvalidColorFormat }

// RemoteRequestError は DiceBear API への通信、またはレスポンスの解析に失敗した場合のエラーです。
// Kind には原因の連鎖を最も内側までたどったエラーの型名が入ります。
type RemoteRequestError struct {
	Kind    string
	Message string
	Err     error
}

// NewRemoteRequestError は根本原因の型名とメッセージを保持した RemoteRequestError を生成します。
func NewRemoteRequestError(err error) *RemoteRequestError {
	return &RemoteRequestError{
		Kind:    fmt.Sprintf("%T", rootCause(err)),
		Message: err.Error(),
		Err:     err,
	}
}

func (e *RemoteRequestError) Error() string {
	return fmt.Sprintf("remote request failed (%s): %s", e.Kind, e.Message)
}

func (e *RemoteRequestError) Unwrap() error { return e.Err }

// rootCause は errors.Unwrap で取り出せる最も内側のエラーを返します。
func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
