package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/shouni/dicebear-kit/pkg/domain"
)

func newAvatarCmd(a *app) *cobra.Command {
	var (
		flags   requestFlags
		output  string
		convert string
	)

	cmd := &cobra.Command{
		Use:   "avatar",
		Short: "Download an avatar",
		Example: `  dicebear avatar --style bottts --seed alice -o alice.svg
  dicebear avatar -s pixel-art -f png --size 128 --bg "#aabbcc" -o a.png
  dicebear avatar -s lorelei -f svg --convert png -o a.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			req, err := flags.build(cmd, a)
			if err != nil {
				return err
			}

			gen, cleanup, err := a.newGenerator()
			if err != nil {
				return err
			}
			defer cleanup()

			resp, err := gen.Generate(ctx, req)
			if err != nil {
				return err
			}
			if convert != "" {
				target, err := domain.FormatFromName(convert)
				if err != nil {
					return err
				}
				if resp, err = gen.Convert(ctx, req, resp, target); err != nil {
					return err
				}
			}

			slog.InfoContext(ctx, "アバターを生成しました", "style", req.Style, "seed", resp.Seed, "format", resp.Format, "bytes", len(resp.Data))
			return writeOutput(ctx, cmd.OutOrStdout(), output, resp)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file or gs:// / s3:// URI (stdout when empty)")
	cmd.Flags().StringVar(&convert, "convert", "", "convert the result to another format")
	return cmd
}

func newURLCmd(a *app) *cobra.Command {
	var flags requestFlags

	cmd := &cobra.Command{
		Use:   "url",
		Short: "Print the request URL for an avatar without downloading it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.build(cmd, a)
			if err != nil {
				return err
			}
			gen, cleanup, err := a.newGenerator()
			if err != nil {
				return err
			}
			defer cleanup()

			u, err := gen.URL(req)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), u)
			return err
		},
	}

	flags.register(cmd)
	return cmd
}

// writeOutput writes the avatar to uri, or to w when uri is empty.
// Raster data is never written to an interactive terminal.
func writeOutput(ctx context.Context, w io.Writer, uri string, resp *domain.AvatarResponse) error {
	if uri == "" {
		if f, ok := w.(*os.File); ok && resp.Format.IsRaster() && term.IsTerminal(int(f.Fd())) {
			return fmt.Errorf("refusing to write %s data to a terminal; use --output", resp.Format)
		}
		_, err := w.Write(resp.Data)
		return err
	}

	if path.Ext(uri) == "" {
		uri += resp.Format.Extension()
	}
	_, writer, closeStorage, err := newStorage(ctx, uri)
	if err != nil {
		return err
	}
	defer closeStorage()

	if err := writer.Write(ctx, uri, bytes.NewReader(resp.Data), resp.MimeType); err != nil {
		return fmt.Errorf("出力先への書き込みに失敗しました: %w", err)
	}
	return nil
}
