package main

import (
	"fmt"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/spf13/cobra"
	"github.com/yosssi/gohtml"
)

const (
	formatHTML     = "html"
	formatMarkdown = "markdown"
)

func newRenderCmd(opts *options) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "render <page>",
		Short: "Render a page to stdout",
		Long: `Render a configured page (for example "/about") exactly as the
server would, reading sections from the content repository. The output is
formatted HTML or Markdown.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			site, err := opts.build()
			if err != nil {
				return err
			}
			page, ok := site.Site.Page(args[0])
			if !ok {
				return fmt.Errorf("unknown page %q", args[0])
			}

			h := site.Pages(nil)
			h.Page = page
			body, err := h.Render(cmd.Context())
			if err != nil {
				return err
			}

			out, err := formatPage(body, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", formatHTML, "output format: html or markdown")
	return cmd
}

func formatPage(body []byte, format string) ([]byte, error) {
	switch format {
	case formatHTML:
		return append(gohtml.FormatBytes(body), '\n'), nil
	case formatMarkdown:
		conv := converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
			),
		)
		md, err := conv.ConvertString(string(body))
		if err != nil {
			return nil, fmt.Errorf("convert to markdown: %w", err)
		}
		return []byte(md + "\n"), nil
	default:
		return nil, fmt.Errorf("unknown format %q (want html or markdown)", format)
	}
}
