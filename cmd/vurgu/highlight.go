package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hukuksozluk/vurgu/internal/article"
	"github.com/hukuksozluk/vurgu/internal/assets"
	"github.com/hukuksozluk/vurgu/internal/cli"
	"github.com/hukuksozluk/vurgu/internal/highlight"
	"github.com/hukuksozluk/vurgu/internal/pdf"
	"github.com/hukuksozluk/vurgu/internal/session"
)

type outputFormat string

func (f *outputFormat) Set(val string) error {
	for _, format := range allOutputFormats {
		if val == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid format: %s", val)
}

func (f outputFormat) String() string {
	return string(f)
}

func (f *outputFormat) Type() string {
	return "format"
}

const (
	formatTerminal outputFormat = "terminal"
	formatHTML     outputFormat = "html"

	articleTimeout = 30 * time.Second
)

var (
	_                pflag.Value = (*outputFormat)(nil)
	allOutputFormats             = []outputFormat{formatTerminal, formatHTML}
)

type highlightOptions struct {
	file       string
	url        string
	explain    bool
	format     outputFormat
	reportPath string
	pdf        bool
}

func newHighlightCommand() *cobra.Command {
	options := highlightOptions{format: formatTerminal}

	cmd := &cobra.Command{
		Use:   "highlight [text]",
		Short: "Highlight legal terms and list their definitions",
		Long: "Highlight legal terms in the given text, a file (--file), a web page (--url) " +
			"or standard input, and list their definitions.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := options.validate(args); err != nil {
				return err
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			input, title, err := readInput(ctx, args, options, cmd.InOrStdin())
			if err != nil {
				return err
			}

			a, err := newApp(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = a.Close()
			}()

			state := session.New()
			if _, err := a.highlighter.Run(ctx, state, input); err != nil {
				return fmt.Errorf("highlighter.Run > %w", err)
			}
			if options.explain {
				if _, err := a.highlighter.Explain(ctx, state); err != nil {
					return fmt.Errorf("highlighter.Explain > %w", err)
				}
			}

			if err := printState(cmd.OutOrStdout(), options.format, state); err != nil {
				return err
			}
			if options.reportPath == "" {
				return nil
			}
			return exportReport(options, cfg.Templates.ReportTemplate, assets.Report{
				Title:  title,
				Source: options.url,
			}, state)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&options.file, "file", "", "read the text from a file")
	flags.StringVar(&options.url, "url", "", "read the main text of a web page")
	flags.BoolVar(&options.explain, "explain", false, "generate a plain-language explanation")
	flags.Var(&options.format, "format", fmt.Sprintf("output format. Possible values are %v", allOutputFormats))
	flags.StringVar(&options.reportPath, "report", "", "write a markdown report to this .md path")
	flags.BoolVar(&options.pdf, "pdf", false, "also convert the report to PDF, requires --report")
	return cmd
}

func (options highlightOptions) validate(args []string) error {
	sources := 0
	for _, given := range []bool{len(args) > 0, options.file != "", options.url != ""} {
		if given {
			sources++
		}
	}
	if sources > 1 {
		return errors.New("only one of text argument, --file and --url can be given")
	}
	if options.pdf && options.reportPath == "" {
		return errors.New("--pdf requires --report")
	}
	if options.reportPath != "" && !strings.HasSuffix(options.reportPath, ".md") {
		return fmt.Errorf("--report must have .md extension: %s", options.reportPath)
	}
	return nil
}

// readInput returns the text to highlight and a title for reports.
func readInput(ctx context.Context, args []string, options highlightOptions, stdin io.Reader) (string, string, error) {
	var input, title string
	switch {
	case options.url != "":
		fetched, err := article.NewFetcher(articleTimeout).Fetch(ctx, options.url)
		if err != nil {
			return "", "", fmt.Errorf("article.Fetch(%s) > %w", options.url, err)
		}
		input, title = fetched.Text, fetched.Title
	case options.file != "":
		content, err := os.ReadFile(options.file)
		if err != nil {
			return "", "", fmt.Errorf("os.ReadFile(%s) > %w", options.file, err)
		}
		input = string(content)
	case len(args) > 0:
		input = strings.Join(args, " ")
	default:
		content, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", fmt.Errorf("io.ReadAll(stdin) > %w", err)
		}
		input = string(content)
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return "", "", errors.New("no text to highlight")
	}
	return input, title, nil
}

func printState(w io.Writer, format outputFormat, state *session.State) error {
	switch format {
	case formatHTML:
		return cli.PrintHTML(w, state)
	default:
		return cli.PrintTerminal(w, state)
	}
}

func exportReport(options highlightOptions, templatePath string, report assets.Report, state *session.State) error {
	report.Highlighted = highlight.Markdown(state.Segments)
	report.Explanation = state.Explanation
	for _, definition := range state.Definitions() {
		report.Terms = append(report.Terms, assets.ReportTerm{
			Term:       definition.Term,
			Definition: definition.Definition,
		})
	}

	output, err := os.Create(options.reportPath)
	if err != nil {
		return fmt.Errorf("os.Create(%s) > %w", options.reportPath, err)
	}
	if err := assets.RenderReport(output, templatePath, report); err != nil {
		_ = output.Close()
		return fmt.Errorf("assets.RenderReport > %w", err)
	}
	if err := output.Close(); err != nil {
		return fmt.Errorf("output.Close > %w", err)
	}
	slog.Default().Info("wrote report", "path", options.reportPath)

	if !options.pdf {
		return nil
	}
	pdfPath, err := pdf.ConvertMarkdownToPDF(options.reportPath)
	if err != nil {
		return fmt.Errorf("pdf.ConvertMarkdownToPDF > %w", err)
	}
	slog.Default().Info("wrote pdf", "path", pdfPath)
	return nil
}
