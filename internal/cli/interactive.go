// Package cli holds the terminal front end of the highlighter.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"

	"github.com/hukuksozluk/vurgu/internal/pipeline"
	"github.com/hukuksozluk/vurgu/internal/session"
)

const (
	CommandExplain = ":explain"
	CommandReset   = ":reset"
	CommandQuit    = ":quit"
)

var errEnd = errors.New("end of input")

//go:generate mockgen -source=interactive.go -destination=../mocks/cli/mock_highlighter.go -package=mock_cli

// Highlighter is the part of pipeline.Highlighter the interactive CLI drives.
type Highlighter interface {
	Run(ctx context.Context, state *session.State, input string) (pipeline.Stats, error)
	Explain(ctx context.Context, state *session.State) (string, error)
}

// InteractiveCLI reads one text per line and prints it highlighted. Lines
// starting with ':' are commands.
type InteractiveCLI struct {
	highlighter  Highlighter
	state        *session.State
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	warning      *color.Color
}

func NewInteractiveCLI(highlighter Highlighter, stdin io.Reader, stdout io.Writer) *InteractiveCLI {
	return &InteractiveCLI{
		highlighter:  highlighter,
		state:        session.New(),
		stdinReader:  bufio.NewReader(stdin),
		stdoutWriter: stdout,
		bold:         color.New(color.Bold),
		warning:      color.New(color.FgYellow),
	}
}

func (cli *InteractiveCLI) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	_, _ = cli.bold.Fprintf(cli.stdoutWriter,
		"Metni girin (%s, %s, %s)\n", CommandExplain, CommandReset, CommandQuit,
	)

	errCh := cli.readLoop(ctx)
	select {
	case <-ctx.Done():
		_, _ = fmt.Fprintln(cli.stdoutWriter, "Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}

// readLoop runs sessions until the input ends or fails. The channel is
// buffered so the loop can finish after Run stopped listening.
func (cli *InteractiveCLI) readLoop(ctx context.Context) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)

		for {
			select {
			case <-ctx.Done():
				return
			default:
			}

			if err := cli.Session(ctx); err != nil {
				if !errors.Is(err, errEnd) {
					errCh <- err
				}
				return
			}
		}
	}()
	return errCh
}

// Session handles one input line.
func (cli *InteractiveCLI) Session(ctx context.Context) error {
	_, _ = fmt.Fprint(cli.stdoutWriter, "> ")
	line, err := cli.stdinReader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("stdinReader.ReadString > %w", err)
	}
	eof := errors.Is(err, io.EOF)
	line = strings.TrimSpace(line)

	switch line {
	case "":
		if eof {
			return errEnd
		}
		return nil
	case CommandQuit:
		return errEnd
	case CommandReset:
		cli.state.Reset()
		_, _ = fmt.Fprintln(cli.stdoutWriter, "Oturum sıfırlandı.")
	case CommandExplain:
		if _, err := cli.highlighter.Explain(ctx, cli.state); err != nil {
			if errors.Is(err, pipeline.ErrNoDefinitions) {
				_, _ = cli.warning.Fprintln(cli.stdoutWriter, "Açıklama için önce terimleri getirin.")
			} else {
				_, _ = cli.warning.Fprintf(cli.stdoutWriter, "Açıklama oluşturulamadı: %v\n", err)
			}
			break
		}
		if err := PrintTerminal(cli.stdoutWriter, cli.state); err != nil {
			return err
		}
	default:
		if _, err := cli.highlighter.Run(ctx, cli.state, line); err != nil {
			_, _ = cli.warning.Fprintf(cli.stdoutWriter, "Terimler alınamadı: %v\n", err)
			break
		}
		if err := PrintTerminal(cli.stdoutWriter, cli.state); err != nil {
			return err
		}
	}

	if eof {
		return errEnd
	}
	return nil
}
