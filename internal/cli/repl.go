// Package cli implements the assistant's interactive command loop: read a
// line, tokenize it, dispatch to the matching handler, print the result,
// repeat until close/exit or end of input.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ykarpenko/assistant-bot/internal/app"
	"github.com/ykarpenko/assistant-bot/internal/handler"
	"github.com/ykarpenko/assistant-bot/internal/logger"
)

// REPL is the synchronous command loop. It owns the input and output streams
// and delegates every parsed command to the handler layer.
type REPL struct {
	handler *handler.Handler
	in      io.Reader
	out     io.Writer
	logger  *logger.Logger
}

// New constructs a REPL reading commands from in and printing replies to out.
func New(h *handler.Handler, in io.Reader, out io.Writer, logger *logger.Logger) *REPL {
	return &REPL{
		handler: h,
		in:      in,
		out:     out,
		logger:  logger,
	}
}

// Run executes the command loop until the user types close/exit or the input
// stream ends. Malformed input never stops the loop: every handler error is
// converted to a printed message and the next command is read.
func (r *REPL) Run(ctx context.Context) error {
	fmt.Fprintln(r.out, titleStyle.Render(app.MsgWelcome))

	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(r.out, promptStyle.Render(app.MsgPrompt))

		if !scanner.Scan() {
			// EOF behaves like close: the caller flushes the snapshot
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		verb := strings.ToLower(parts[0])
		args := parts[1:]

		if verb == "close" || verb == "exit" {
			fmt.Fprintln(r.out, titleStyle.Render(app.MsgGoodBye))
			return nil
		}

		reply, err := r.handler.Handle(ctx, verb, args)
		if err != nil {
			r.logger.Debug().
				Err(err).
				Str("func", "REPL.Run").
				Str("verb", verb).
				Msg("command failed")
			fmt.Fprintln(r.out, errorStyle.Render(handler.MessageFromError(err)))
			continue
		}

		fmt.Fprintln(r.out, reply)
	}

	return scanner.Err()
}
