// Package shell is the interactive operator surface: a REPL that dispatches
// slash commands and submits bare text as execution prompts.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"go.uber.org/zap"

	"github.com/s22625/agentcli/internal/config"
	"github.com/s22625/agentcli/internal/monitor"
	"github.com/s22625/agentcli/internal/remote"
	"github.com/s22625/agentcli/internal/request"
)

const statusLineWidth = 100

// Shell drives one interactive operator session. Configuration and settings
// are read-only after construction; each submission cycle is self-contained.
type Shell struct {
	cfg      *config.Config
	settings config.Settings
	styles   Styles
	in       *bufio.Reader
	out      io.Writer
	history  *History
	log      *zap.Logger
}

// New creates a shell reading from stdin and writing to stdout.
func New(cfg *config.Config, settings config.Settings, log *zap.Logger) *Shell {
	if log == nil {
		log = zap.NewNop()
	}
	return &Shell{
		cfg:      cfg,
		settings: settings,
		styles:   DefaultStyles(),
		in:       bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		history:  LoadHistory(DefaultHistoryFile),
		log:      log,
	}
}

// WithIO overrides the shell's input and output streams.
func (s *Shell) WithIO(in io.Reader, out io.Writer) *Shell {
	s.in = bufio.NewReader(in)
	s.out = out
	return s
}

// WithHistory overrides the prompt history store.
func (s *Shell) WithHistory(h *History) *Shell {
	s.history = h
	return s
}

// Run starts the REPL. It returns nil on operator-issued exit or EOF.
func (s *Shell) Run(ctx context.Context) error {
	s.printWelcome()

	for {
		fmt.Fprint(s.out, s.styles.PromptTag.Render("agent-cli> ")+" ")
		line, err := s.readLine()
		if err != nil {
			fmt.Fprintln(s.out, "\n"+s.styles.Success.Render("Goodbye!"))
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if s.dispatch(ctx, line) {
			fmt.Fprintln(s.out, s.styles.Success.Render("Goodbye!"))
			return nil
		}
	}
}

// dispatch handles one input line and reports whether the shell should quit.
// A panic inside a command is reported generically; the shell keeps going.
func (s *Shell) dispatch(ctx context.Context, line string) (quit bool) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("command panicked", zap.Any("panic", r), zap.String("input", line))
			fmt.Fprintln(s.out, s.styles.Error.Render(fmt.Sprintf("Internal error: %v", r)))
		}
	}()

	if !strings.HasPrefix(line, "/") {
		fmt.Fprintln(s.out, s.styles.Muted.Render("Executing as prompt..."))
		s.runPrompt(ctx, line)
		return false
	}

	cmd, args, _ := strings.Cut(line[1:], " ")
	cmd = strings.ToLower(cmd)
	args = strings.TrimSpace(args)

	switch cmd {
	case "help":
		fmt.Fprint(s.out, renderHelp(s.styles))
	case "config":
		fmt.Fprint(s.out, renderSettings(s.styles, s.settings))
	case "remotes":
		fmt.Fprintln(s.out, renderRemotes(s.styles, s.cfg.Remotes))
	case "jobs":
		s.showJobs(ctx)
	case "watch":
		s.watchJobs()
	case "history":
		s.showHistory()
	case "clear":
		fmt.Fprint(s.out, "\033[2J\033[H")
	case "exit":
		return true
	case "run":
		prompt := args
		if prompt == "" {
			prompt = s.readMultiline()
		}
		s.runPrompt(ctx, prompt)
	default:
		fmt.Fprintln(s.out, s.styles.Error.Render("Unknown command: /"+cmd))
		fmt.Fprintln(s.out, "Type "+s.styles.Success.Render("/help")+" for options")
	}

	return false
}

// RunOnce executes a single prompt without the interactive niceties. Used by
// the one-shot CLI path.
func (s *Shell) RunOnce(ctx context.Context, prompt string) error {
	return s.execute(ctx, prompt)
}

// runPrompt is the interactive submission path: it may offer multi-line
// entry for short prompts before executing.
func (s *Shell) runPrompt(ctx context.Context, prompt string) {
	if prompt != "" && request.NeedsExpansion(prompt) {
		if s.confirm("Do you want to enter a multiline prompt?") {
			prompt = s.readMultiline()
		}
	}
	if strings.TrimSpace(prompt) == "" {
		fmt.Fprintln(s.out, s.styles.Warn.Render("Prompt cannot be empty"))
		return
	}

	if err := s.execute(ctx, prompt); err != nil {
		s.reportError(err)
	}
}

// execute builds, submits, and, when an identifier comes back, polls.
func (s *Shell) execute(ctx context.Context, prompt string) error {
	req, err := request.Build(prompt, s.settings, s.cfg.Agents, s.cfg.Defaults.GHToken)
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, renderPanel(s.styles, "Prompt", req.Prompt))

	if err := s.history.Append(req.Prompt); err != nil {
		s.log.Warn("could not persist prompt history", zap.Error(err))
	}

	rm, err := config.PickRemote(s.cfg)
	if err != nil {
		return err
	}

	client := remote.NewClient(rm, s.log)
	fmt.Fprintln(s.out, s.styles.Info.Render("Executing on remote: ")+rm.Name)

	result, err := client.Submit(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, s.styles.Success.Render("Remote execution successful:"))
	fmt.Fprintln(s.out, renderJSON(result.Body))

	if result.RequestID == "" {
		return nil
	}

	fmt.Fprintln(s.out, s.styles.Info.Render("Tracking request ID: ")+result.RequestID)
	return s.poll(ctx, client, result.RequestID)
}

// poll tracks a submitted request on a rewriting status line until a
// terminal status. An interrupt stops watching but not the remote job.
func (s *Shell) poll(ctx context.Context, client *remote.Client, requestID string) error {
	pollCtx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	statusLine := func(text string) {
		fmt.Fprint(s.out, "\r"+pad(text, statusLineWidth))
	}

	final, err := remote.NewPoller(client, s.log).Poll(pollCtx, requestID, func(u remote.PollUpdate) {
		if u.Err != nil {
			statusLine(s.styles.Warn.Render("Status check failed: ") + u.Err.Error())
			return
		}
		statusLine(s.styles.Info.Render("Status: ") + s.styles.StatusStyle(u.Status.Status).Render(string(u.Status.Status)))
	})
	fmt.Fprintln(s.out)

	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(s.out, s.styles.Warn.Render("Stopped status polling. The request is still processing remotely."))
			return nil
		}
		return err
	}

	fmt.Fprintln(s.out, s.styles.Success.Render("Final result:"))
	fmt.Fprintln(s.out, renderJSON(final.Payload))
	return nil
}

func (s *Shell) showJobs(ctx context.Context) {
	rm, err := config.PickRemote(s.cfg)
	if err != nil {
		s.reportError(err)
		return
	}

	jobs, err := remote.NewClient(rm, s.log).Jobs(ctx)
	if err != nil {
		fmt.Fprintln(s.out, s.styles.Error.Render("Error fetching jobs: ")+err.Error())
		return
	}
	fmt.Fprint(s.out, RenderJobs(s.styles, jobs))
}

func (s *Shell) watchJobs() {
	rm, err := config.PickRemote(s.cfg)
	if err != nil {
		s.reportError(err)
		return
	}

	if err := monitor.Run(remote.NewClient(rm, s.log)); err != nil {
		fmt.Fprintln(s.out, s.styles.Error.Render("Dashboard error: ")+err.Error())
	}
}

func (s *Shell) showHistory() {
	entries := s.history.Recent(20)
	if len(entries) == 0 {
		fmt.Fprintln(s.out, s.styles.Muted.Render("No prompt history yet"))
		return
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Timestamp.Format("2006-01-02 15:04"), e.Prompt})
	}
	fmt.Fprint(s.out, renderTable(s.styles, "Recent Prompts", []string{"When", "Prompt"}, rows))
}

// reportError prints an operator-facing error line. "No remote configured"
// is a warning rather than a failure: there is no local fallback.
func (s *Shell) reportError(err error) {
	var verr *request.ValidationError
	switch {
	case errors.Is(err, config.ErrNoRemote):
		fmt.Fprintln(s.out, s.styles.Warn.Render("No remote configured; local execution is not implemented"))
	case errors.As(err, &verr):
		fmt.Fprintln(s.out, s.styles.Warn.Render(verr.Error()))
	default:
		fmt.Fprintln(s.out, s.styles.Error.Render("Error: ")+err.Error())
	}
}

func (s *Shell) printWelcome() {
	body := s.styles.Title.Render("Interactive Agent CLI") + "\n" +
		s.styles.Success.Render("Type your commands (type /help for options) or start typing to run a prompt")
	fmt.Fprintln(s.out, renderPanel(s.styles, "", body))
}

func (s *Shell) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return line, nil
		}
		return "", err
	}
	return line, nil
}

// readMultiline collects input lines until a lone "." line or EOF.
func (s *Shell) readMultiline() string {
	fmt.Fprintln(s.out, s.styles.Info.Render("Enter your multiline prompt (finish with a single '.' on its own line):"))

	var lines []string
	for {
		fmt.Fprint(s.out, "... ")
		line, err := s.readLine()
		if err != nil {
			break
		}
		trimmed := strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(trimmed) == "." {
			break
		}
		lines = append(lines, trimmed)
	}
	return strings.Join(lines, "\n")
}

func (s *Shell) confirm(question string) bool {
	fmt.Fprint(s.out, question+" (y/n): ")
	line, err := s.readLine()
	if err != nil {
		return false
	}
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "y")
}
