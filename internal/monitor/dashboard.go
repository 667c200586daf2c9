// Package monitor is the full-screen live view over a remote's job listing.
package monitor

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/s22625/agentcli/internal/model"
	"github.com/s22625/agentcli/internal/remote"
)

const (
	defaultRefreshInterval = 3 * time.Second
	fetchTimeout           = 10 * time.Second
)

// Dashboard is the bubbletea model for the jobs view.
type Dashboard struct {
	client *remote.Client

	jobs   []model.Job
	cursor int
	offset int
	width  int
	height int

	message         string
	refreshing      bool
	lastRefresh     time.Time
	refreshInterval time.Duration

	keymap KeyMap
	styles Styles
}

type jobsMsg struct {
	jobs []model.Job
}

type errMsg struct {
	err error
}

type tickMsg time.Time

// NewDashboard creates a dashboard over the given client.
func NewDashboard(client *remote.Client) *Dashboard {
	return &Dashboard{
		client:          client,
		keymap:          DefaultKeyMap(),
		styles:          DefaultStyles(),
		refreshInterval: defaultRefreshInterval,
	}
}

// Run starts the bubbletea program and blocks until the operator quits.
func Run(client *remote.Client) error {
	program := tea.NewProgram(NewDashboard(client), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// Init implements tea.Model.
func (d *Dashboard) Init() tea.Cmd {
	d.refreshing = true
	return tea.Batch(d.refreshCmd(), d.tickCmd())
}

// Update implements tea.Model.
func (d *Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.width = msg.Width
		d.height = msg.Height
		return d, nil

	case jobsMsg:
		d.jobs = msg.jobs
		d.refreshing = false
		d.message = ""
		d.lastRefresh = time.Now()
		if d.cursor >= len(d.jobs) {
			d.cursor = len(d.jobs) - 1
			if d.cursor < 0 {
				d.cursor = 0
			}
		}
		d.ensureCursorVisible()
		return d, nil

	case errMsg:
		// A failed fetch keeps the previous listing on screen.
		d.refreshing = false
		d.message = msg.err.Error()
		return d, nil

	case tickMsg:
		if d.refreshing {
			return d, d.tickCmd()
		}
		d.refreshing = true
		return d, tea.Batch(d.refreshCmd(), d.tickCmd())

	case tea.KeyMsg:
		return d.handleKey(msg)
	}

	return d, nil
}

func (d *Dashboard) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return d, tea.Quit
	case "r":
		if !d.refreshing {
			d.refreshing = true
			return d, d.refreshCmd()
		}
	case "j", "down":
		if d.cursor < len(d.jobs)-1 {
			d.cursor++
			d.ensureCursorVisible()
		}
	case "k", "up":
		if d.cursor > 0 {
			d.cursor--
			d.ensureCursorVisible()
		}
	}
	return d, nil
}

// View implements tea.Model.
func (d *Dashboard) View() string {
	title := d.styles.Title.Render("AGENT JOBS — " + d.client.Remote().Name)
	meta := d.renderMeta()
	table := d.renderTable(d.tableMaxRows())
	footer := d.styles.Muted.Render(d.keymap.HelpLine())

	lines := []string{title, "", meta, "", table}
	if d.message != "" {
		lines = append(lines, "", d.styles.Error.Render(truncate(d.message, d.safeWidth())))
	}
	lines = append(lines, "", footer)
	return strings.Join(lines, "\n")
}

func (d *Dashboard) renderMeta() string {
	refreshed := "never"
	if !d.lastRefresh.IsZero() {
		refreshed = d.lastRefresh.Format("15:04:05")
	}
	state := ""
	if d.refreshing {
		state = "  refreshing..."
	}
	return d.styles.Muted.Render(fmt.Sprintf("%d jobs  last refresh %s%s", len(d.jobs), refreshed, state))
}

func (d *Dashboard) renderTable(maxRows int) string {
	if len(d.jobs) == 0 {
		return d.styles.Muted.Render("No jobs found.")
	}

	idW, tsW, methodW, statusW, orgW, repoW := 6, 19, 14, 10, 10, 12
	promptW := d.safeWidth() - (idW + tsW + methodW + statusW + orgW + repoW + 12)
	if promptW < 12 {
		promptW = 12
	}

	header := fmt.Sprintf("%s  %s  %s  %s  %s  %s  %s",
		cell("ID", idW), cell("Timestamp", tsW), cell("Method", methodW),
		cell("Status", statusW), cell("Prompt", promptW), cell("Org", orgW), cell("Repo", repoW))
	rows := []string{d.styles.Header.Render(header)}

	end := d.offset + maxRows
	if end > len(d.jobs) {
		end = len(d.jobs)
	}
	for i := d.offset; i < end; i++ {
		j := d.jobs[i]
		status := d.styles.StatusStyle(j.Status).Render(cell(string(j.Status), statusW))
		line := fmt.Sprintf("%s  %s  %s  %s  %s  %s  %s",
			cell(j.ID.String(), idW), cell(j.Timestamp, tsW), cell(j.Method, methodW),
			status, cell(j.Prompt, promptW), cell(j.Org, orgW), cell(j.Repo, repoW))
		if i == d.cursor {
			plain := fmt.Sprintf("%s  %s  %s  %s  %s  %s  %s",
				cell(j.ID.String(), idW), cell(j.Timestamp, tsW), cell(j.Method, methodW),
				cell(string(j.Status), statusW), cell(j.Prompt, promptW), cell(j.Org, orgW), cell(j.Repo, repoW))
			line = d.styles.Selected.Render(plain)
		}
		rows = append(rows, line)
	}

	return strings.Join(rows, "\n")
}

func (d *Dashboard) tableMaxRows() int {
	// title + blanks + meta + header + message + footer
	reserved := 9
	rows := d.height - reserved
	if rows < 3 {
		rows = 3
	}
	return rows
}

func (d *Dashboard) ensureCursorVisible() {
	maxRows := d.tableMaxRows()
	if d.cursor < d.offset {
		d.offset = d.cursor
	}
	if d.cursor >= d.offset+maxRows {
		d.offset = d.cursor - maxRows + 1
	}
	if d.offset < 0 {
		d.offset = 0
	}
}

func (d *Dashboard) safeWidth() int {
	if d.width <= 0 {
		return 120
	}
	return d.width
}

func (d *Dashboard) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		jobs, err := d.client.Jobs(ctx)
		if err != nil {
			return errMsg{err: err}
		}
		return jobsMsg{jobs: jobs}
	}
}

func (d *Dashboard) tickCmd() tea.Cmd {
	return tea.Tick(d.refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// cell truncates or pads a value to a fixed display width.
func cell(s string, width int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if runewidth.StringWidth(s) > width {
		s = truncate(s, width)
	}
	return s + strings.Repeat(" ", width-runewidth.StringWidth(s))
}

func truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 1 {
		return strings.Repeat(".", width)
	}

	target := width - 1
	var b strings.Builder
	w := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > target {
			break
		}
		b.WriteRune(r)
		w += rw
	}
	return b.String() + "…"
}
