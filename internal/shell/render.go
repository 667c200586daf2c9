package shell

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/s22625/agentcli/internal/config"
	"github.com/s22625/agentcli/internal/model"
)

const maxCellWidth = 60

// renderTable lays out rows under a styled header line. Column widths fit
// the widest cell, capped at maxCellWidth.
func renderTable(st Styles, title string, headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				continue
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		if widths[i] > maxCellWidth {
			widths[i] = maxCellWidth
		}
	}

	var b strings.Builder
	if title != "" {
		b.WriteString(st.Title.Render(title))
		b.WriteString("\n")
	}

	headerCells := make([]string, len(headers))
	for i, h := range headers {
		headerCells[i] = pad(h, widths[i])
	}
	b.WriteString(st.Header.Render(strings.Join(headerCells, "  ")))
	b.WriteString("\n")

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			w := maxCellWidth
			if i < len(widths) {
				w = widths[i]
			}
			cells[i] = pad(cell, w)
		}
		b.WriteString(strings.Join(cells, "  "))
		b.WriteString("\n")
	}

	return b.String()
}

// renderPanel wraps content in a bordered panel with an optional title.
func renderPanel(st Styles, title, content string) string {
	if title != "" {
		return st.Panel.Render(st.Title.Render(title) + "\n" + content)
	}
	return st.Panel.Render(content)
}

// renderJSON pretty-prints a raw JSON body for display, falling back to the
// raw text when the body is not valid JSON.
func renderJSON(raw []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(raw), "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}

// renderHelp lists the shell commands.
func renderHelp(st Styles) string {
	rows := [][]string{
		{"/help", "Show this help message"},
		{"/config", "Show current configuration"},
		{"/remotes", "List configured remote agents"},
		{"/jobs", "List running and completed jobs"},
		{"/watch", "Open the live jobs dashboard"},
		{"/history", "Show recent prompts"},
		{"/clear", "Clear the terminal screen"},
		{"/exit", "Quit the CLI"},
		{"/run <text>", "Submit a prompt for execution"},
		{"text without / prefix", "Automatically treated as a /run command"},
	}
	return renderTable(st, "Available Commands", []string{"Command", "Description"}, rows)
}

// renderSettings shows the effective session settings.
func renderSettings(st Styles, s config.Settings) string {
	rows := [][]string{
		{"method", s.Method},
		{"batch", fmt.Sprintf("%d", s.Batch)},
		{"model", s.Model},
		{"org", s.Org},
		{"repo", s.Repo},
		{"source_branch", s.SourceBranch},
		{"target_branch", s.TargetBranch},
		{"branch_prefix", s.BranchPrefix},
	}
	return renderTable(st, "Current Configuration", []string{"Setting", "Value"}, rows)
}

// renderRemotes shows the configured remote list.
func renderRemotes(st Styles, remotes []model.Remote) string {
	if len(remotes) == 0 {
		return st.Warn.Render("No remote agents configured")
	}
	rows := make([][]string, 0, len(remotes))
	for i, r := range remotes {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1), r.Name, r.IP, fmt.Sprintf("%d", r.Port),
		})
	}
	return renderTable(st, "Configured Remote Agents", []string{"#", "Name", "IP", "Port"}, rows)
}

// RenderJobs shows the remote's job listing. Exported because the jobs
// subcommand shares this table with the shell's /jobs.
func RenderJobs(st Styles, jobs []model.Job) string {
	if len(jobs) == 0 {
		return st.Muted.Render("No jobs found")
	}
	rows := make([][]string, 0, len(jobs))
	for _, j := range jobs {
		rows = append(rows, []string{
			j.ID.String(),
			j.Timestamp,
			j.Method,
			string(j.Status),
			j.Prompt,
			j.Org,
			j.Repo,
		})
	}
	return renderTable(st, "Agent Requests",
		[]string{"ID", "Timestamp", "Method", "Status", "Prompt", "Org", "Repo"}, rows)
}

// pad truncates or right-pads a cell to the given display width.
func pad(s string, width int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if runewidth.StringWidth(s) > width {
		s = truncate(s, width)
	}
	return s + strings.Repeat(" ", width-runewidth.StringWidth(s))
}

// truncate cuts a string to a display width, appending an ellipsis when
// anything was removed.
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
