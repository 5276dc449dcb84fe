package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"wsa-guard/network"
	"wsa-guard/probe/internal/journal"
	"wsa-guard/probe/internal/service"
)

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(value))
}

func version(v uint16) string {
	major, minor := network.SplitVersion(v)
	return fmt.Sprintf("%d.%d", major, minor)
}

// Render formats a single probe result.
func Render(r service.Result) string {
	var b strings.Builder
	if r.OK() {
		b.WriteString(titleStyle.Render("wsa startup ok"))
	} else {
		b.WriteString(failTitleStyle.Render("wsa startup failed"))
	}
	b.WriteString("\n\n")

	rows := []string{
		row("run", r.RunID),
		row("requested", fmt.Sprintf("%d.%d", r.Major, r.Minor)),
	}
	if r.OK() {
		rows = append(rows,
			row("negotiated", version(r.Data.Version)),
			row("highest", version(r.Data.HighVersion)),
			row("description", r.Data.DescriptionString()),
			row("status", r.Data.SystemStatusString()),
		)
	} else {
		rows = append(rows,
			row("kind", r.Err.Kind.String()),
			row("code", fmt.Sprintf("%d", r.Err.Code)),
		)
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	if !r.OK() {
		b.WriteString("\n\n")
		b.WriteString(failStyle.Render(r.Err.Error()))
	}
	return docStyle.Render(b.String())
}

// History formats journal entries, newest first.
func History(probes []journal.Probe) string {
	if len(probes) == 0 {
		return docStyle.Render("no earlier probes")
	}
	lines := make([]string, 0, len(probes))
	for _, p := range probes {
		outcome := okStyle.Render("ok  ")
		detail := version(p.Negotiated)
		if !p.OK {
			outcome = failStyle.Render("fail")
			detail = fmt.Sprintf("%s (%d)", p.Kind, p.Status)
		}
		lines = append(lines, fmt.Sprintf("%s  %s  %d.%d  %s",
			p.CreatedAt.Format("2006-01-02 15:04:05"), outcome, p.RequestedMajor, p.RequestedMinor, detail))
	}
	return docStyle.Render(strings.Join(lines, "\n"))
}
