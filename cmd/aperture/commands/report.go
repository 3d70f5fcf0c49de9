package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agiangrant/aperture"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB")).
			Width(34)

	yesStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	noStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666666"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type report struct {
	Diagnostics  aperture.Diagnostics
	SteamRunning bool

	Subscribed    bool
	LowViolence   bool
	FamilySharing bool
	FreeWeekend   bool
	VACBanned     bool
	DLCCount      uint32

	Apps []appStatus
}

type appStatus struct {
	ID           uint32
	Subscribed   bool
	DLCInstalled bool
}

type row struct {
	label string
	value string
	flag  *bool
}

func textRow(label, value string) row {
	return row{label: label, value: value}
}

func boolRow(label string, v bool) row {
	return row{label: label, flag: &v}
}

func (r report) rows() []row {
	d := r.Diagnostics
	rows := []row{
		textRow("library", d.LibraryPath),
		textRow("platform", string(d.Platform)),
		textRow("session", d.Session),
		textRow("apps accessor", d.AppsSymbol),
	}
	if len(d.AppsMisses) > 0 {
		rows = append(rows, textRow("apps accessor misses", strings.Join(d.AppsMisses, ", ")))
	}
	rows = append(rows,
		boolRow("steam running", r.SteamRunning),
		boolRow("subscribed", r.Subscribed),
		boolRow("low violence", r.LowViolence),
		boolRow("subscribed from family sharing", r.FamilySharing),
		boolRow("subscribed from free weekend", r.FreeWeekend),
		boolRow("vac banned", r.VACBanned),
		textRow("dlc count", fmt.Sprint(r.DLCCount)),
	)
	for _, app := range r.Apps {
		rows = append(rows,
			boolRow(fmt.Sprintf("app %d subscribed", app.ID), app.Subscribed),
			boolRow(fmt.Sprintf("app %d dlc installed", app.ID), app.DLCInstalled),
		)
	}
	return rows
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// renderReport formats r as aligned label/value lines. Styling is applied
// only when fancy is set.
func renderReport(r report, fancy bool) string {
	var b strings.Builder

	if fancy {
		b.WriteString(titleStyle.Render("Steamworks runtime"))
	} else {
		b.WriteString("Steamworks runtime")
	}
	b.WriteString("\n\n")

	for _, row := range r.rows() {
		value := row.value
		if row.flag != nil {
			value = yesNo(*row.flag)
		}

		if !fancy {
			fmt.Fprintf(&b, "%-34s%s\n", row.label, value)
			continue
		}

		style := valueStyle
		if row.flag != nil {
			style = noStyle
			if *row.flag {
				style = yesStyle
			}
		}
		b.WriteString(labelStyle.Render(row.label))
		b.WriteString(style.Render(value))
		b.WriteByte('\n')
	}

	return b.String()
}
