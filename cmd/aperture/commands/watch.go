package commands

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/agiangrant/aperture"
)

// pump is the part of the client the watch loop drives.
type pump interface {
	RunCallbacks()
	IsSteamRunning() bool
}

type tickMsg time.Time

type watchModel struct {
	pump     pump
	interval time.Duration
	fancy    bool

	frames  uint64
	running bool
	started time.Time
	last    time.Time
}

func newWatchModel(p pump, interval time.Duration, fancy bool) watchModel {
	return watchModel{
		pump:     p,
		interval: interval,
		fancy:    fancy,
		started:  time.Now(),
	}
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m watchModel) Init() tea.Cmd {
	return tick(m.interval)
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}

	case tickMsg:
		// One pump per frame
		m.pump.RunCallbacks()
		m.frames++
		m.running = m.pump.IsSteamRunning()
		m.last = time.Time(msg)
		return m, tick(m.interval)
	}

	return m, nil
}

func (m watchModel) View() string {
	var b strings.Builder

	title := "Steam callback pump"
	if m.fancy {
		title = titleStyle.Render(title)
	}
	b.WriteString(title)
	b.WriteString("\n\n")

	running := yesNo(m.running)
	if m.fancy {
		if m.running {
			running = yesStyle.Render(running)
		} else {
			running = noStyle.Render(running)
		}
	}

	fmt.Fprintf(&b, "frames pumped   %d\n", m.frames)
	fmt.Fprintf(&b, "frame interval  %s\n", m.interval)
	fmt.Fprintf(&b, "steam running   %s\n", running)
	if !m.last.IsZero() {
		fmt.Fprintf(&b, "uptime          %s\n", m.last.Sub(m.started).Truncate(time.Second))
	}

	help := "\nq: quit\n"
	if m.fancy {
		help = helpStyle.Render(help)
	}
	b.WriteString(help)

	return b.String()
}

func newWatchCmd(a *app) *cobra.Command {
	var fps int

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Pump Steam callbacks once per frame until quit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if fps <= 0 {
				return fmt.Errorf("--fps must be positive, got %d", fps)
			}

			client, err := aperture.Init(aperture.WithConfig(a.cfg), aperture.WithLogger(a.log))
			if err != nil {
				return err
			}
			defer client.Close()

			out := cmd.OutOrStdout()
			model := newWatchModel(client, time.Second/time.Duration(fps), styled(out))
			p := tea.NewProgram(model, tea.WithInput(cmd.InOrStdin()), tea.WithOutput(out))
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().IntVar(&fps, "fps", 60, "callback pumps per second")
	return cmd
}
