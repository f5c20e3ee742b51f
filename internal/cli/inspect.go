package cli

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/graphreduce/graphreduce/pkg/graph"
	"github.com/graphreduce/graphreduce/pkg/reduce"
)

// inspectCommand creates the "inspect" command: an interactive browser
// over a reduced graph's nodes and their incoming edges.
func (c *CLI) inspectCommand() *cobra.Command {
	var outputs []string

	cmd := &cobra.Command{
		Use:   "inspect <graph.json>",
		Short: "Interactively browse a graph's reduced shape",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(outputs) == 0 {
				return fmt.Errorf("at least one --output is required")
			}

			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			g, err := graph.ReadJSON(bytes.NewReader(raw))
			if err != nil {
				return fmt.Errorf("parse graph: %w", err)
			}

			nameIndex := make(map[string]graph.NodeIndex, g.NodeCount())
			for _, n := range g.AllNodes() {
				nameIndex[g.Data(n)] = n
			}
			starts := make([]graph.NodeIndex, 0, len(outputs))
			for _, name := range outputs {
				idx, ok := nameIndex[name]
				if !ok {
					return fmt.Errorf("output %q is not a node in the input graph", name)
				}
				starts = append(starts, idx)
			}

			reduced, err := reduce.New[string](g, starts).Compute()
			if err != nil {
				return fmt.Errorf("reduce: %w", err)
			}

			model := newInspectModel(reduced)
			p := tea.NewProgram(model)
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringSliceVarP(&outputs, "output", "o", nil, "node name to retain as a reduction output (repeatable)")
	return cmd
}

// inspectModel is the bubbletea model for browsing a reduced graph.
type inspectModel struct {
	names    []string
	incoming map[string][]string
	cursor   int
}

func newInspectModel(g *graph.Graph[string]) inspectModel {
	incoming := make(map[string][]string)
	names := make([]string, 0, g.NodeCount())
	for _, n := range g.AllNodes() {
		names = append(names, g.Data(n))
	}
	sort.Strings(names)

	for _, e := range g.AllEdges() {
		to := g.Data(e.To)
		incoming[to] = append(incoming[to], g.Data(e.From))
	}

	return inspectModel{names: names, incoming: incoming}
}

func (m inspectModel) Init() tea.Cmd {
	return nil
}

func (m inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.names)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m inspectModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Reduced Graph"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	rows := make([][]string, 0, len(m.names))
	for _, name := range m.names {
		sources := strings.Join(m.incoming[name], ", ")
		if sources == "" {
			sources = "—"
		}
		rows = append(rows, []string{name, sources})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Node", "Incoming from").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row == m.cursor {
				return lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.names))))
	return b.String()
}
