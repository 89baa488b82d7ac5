package cli

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/klintqinami/sese-regions/pkg/graphio"
	"github.com/klintqinami/sese-regions/pkg/sese"
)

// treeCommand creates the interactive PST browser.
func (c *CLI) treeCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "tree <graph.(json|toml)>",
		Short: "Browse the program structure tree in the terminal",
		Long: `Browse the program structure tree of a graph analysis.

Without --plain, an interactive browser opens: arrow keys move between
regions, enter toggles the node list, q quits. With --plain, the tree is
printed once and the command exits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := graphio.ReadGraphFile(args[0])
			if err != nil {
				return fmt.Errorf("load graph %s: %w", args[0], err)
			}
			res, err := sese.Analyze(g)
			if err != nil {
				return fmt.Errorf("analyze: %w", err)
			}
			if plain {
				fmt.Print(renderTree(res))
				return nil
			}
			model := newTreeModel(res)
			_, err = tea.NewProgram(model, tea.WithOutput(os.Stderr)).Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print the tree once instead of browsing")
	return cmd
}

// treeRow is one region in display order with its indentation depth.
type treeRow struct {
	region sese.Region
	depth  int
}

// flattenPST returns the regions in pre-order with depths. Regions already
// arrive in pre-order, so the depth is one more than the parent's.
func flattenPST(res *sese.Result) []treeRow {
	rows := make([]treeRow, len(res.Regions))
	for i, r := range res.Regions {
		depth := 0
		if r.Parent >= 0 {
			depth = rows[r.Parent].depth + 1
		}
		rows[i] = treeRow{region: r, depth: depth}
	}
	return rows
}

// rowLabel renders the one-line summary of a region.
func rowLabel(res *sese.Result, r sese.Region) string {
	if r.Degenerate {
		return fmt.Sprintf("R%d  %s (degenerate)", r.ID, res.Arcs[r.Entry])
	}
	return fmt.Sprintf("R%d  %s .. %s  (%d nodes)", r.ID, res.Arcs[r.Entry], res.Arcs[r.Exit], len(r.Nodes))
}

// renderTree prints the PST as an indented text tree.
func renderTree(res *sese.Result) string {
	var b strings.Builder
	for _, row := range flattenPST(res) {
		b.WriteString(strings.Repeat("  ", row.depth))
		b.WriteString(rowLabel(res, row.region))
		b.WriteString("\n")
	}
	return b.String()
}

// List styles
var (
	treeSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	treeNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
)

// treeModel is the bubbletea model for the PST browser.
type treeModel struct {
	res      *sese.Result
	rows     []treeRow
	cursor   int
	offset   int
	height   int
	expanded bool
}

func newTreeModel(res *sese.Result) treeModel {
	return treeModel{
		res:    res,
		rows:   flattenPST(res),
		height: 15,
	}
}

func (m treeModel) Init() tea.Cmd {
	return nil
}

func (m treeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter", " ":
			m.expanded = !m.expanded
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 8
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m treeModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Program Structure Tree"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ navigate  ⏎ toggle nodes  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.rows) {
		end = len(m.rows)
	}
	for i := m.offset; i < end; i++ {
		row := m.rows[i]
		line := strings.Repeat("  ", row.depth) + rowLabel(m.res, row.region)
		if i == m.cursor {
			b.WriteString(treeSelectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(treeNormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if m.expanded {
		r := m.rows[m.cursor].region
		b.WriteString("\n")
		b.WriteString(StyleHighlight.Render(fmt.Sprintf("R%d nodes:", r.ID)))
		b.WriteString(" ")
		if len(r.Nodes) == 0 {
			b.WriteString(StyleDim.Render("(none)"))
		} else {
			b.WriteString(StyleValue.Render(strings.Join(r.Nodes, ", ")))
		}
		b.WriteString("\n")
	}

	return b.String()
}
