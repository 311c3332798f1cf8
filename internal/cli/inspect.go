package cli

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/statecanvas/statecanvas/pkg/layout"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// inspectCommand creates the inspect command for browsing layout positions.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [layout.json]",
		Short: "Browse computed state positions interactively",
		Long: `Browse the positions of a computed layout in an interactive table.

The input is a layout.json file produced by 'layout'. Use the arrow keys
(or j/k) to move through states; q quits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := layout.ReadResultFile(args[0])
			if err != nil {
				return fmt.Errorf("load layout %s: %w", args[0], err)
			}
			model := newStateListModel(res)
			program := tea.NewProgram(model, tea.WithContext(cmd.Context()))
			_, err = program.Run()
			return err
		},
	}
}

// =============================================================================
// StateListModel - Interactive state position browser
// =============================================================================

// stateRow is one displayable state with its position and edge degree.
type stateRow struct {
	id      string
	pos     layout.Position
	in, out int
	isStart bool
	hasLoop bool
}

// StateListModel is the bubbletea model for browsing layout positions.
type StateListModel struct {
	Layout layout.Result
	Rows   []stateRow
	Cursor int
	Height int
	Offset int
}

// newStateListModel builds the row list from a layout result,
// sorted by state ID for a stable display.
func newStateListModel(res layout.Result) StateListModel {
	rows := make([]stateRow, 0, len(res.Positions))
	for id, pos := range res.Positions {
		row := stateRow{id: id, pos: pos, isStart: id == res.Start}
		for _, e := range res.Edges {
			if e.From == id && e.To == id {
				row.hasLoop = true
				continue
			}
			if e.From == id {
				row.out++
			}
			if e.To == id {
				row.in++
			}
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].id < rows[j].id })

	return StateListModel{
		Layout: res,
		Rows:   rows,
		Height: 15,
	}
}

func (m StateListModel) Init() tea.Cmd {
	return nil
}

func (m StateListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Rows)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "g", "home":
			m.Cursor = 0
			m.Offset = 0
		case "G", "end":
			m.Cursor = len(m.Rows) - 1
			if m.Cursor >= m.Height {
				m.Offset = m.Cursor - m.Height + 1
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m StateListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Layout Positions"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("%s mode · %.0f×%.0f canvas · ↑/↓ navigate  q quit",
		m.Layout.Mode, m.Layout.Width, m.Layout.Height)))
	b.WriteString("\n\n")

	if len(m.Rows) == 0 {
		b.WriteString(listDimStyle.Render("  (empty layout)"))
		b.WriteString("\n")
		return b.String()
	}

	end := m.Offset + m.Height
	if end > len(m.Rows) {
		end = len(m.Rows)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		r := m.Rows[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		marker := ""
		if r.isStart {
			marker = "start"
		}
		if r.hasLoop {
			if marker != "" {
				marker += ", loop"
			} else {
				marker = "loop"
			}
		}

		rows = append(rows, []string{
			cursor,
			r.id,
			fmt.Sprintf("%.1f", r.pos.X),
			fmt.Sprintf("%.1f", r.pos.Y),
			fmt.Sprintf("%d/%d", r.in, r.out),
			marker,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "State", "X", "Y", "In/Out", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Rows) {
				return lipgloss.NewStyle()
			}
			r := m.Rows[actualIdx]

			base := lipgloss.NewStyle()
			if actualIdx == m.Cursor {
				return listSelectedStyle
			}
			if r.isStart {
				return base.Foreground(colorGreen)
			}
			if col >= 2 {
				return base.Foreground(colorGray)
			}
			return base.Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Rows))))
	b.WriteString("\n")

	return b.String()
}
