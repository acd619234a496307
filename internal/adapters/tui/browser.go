package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"iconpack/internal/adapters/tui/styles"
	"iconpack/internal/application/commands"
	"iconpack/internal/domain"
)

// BrowserKeyMap defines key bindings for the icon browser
type BrowserKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Copy key.Binding
	Quit key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	Copy: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "copy icon id"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}

// maxVisible is the number of icons shown at once
const maxVisible = 15

// BrowserModel lists discovered icons with fuzzy filtering
type BrowserModel struct {
	icons   []commands.ListedIcon
	results []commands.ScoredIcon
	input   textinput.Model
	cursor  int
	message string
	isError bool
	copy    func(string) error
	width   int
	height  int
}

// NewBrowserModel creates a browser over the given icons
func NewBrowserModel(icons []commands.ListedIcon) *BrowserModel {
	input := textinput.New()
	input.Placeholder = "Filter icons..."
	input.Focus()

	return &BrowserModel{
		icons:   icons,
		results: commands.FilterIcons(icons, ""),
		input:   input,
		copy:    clipboard.WriteAll,
	}
}

// Init initializes the browser
func (m *BrowserModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, BrowserKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, BrowserKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Down):
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Copy):
			if icon, ok := m.Selected(); ok {
				if err := m.copy(icon.ShortKey); err != nil {
					m.message, m.isError = fmt.Sprintf("Copy failed: %v", err), true
				} else {
					m.message, m.isError = fmt.Sprintf("Copied %s", icon.ShortKey), false
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	previous := m.input.Value()
	m.input, cmd = m.input.Update(msg)

	if query := m.input.Value(); query != previous {
		m.results = commands.FilterIcons(m.icons, query)
		m.cursor = 0
		m.message = ""
	}

	return m, cmd
}

// Selected returns the icon under the cursor
func (m *BrowserModel) Selected() (commands.ScoredIcon, bool) {
	if m.cursor < 0 || m.cursor >= len(m.results) {
		return commands.ScoredIcon{}, false
	}
	return m.results[m.cursor], true
}

// View renders the browser
func (m *BrowserModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Icon Pack"))
	b.WriteString("\n")
	b.WriteString(styles.InputFocused.Render(m.input.View()))
	b.WriteString("\n\n")

	if len(m.results) == 0 {
		b.WriteString(styles.MutedText.Render("No icons match"))
	} else {
		b.WriteString(styles.Subtitle.Render(fmt.Sprintf("%d of %d icons", len(m.results), len(m.icons))))
		b.WriteString("\n\n")

		start := 0
		if m.cursor >= maxVisible {
			start = m.cursor - maxVisible + 1
		}
		end := min(start+maxVisible, len(m.results))

		for i := start; i < end; i++ {
			b.WriteString(m.renderIcon(m.results[i], i == m.cursor))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if m.message != "" {
		if m.isError {
			b.WriteString(styles.ErrorMsg.Render(m.message))
		} else {
			b.WriteString(styles.Success.Render(m.message))
		}
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("%s %s  %s %s  %s %s",
		styles.HelpKey.Render("↑/↓"),
		styles.HelpDesc.Render("navigate"),
		styles.HelpKey.Render("enter"),
		styles.HelpDesc.Render("copy icon id"),
		styles.HelpKey.Render("esc"),
		styles.HelpDesc.Render("quit"),
	))

	return styles.App.Render(b.String())
}

func (m *BrowserModel) renderIcon(icon commands.ScoredIcon, selected bool) string {
	badge := styles.Direct.Render("[direct]")
	if icon.Resolution == domain.ResolvedSubstituted {
		badge = styles.Substituted.Render("[subst] ")
	}

	text := fmt.Sprintf("%s → %s", icon.ShortKey, icon.SourcePath)
	if icon.Size != nil {
		text += fmt.Sprintf(" (%gx%g)", icon.Size.Width, icon.Size.Height)
	}

	if selected {
		return badge + " " + styles.Selected.Render(text)
	}
	return badge + " " + text
}

// Run starts the browser in the alternate screen and blocks until it quits
func Run(icons []commands.ListedIcon) error {
	p := tea.NewProgram(NewBrowserModel(icons), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
