package preview

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/figletctl/internal/domain"
)

type screen int

const (
	screenFonts screen = iota
	screenFigure
)

type fontItem struct {
	font domain.Font
}

func (i fontItem) Title() string       { return i.font.Name }
func (i fontItem) Description() string { return fmt.Sprintf("%d lines tall", i.font.Height) }
func (i fontItem) FilterValue() string { return i.font.Name }

type model struct {
	theme Theme
	deps  Deps

	message string

	scr    screen
	fonts  list.Model
	active domain.Font

	figure    domain.Figure
	renderErr error
}

func Run(message string, deps Deps) error {
	m := newModel(message, deps)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(message string, deps Deps) model {
	t := DefaultTheme()

	var items []list.Item
	if deps.Fonts != nil {
		for _, f := range deps.Fonts.List() {
			items = append(items, fontItem{font: f})
		}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "figletctl"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return model{
		theme:   t,
		deps:    deps,
		message: message,
		scr:     screenFonts,
		fonts:   l,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width, msg.Height
		m.fonts.SetSize(w-4, h-10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.scr == screenFonts {
				return m, tea.Quit
			}
			m.scr = screenFonts
			return m, nil

		case "enter":
			if m.scr == screenFonts {
				it, ok := m.fonts.SelectedItem().(fontItem)
				if !ok {
					return m, nil
				}
				m.active = it.font
				m.figure, m.renderErr = m.deps.Renderer.Render(it.font, domain.Message(m.message))
				if m.renderErr != nil && m.deps.Logger != nil {
					m.deps.Logger.Error("preview.render_failed", "font", it.font.Name, "err", m.renderErr)
				}
				m.scr = screenFigure
				return m, nil
			}

		case "esc", "b":
			if m.scr != screenFonts {
				m.scr = screenFonts
				return m, nil
			}
		}
	}

	if m.scr == screenFonts {
		var cmd tea.Cmd
		m.fonts, cmd = m.fonts.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("figletctl") + "\n" +
		m.theme.Subtitle.Render(fmt.Sprintf("Font preview — %q", m.message)) + "\n"

	switch m.scr {
	case screenFonts:
		help := m.theme.Help.Render("↑/↓ navigate • enter render • / search • q quit")
		return wrap.Render(header + "\n" + m.theme.Card.Render(m.fonts.View()) + "\n" + help)

	case screenFigure:
		body := m.figure.String()
		if m.renderErr != nil {
			body = m.theme.Error.Render(fmt.Sprintf("render failed: %v", m.renderErr))
		}
		card := m.theme.Card.Render(
			fmt.Sprintf("%s\n\n%s\n\n%s",
				m.theme.Title.Render(m.active.Name),
				body,
				m.theme.Help.Render("esc/b back • q fonts"),
			),
		)
		return wrap.Render(header + "\n" + card)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
