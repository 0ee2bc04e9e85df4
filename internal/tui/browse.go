// Package tui is the read-only interactive task browser.
package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todofile/internal/model"
	"github.com/idilsaglam/todofile/internal/ui"
)

// listItem adapts model.Task to bubbles/list.Item
type listItem struct {
	task model.Task
}

func (i listItem) FilterValue() string { return i.task.Description }

// Single-line delegate; the selected row gets a "> " prefix.
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprint(w, prefix+ui.TaskLine(it.task))
}

var selectedStyle = lipgloss.NewStyle().Bold(true).Reverse(true)

type browser struct {
	list list.Model
	quit key.Binding
}

func newBrowser(tasks []model.Task, path string) browser {
	items := make([]list.Item, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, listItem{task: t})
	}

	l := list.New(items, itemDelegate{}, 0, 0)
	l.Title = ui.Header(tasks)
	if path != "" {
		l.Title += "  " + ui.Current().Muted.Render(path)
	}
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ui.Current().Title
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("task", "tasks")

	return browser{
		list: l,
		quit: key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
	}
}

func (b browser) Init() tea.Cmd { return nil }

func (b browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// leave room for the frame drawn in View
		b.list.SetSize(msg.Width-4, msg.Height-2)
		return b, nil
	case tea.KeyMsg:
		// keys belong to the filter input while it is focused
		if b.list.FilterState() != list.Filtering && key.Matches(msg, b.quit) {
			if b.list.FilterState() == list.FilterApplied && msg.String() == "esc" {
				break
			}
			return b, tea.Quit
		}
	}
	var cmd tea.Cmd
	b.list, cmd = b.list.Update(msg)
	return b, cmd
}

func (b browser) View() string {
	return ui.PanelString([]string{b.list.View()})
}

// Browse shows tasks in a full-screen list until the user quits.
func Browse(tasks []model.Task, path string) error {
	p := tea.NewProgram(newBrowser(tasks, path), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
