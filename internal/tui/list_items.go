package tui

import (
	"fmt"
	"io"
	"strings"

	"taskdeck/internal/model"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

type taskItem struct {
	task model.Task
}

func (i taskItem) FilterValue() string { return i.task.Title }
func (i taskItem) Title() string       { return i.task.Title }

func checkbox(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

// taskDelegate renders one task per row: checkbox, then the title. Completed
// tasks are muted so the pending ones carry the visual weight.
type taskDelegate struct{}

func newTaskDelegate() taskDelegate { return taskDelegate{} }

func (d taskDelegate) Height() int                             { return 1 }
func (d taskDelegate) Spacing() int                            { return 0 }
func (d taskDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	contentW := m.Width()
	if contentW < 8 {
		return
	}
	it, ok := item.(taskItem)
	if !ok {
		return
	}

	style := lipgloss.NewStyle().Foreground(colorSurfaceFg)
	if it.task.Completed {
		style = styleMuted().Strikethrough(true)
	}
	if index == m.Index() {
		style = lipgloss.NewStyle().
			Foreground(colorSelectedFg).
			Background(colorSelectedBg).
			Bold(true)
	}

	line := " " + checkbox(it.task.Completed) + " " + it.task.Title
	lineW := xansi.StringWidth(line)
	if lineW < contentW {
		line += strings.Repeat(" ", contentW-lineW)
	} else if lineW > contentW {
		line = xansi.Cut(line, 0, contentW)
	}

	fmt.Fprint(w, style.Render(line))
}

func newTaskList() list.Model {
	l := list.New(nil, newTaskDelegate(), 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(true)
	return l
}

func selectTaskByID(l *list.Model, id model.TaskID) {
	for i, raw := range l.Items() {
		if it, ok := raw.(taskItem); ok && it.task.ID == id {
			l.Select(i)
			return
		}
	}
}
