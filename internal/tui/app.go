package tui

import (
	"context"
	"fmt"
	"strings"

	"taskdeck/internal/model"
	"taskdeck/internal/store"
	"taskdeck/internal/tasklist"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

// alertBody is the one message users see when any call fails. Whether the
// network, the server, or the payload was at fault lands in the log, not in
// the alert.
const alertBody = "Couldn't reach the task service. The list may be stale; try again later."

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
	modeConfirmDelete
	modeAlert
	modeHelp
)

// refreshedMsg means the controller's snapshot changed and the list view
// should be rebuilt from it.
type refreshedMsg struct{}

// opFailedMsg carries a failed service call. Rapid repeated actions are not
// de-duplicated, so overlapping calls can each produce one of these.
type opFailedMsg struct {
	op  string
	err error
}

type appModel struct {
	ctrl    *tasklist.Controller
	cfg     *store.Config
	log     zerolog.Logger
	baseURL string

	width  int
	height int

	list  list.Model
	input textinput.Model

	mode         mode
	editID       model.TaskID
	deleteID     model.TaskID
	deleteTitle  string
	confirmFocus confirmModalFocus
}

func newAppModel(ctrl *tasklist.Controller, cfg *store.Config, baseURL string, log zerolog.Logger) appModel {
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = 200

	return appModel{
		ctrl:    ctrl,
		cfg:     cfg,
		log:     log,
		baseURL: baseURL,
		list:    newTaskList(),
		input:   in,
	}
}

func (m appModel) Init() tea.Cmd { return m.refreshCmd() }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.width, m.bodyHeight())
		return m, nil

	case refreshedMsg:
		m.syncList()
		return m, nil

	case opFailedMsg:
		m.log.Error().Err(msg.err).Str("op", msg.op).Msg("task service call failed")
		m.mode = modeAlert
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeAdd, modeEdit:
			return m.updateInput(msg)
		case modeConfirmDelete:
			return m.updateConfirm(msg)
		case modeAlert:
			switch msg.String() {
			case "enter", "esc", "q":
				m.mode = modeList
			}
			return m, nil
		case modeHelp:
			switch msg.String() {
			case "enter", "esc", "q", "?":
				m.mode = modeList
			}
			return m, nil
		default:
			return m.updateList(msg)
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "r":
		return m, m.refreshCmd()

	case "f":
		m.ctrl.CycleFilter()
		m.syncList()
		return m, nil

	case "1":
		m.ctrl.SetFilter(model.FilterAll)
		m.syncList()
		return m, nil
	case "2":
		m.ctrl.SetFilter(model.FilterPending)
		m.syncList()
		return m, nil
	case "3":
		m.ctrl.SetFilter(model.FilterCompleted)
		m.syncList()
		return m, nil

	case "a":
		m.mode = modeAdd
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case "e":
		if it, ok := m.list.SelectedItem().(taskItem); ok {
			m.mode = modeEdit
			m.editID = it.task.ID
			m.input.SetValue(it.task.Title)
			m.input.CursorEnd()
			m.input.Focus()
			return m, textinput.Blink
		}
		return m, nil

	case " ", "x":
		if it, ok := m.list.SelectedItem().(taskItem); ok {
			return m, m.toggleCmd(it.task.ID)
		}
		return m, nil

	case "d":
		if it, ok := m.list.SelectedItem().(taskItem); ok {
			m.mode = modeConfirmDelete
			m.deleteID = it.task.ID
			m.deleteTitle = it.task.Title
			m.confirmFocus = confirmFocusCancel
		}
		return m, nil

	case "D":
		m.cfg.DarkMode = !m.cfg.DarkMode
		lipgloss.SetHasDarkBackground(m.cfg.DarkMode)
		if err := store.Save(m.cfg); err != nil {
			m.log.Warn().Err(err).Msg("could not persist dark-mode preference")
		}
		return m, nil

	case "?":
		m.mode = modeHelp
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m appModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+g":
		m.mode = modeList
		m.input.Blur()
		return m, nil

	case "enter":
		value := m.input.Value()
		wasAdd := m.mode == modeAdd
		m.mode = modeList
		m.input.Blur()
		if wasAdd {
			if strings.TrimSpace(value) == "" {
				// Dropped locally; the service never sees it.
				return m, nil
			}
			return m, m.createCmd(value)
		}
		return m, m.renameCmd(m.editID, value)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+g":
		m.mode = modeList
		return m, nil
	case "tab", "left", "right":
		m.confirmFocus = m.confirmFocus.toggled()
		return m, nil
	case "enter":
		confirmed := m.confirmFocus == confirmFocusConfirm
		m.mode = modeList
		if confirmed {
			return m, m.removeCmd(m.deleteID)
		}
		return m, nil
	}
	return m, nil
}

func (m appModel) View() string {
	title := lipgloss.NewStyle().Bold(true).Render("taskdeck")
	header := title
	if m.baseURL != "" {
		header += "  " + styleMuted().Render(m.baseURL)
	}

	body := m.list.View()
	switch m.mode {
	case modeAdd:
		body = overlayModal(m.width, m.bodyHeight(), renderInputModal(m.width, "Add task", m.input.View()))
	case modeEdit:
		body = overlayModal(m.width, m.bodyHeight(), renderInputModal(m.width, "Edit task", m.input.View()))
	case modeConfirmDelete:
		prompt := fmt.Sprintf("Delete %q? This removes it on the service.", m.deleteTitle)
		body = overlayModal(m.width, m.bodyHeight(), renderConfirmModal(m.width, "Delete task", prompt, "Delete", "Cancel", m.confirmFocus))
	case modeAlert:
		body = overlayModal(m.width, m.bodyHeight(), renderAlertModal(m.width, alertBody))
	case modeHelp:
		body = overlayModal(m.width, m.bodyHeight(), renderModalBox(m.width, "Help", renderHelp(modalBodyWidth(m.width))))
	}

	total, completed := m.ctrl.Counts()
	status := styleMuted().Render(fmt.Sprintf("filter: %s   %d/%d done", m.ctrl.Filter(), completed, total))
	footer := styleMuted().Render("a: add  e: edit  space: toggle  d: delete  f: filter  D: dark  r: refresh  ?: help  q: quit")

	return strings.Join([]string{header, body, status, footer}, "\n")
}

func (m appModel) bodyHeight() int {
	h := m.height - 3
	if h < 8 {
		h = 8
	}
	return h
}

// syncList rebuilds the visible rows from the controller's snapshot, keeping
// the selection on the same task when it survived the refresh.
func (m *appModel) syncList() {
	var selected model.TaskID
	if it, ok := m.list.SelectedItem().(taskItem); ok {
		selected = it.task.ID
	}

	visible := m.ctrl.Visible()
	items := make([]list.Item, 0, len(visible))
	for _, t := range visible {
		items = append(items, taskItem{task: t})
	}
	m.list.SetItems(items)
	if selected != "" {
		selectTaskByID(&m.list, selected)
	}
}

// The command constructors all share a shape: run the controller call off
// the UI loop, then report either "snapshot replaced" or "call failed".
// Nothing is cancelled or de-duplicated; the client's own timeout is the
// only bound.

func (m appModel) refreshCmd() tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		if err := ctrl.Refresh(context.Background()); err != nil {
			return opFailedMsg{op: "fetch", err: err}
		}
		return refreshedMsg{}
	}
}

func (m appModel) createCmd(title string) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		if err := ctrl.Create(context.Background(), title); err != nil {
			return opFailedMsg{op: "create", err: err}
		}
		return refreshedMsg{}
	}
}

func (m appModel) toggleCmd(id model.TaskID) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		if err := ctrl.ToggleComplete(context.Background(), id); err != nil {
			return opFailedMsg{op: "toggle", err: err}
		}
		return refreshedMsg{}
	}
}

func (m appModel) renameCmd(id model.TaskID, title string) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		if err := ctrl.Rename(context.Background(), id, title); err != nil {
			return opFailedMsg{op: "rename", err: err}
		}
		return refreshedMsg{}
	}
}

func (m appModel) removeCmd(id model.TaskID) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		if err := ctrl.Remove(context.Background(), id); err != nil {
			return opFailedMsg{op: "delete", err: err}
		}
		return refreshedMsg{}
	}
}
