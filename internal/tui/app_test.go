package tui

import (
	"testing"

	"taskdeck/internal/model"
	"taskdeck/internal/store"
	"taskdeck/internal/tasklist"
	"taskdeck/internal/testutil"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

func newTestModel(t *testing.T) (appModel, *testutil.FakeService) {
	t.Helper()
	fake := testutil.NewFakeService()
	fake.AddTask("buy milk", false)
	fake.AddTask("ship release", true)
	fake.AddTask("water plants", false)

	m := newAppModel(tasklist.New(fake), &store.Config{}, "http://example.test", zerolog.Nop())

	mm, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = mm.(appModel)

	// Initial fetch, as Init would run it.
	mm, _ = m.Update(m.refreshCmd()())
	return mm.(appModel), fake
}

// step feeds one message and, when a command comes back, runs it and feeds
// its result too. Commands here never fan out, so one level is enough.
func step(t *testing.T, m appModel, msg tea.Msg) appModel {
	t.Helper()
	mm, cmd := m.Update(msg)
	m = mm.(appModel)
	if cmd != nil {
		if next := cmd(); next != nil {
			if _, isQuit := next.(tea.QuitMsg); !isQuit {
				mm, _ = m.Update(next)
				m = mm.(appModel)
			}
		}
	}
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInitialFetchPopulatesList(t *testing.T) {
	m, fake := newTestModel(t)
	if fake.FetchCalls != 1 {
		t.Fatalf("FetchCalls = %d, want 1", fake.FetchCalls)
	}
	if got := len(m.list.Items()); got != 3 {
		t.Fatalf("list has %d rows, want 3", got)
	}
}

func TestFilterKeysChangeVisibleRows(t *testing.T) {
	m, _ := newTestModel(t)

	m = step(t, m, keyRunes("2"))
	if got := len(m.list.Items()); got != 2 {
		t.Fatalf("pending: %d rows, want 2", got)
	}
	m = step(t, m, keyRunes("3"))
	if got := len(m.list.Items()); got != 1 {
		t.Fatalf("completed: %d rows, want 1", got)
	}
	m = step(t, m, keyRunes("1"))
	if got := len(m.list.Items()); got != 3 {
		t.Fatalf("all: %d rows, want 3", got)
	}

	// f cycles all -> pending.
	m = step(t, m, keyRunes("f"))
	if m.ctrl.Filter() != model.FilterPending {
		t.Fatalf("filter after f = %v, want pending", m.ctrl.Filter())
	}
	if got := len(m.list.Items()); got != 2 {
		t.Fatalf("cycled pending: %d rows, want 2", got)
	}
}

func TestAddFlowCreatesAndRefetches(t *testing.T) {
	m, fake := newTestModel(t)

	m = step(t, m, keyRunes("a"))
	if m.mode != modeAdd {
		t.Fatalf("mode = %v, want add", m.mode)
	}
	m = step(t, m, keyRunes("file taxes"))
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.mode != modeList {
		t.Fatalf("mode after enter = %v, want list", m.mode)
	}
	if fake.CreateCalls != 1 {
		t.Fatalf("CreateCalls = %d, want 1", fake.CreateCalls)
	}
	// Initial fetch plus exactly one post-create re-fetch.
	if fake.FetchCalls != 2 {
		t.Fatalf("FetchCalls = %d, want 2", fake.FetchCalls)
	}
	if got := len(m.list.Items()); got != 4 {
		t.Fatalf("list has %d rows after add, want 4", got)
	}
}

func TestAddWhitespaceTitleSendsNothing(t *testing.T) {
	m, fake := newTestModel(t)

	m = step(t, m, keyRunes("a"))
	m = step(t, m, keyRunes("   "))
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.mode != modeList {
		t.Fatalf("mode = %v, want list", m.mode)
	}
	if fake.CreateCalls != 0 {
		t.Fatalf("whitespace title produced %d creation requests", fake.CreateCalls)
	}
	if fake.FetchCalls != 1 {
		t.Fatalf("whitespace title triggered a re-fetch: FetchCalls = %d", fake.FetchCalls)
	}
}

func TestToggleKeyFlipsSelectedTask(t *testing.T) {
	m, fake := newTestModel(t)

	// First row is "buy milk", pending.
	m = step(t, m, keyRunes("x"))

	if fake.UpdateCalls != 1 {
		t.Fatalf("UpdateCalls = %d, want 1", fake.UpdateCalls)
	}
	if fake.LastUpdate.Title != "buy milk" || !fake.LastUpdate.Completed {
		t.Fatalf("unexpected update: %+v", fake.LastUpdate)
	}
	if fake.FetchCalls != 2 {
		t.Fatalf("FetchCalls = %d, want 2", fake.FetchCalls)
	}
	_ = m
}

func TestEditFlowPreservesCompletedFlag(t *testing.T) {
	m, fake := newTestModel(t)

	m = step(t, m, keyRunes("e"))
	if m.mode != modeEdit {
		t.Fatalf("mode = %v, want edit", m.mode)
	}
	if m.input.Value() != "buy milk" {
		t.Fatalf("input not prefilled: %q", m.input.Value())
	}
	m = step(t, m, keyRunes(" oat"))
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if fake.LastUpdate.Title != "buy milk oat" {
		t.Fatalf("update title = %q", fake.LastUpdate.Title)
	}
	if fake.LastUpdate.Completed {
		t.Fatal("edit flipped the completed flag")
	}
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	m, fake := newTestModel(t)

	m = step(t, m, keyRunes("d"))
	if m.mode != modeConfirmDelete {
		t.Fatalf("mode = %v, want confirm", m.mode)
	}
	// Default focus is Cancel: enter must not delete.
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if fake.DeleteCalls != 0 {
		t.Fatal("cancel still deleted the task")
	}

	m = step(t, m, keyRunes("d"))
	m = step(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if fake.DeleteCalls != 1 {
		t.Fatalf("DeleteCalls = %d, want 1", fake.DeleteCalls)
	}
	if got := len(m.list.Items()); got != 2 {
		t.Fatalf("list has %d rows after delete, want 2", got)
	}
}

func TestFailedCallOpensAlertAndKeepsSnapshot(t *testing.T) {
	m, fake := newTestModel(t)
	fake.FetchErr = testutil.ErrNotFound

	m = step(t, m, keyRunes("r"))
	if m.mode != modeAlert {
		t.Fatalf("mode = %v, want alert", m.mode)
	}
	// Prior snapshot still renders behind the alert.
	if got := len(m.list.Items()); got != 3 {
		t.Fatalf("failed refresh changed the list: %d rows", got)
	}

	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != modeList {
		t.Fatalf("alert did not dismiss: mode = %v", m.mode)
	}
}

func TestDarkModeToggleIsPersisted(t *testing.T) {
	t.Setenv("TASKDECK_CONFIG_DIR", t.TempDir())
	oldBG := lipgloss.HasDarkBackground()
	t.Cleanup(func() { lipgloss.SetHasDarkBackground(oldBG) })
	lipgloss.SetHasDarkBackground(false)

	m, _ := newTestModel(t)
	m = step(t, m, keyRunes("D"))

	if !m.cfg.DarkMode {
		t.Fatal("toggle did not set the preference")
	}
	if !lipgloss.HasDarkBackground() {
		t.Fatal("toggle did not switch the palette")
	}

	cfg, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.DarkMode {
		t.Fatal("preference was not written to disk")
	}

	m = step(t, m, keyRunes("D"))
	cfg, _ = store.Load()
	if cfg.DarkMode {
		t.Fatal("toggling back was not written to disk")
	}
}
