package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notes-screen/internal/model"
	"notes-screen/internal/store/memory"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func TestComposeAndSave(t *testing.T) {
	// Arrange
	s := memory.NewStore()
	m := New(s)

	// Act
	press(m, runes("n"))
	require.Equal(t, screenDetail, m.screen)
	assert.True(t, m.editor.IsNew())

	press(m, runes("Groceries"), tea.KeyMsg{Type: tea.KeyTab}, runes("milk"))
	press(m, tea.KeyMsg{Type: tea.KeyCtrlS})

	// Assert
	assert.Equal(t, screenList, m.screen)
	assert.Equal(t, []model.Note{model.NewNote("Groceries", "milk")}, s.Notes())
	assert.Equal(t, 1, m.list.Len(), "list snapshot must refresh on store change")
	assert.Equal(t, "Saved", m.status)
	assert.Contains(t, m.View(), "Groceries")
}

func TestEditExisting(t *testing.T) {
	s := memory.NewStoreWith(model.NewNote("A", "a"), model.NewNote("B", "b"))
	m := New(s)

	press(m, runes("j"), tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenDetail, m.screen)
	assert.Equal(t, "B", m.title.Value())
	assert.Equal(t, "b", m.body.Value())

	press(m, runes("2"), tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Equal(t, []model.Note{model.NewNote("A", "a"), model.NewNote("B2", "b")}, s.Notes())
	assert.Equal(t, 1, m.cursor)
}

func TestEscDiscards(t *testing.T) {
	s := memory.NewStoreWith(model.NewNote("A", "a"))
	m := New(s)

	press(m, tea.KeyMsg{Type: tea.KeyEnter}, runes("changed"), tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, screenList, m.screen)
	assert.Equal(t, []model.Note{model.NewNote("A", "a")}, s.Notes())
	assert.Equal(t, 0, m.list.Refreshes())
}

func TestDeleteAndClear(t *testing.T) {
	s := memory.NewStoreWith(model.NewNote("A", ""), model.NewNote("B", ""), model.NewNote("C", ""))
	m := New(s)

	press(m, runes("j"), runes("j"), runes("d"))
	assert.Equal(t, 2, s.Count())
	assert.Equal(t, 1, m.cursor, "cursor must stay within the list after delete")

	press(m, runes("C"))
	assert.Equal(t, 0, s.Count())
	assert.Equal(t, 0, m.cursor)
	assert.Contains(t, m.View(), "No notes yet")

	// Удаление и открытие на пустом списке ничего не делают
	press(m, runes("d"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, screenList, m.screen)
}

func TestNavigationBounds(t *testing.T) {
	m := New(memory.NewStoreWith(model.NewNote("A", ""), model.NewNote("B", "")))

	press(m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor)

	press(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.cursor)

	press(m, runes("k"))
	assert.Equal(t, 0, m.cursor)
}

func TestQuit(t *testing.T) {
	m := New(memory.NewStore())

	cmd := press(m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestQuitKeyTypesInEditor(t *testing.T) {
	s := memory.NewStore()
	m := New(s)

	press(m, runes("+"), runes("q"))

	assert.Equal(t, screenDetail, m.screen)
	assert.Equal(t, "q", m.title.Value())
}

func TestExternalChangeRefreshesList(t *testing.T) {
	s := memory.NewStore()
	m := New(s)

	s.Add(model.NewNote("From elsewhere", "line one\nline two\nline three"))

	view := m.View()
	assert.Contains(t, view, "Notes (1)")
	assert.Contains(t, view, "line two")
	assert.NotContains(t, view, "line three")
}

func TestPreviewLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, previewLines("a\n\nb\nc", 2))
	assert.Nil(t, previewLines("", 2))
}
