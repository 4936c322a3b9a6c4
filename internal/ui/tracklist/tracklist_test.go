package tracklist

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testItems(n int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{Title: "Track", Artist: "Artist", Detail: "3:00"}
	}
	return items
}

func TestSetItemsClampsCursor(t *testing.T) {
	m := New("Library")
	m.SetSize(60, 20)
	m.SetItems(testItems(10))
	m.JumpTo(9)

	m.SetItems(testItems(3))

	if m.Pos() != 2 {
		t.Errorf("Pos() = %d, want 2", m.Pos())
	}
}

func TestPageNumbers(t *testing.T) {
	m := New("Library")
	m.SetSize(60, 9+4) // 9 visible rows plus panel overhead
	m.SetPageSize(5)
	m.SetItems(testItems(12))

	current, total := m.page()
	if current != 1 || total != 3 {
		t.Errorf("page() = %d/%d, want 1/3", current, total)
	}

	m.JumpTo(11)
	current, _ = m.page()
	if current != 3 {
		t.Errorf("page() after jump = %d, want 3", current)
	}
}

func TestEnterSendsChosenMsg(t *testing.T) {
	m := New("Library")
	m.SetSize(60, 20)
	m.SetFocused(true)
	m.SetItems(testItems(5))
	m.JumpTo(3)

	m, cmd := m.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("enter should produce a command")
	}

	msg, ok := cmd().(ChosenMsg)
	if !ok {
		t.Fatalf("cmd() = %T, want ChosenMsg", cmd())
	}
	if msg.Index != 3 {
		t.Errorf("ChosenMsg.Index = %d, want 3", msg.Index)
	}
}

func TestUnfocusedIgnoresKeys(t *testing.T) {
	m := New("Library")
	m.SetSize(60, 20)
	m.SetItems(testItems(5))

	m, cmd := m.Update(keyMsg("j"))
	if cmd != nil {
		t.Error("unfocused panel should not produce commands")
	}
	if m.Pos() != 0 {
		t.Errorf("Pos() = %d, want 0", m.Pos())
	}
}

func TestViewShowsTitleAndCount(t *testing.T) {
	m := New("Library")
	m.SetSize(60, 10)
	m.SetItems(testItems(4))

	view := m.View()
	if !strings.Contains(view, "Library (1/4)") {
		t.Errorf("View() missing header, got:\n%s", view)
	}
}

func TestViewEmptyList(t *testing.T) {
	m := New("Library")
	m.SetSize(60, 10)

	view := m.View()
	if !strings.Contains(view, "no tracks") {
		t.Errorf("View() missing empty placeholder, got:\n%s", view)
	}
}
