package memory

import (
	"testing"

	"notes-screen/internal/model"
	"notes-screen/internal/store"
)

// newCountingStore возвращает хранилище и указатель на счетчик уведомлений
func newCountingStore(notes ...model.Note) (store.NoteStore, *int) {
	s := NewStoreWith(notes...)
	calls := 0
	s.SetOnChange(func() { calls++ })
	return s, &calls
}

func twoNotes() []model.Note {
	return []model.Note{
		model.NewNote("Note 1", "Body 1"),
		model.NewNote("Note 2", "Body 2"),
	}
}

func TestNoteStore_Count_Empty(t *testing.T) {
	s := NewStore()

	if s.Count() != 0 {
		t.Errorf("Expected 0 notes, got %d", s.Count())
	}

	if _, ok := s.Get(0); ok {
		t.Error("Expected absent note at index 0 in empty store")
	}
}

func TestNoteStore_Add_AppendsInOrder(t *testing.T) {
	s, calls := newCountingStore()

	s.Add(model.NewNote("Note 1", "Body 1"))
	s.Add(model.NewNote("Note 2", "Body 2"))

	if s.Count() != 2 {
		t.Fatalf("Expected 2 notes, got %d", s.Count())
	}

	first, ok := s.Get(0)
	if !ok || first.Title != "Note 1" {
		t.Errorf("Expected 'Note 1' at index 0, got %q (ok=%v)", first.Title, ok)
	}

	second, ok := s.Get(1)
	if !ok || second.Title != "Note 2" {
		t.Errorf("Expected 'Note 2' at index 1, got %q (ok=%v)", second.Title, ok)
	}

	if *calls != 2 {
		t.Errorf("Expected 2 notifications, got %d", *calls)
	}
}

func TestNoteStore_Add_CountMatchesCalls(t *testing.T) {
	s := NewStore()

	for i := 0; i < 25; i++ {
		s.Add(model.NewNote("t", "b"))
		if s.Count() != i+1 {
			t.Fatalf("Expected %d notes, got %d", i+1, s.Count())
		}
	}
}

func TestNoteStore_Add_EmptyNoteAllowed(t *testing.T) {
	s := NewStore()

	s.Add(model.Note{})

	note, ok := s.Get(0)
	if !ok {
		t.Fatal("Expected empty note to be stored")
	}
	if !note.IsEmpty() {
		t.Errorf("Expected empty note, got %+v", note)
	}
}

func TestNoteStore_Get_OutOfRange(t *testing.T) {
	s := NewStoreWith(twoNotes()...)

	for _, index := range []int{-1, 2, 5, -100} {
		if _, ok := s.Get(index); ok {
			t.Errorf("Expected absent note for index %d", index)
		}
	}
}

func TestNoteStore_Update_ValidIndex(t *testing.T) {
	s, calls := newCountingStore(twoNotes()...)

	ok := s.Update(model.NewNote("Updated", "Updated Body"), 0)
	if !ok {
		t.Fatal("Expected update to be applied")
	}

	if s.Count() != 2 {
		t.Errorf("Expected 2 notes, got %d", s.Count())
	}

	first, _ := s.Get(0)
	if first != model.NewNote("Updated", "Updated Body") {
		t.Errorf("Expected updated note at index 0, got %+v", first)
	}

	second, _ := s.Get(1)
	if second.Title != "Note 2" {
		t.Errorf("Expected 'Note 2' unchanged, got %q", second.Title)
	}

	if *calls != 1 {
		t.Errorf("Expected 1 notification, got %d", *calls)
	}
}

func TestNoteStore_Update_InvalidIndex(t *testing.T) {
	s, calls := newCountingStore(twoNotes()...)

	ok := s.Update(model.NewNote("X", "Y"), 5)
	if ok {
		t.Error("Expected update with invalid index to be a no-op")
	}

	if s.Count() != 2 {
		t.Errorf("Expected 2 notes, got %d", s.Count())
	}

	first, _ := s.Get(0)
	if first.Title != "Note 1" {
		t.Errorf("Expected 'Note 1' unchanged, got %q", first.Title)
	}

	if *calls != 0 {
		t.Errorf("Expected no notification, got %d", *calls)
	}

	if s.Update(model.NewNote("X", "Y"), -1) {
		t.Error("Expected update with negative index to be a no-op")
	}
}

func TestNoteStore_Delete_ShiftsFollowingNotes(t *testing.T) {
	s, calls := newCountingStore(
		model.NewNote("A", "1"),
		model.NewNote("B", "2"),
		model.NewNote("C", "3"),
	)

	if !s.Delete(1) {
		t.Fatal("Expected delete to be applied")
	}

	if s.Count() != 2 {
		t.Fatalf("Expected 2 notes, got %d", s.Count())
	}

	first, _ := s.Get(0)
	second, _ := s.Get(1)
	if first.Title != "A" || second.Title != "C" {
		t.Errorf("Expected [A C], got [%s %s]", first.Title, second.Title)
	}

	if *calls != 1 {
		t.Errorf("Expected 1 notification, got %d", *calls)
	}
}

func TestNoteStore_Delete_InvalidIndex(t *testing.T) {
	s, calls := newCountingStore(twoNotes()...)

	if s.Delete(2) || s.Delete(-1) {
		t.Error("Expected delete with invalid index to be a no-op")
	}

	if s.Count() != 2 {
		t.Errorf("Expected 2 notes, got %d", s.Count())
	}

	if *calls != 0 {
		t.Errorf("Expected no notification, got %d", *calls)
	}
}

func TestNoteStore_Clear(t *testing.T) {
	s, calls := newCountingStore(twoNotes()...)

	s.Clear()

	if s.Count() != 0 {
		t.Errorf("Expected 0 notes, got %d", s.Count())
	}

	if _, ok := s.Get(0); ok {
		t.Error("Expected absent note at index 0 after clear")
	}

	if *calls != 1 {
		t.Errorf("Expected 1 notification, got %d", *calls)
	}
}

func TestNoteStore_Save_NoIndexAdds(t *testing.T) {
	s, calls := newCountingStore()

	if !s.Save(model.NewNote("New", "New Body"), store.NoIndex) {
		t.Fatal("Expected save to be applied")
	}

	if s.Count() != 1 {
		t.Fatalf("Expected 1 note, got %d", s.Count())
	}

	note, _ := s.Get(0)
	if note.Title != "New" {
		t.Errorf("Expected 'New', got %q", note.Title)
	}

	if *calls != 1 {
		t.Errorf("Expected exactly 1 notification, got %d", *calls)
	}
}

func TestNoteStore_Save_WithIndexUpdates(t *testing.T) {
	s, calls := newCountingStore()
	s.Save(model.NewNote("New", "New Body"), store.NoIndex)

	if !s.Save(model.NewNote("Updated", "Updated Body"), store.At(0)) {
		t.Fatal("Expected save to be applied")
	}

	if s.Count() != 1 {
		t.Fatalf("Expected 1 note, got %d", s.Count())
	}

	note, _ := s.Get(0)
	if note.Title != "Updated" {
		t.Errorf("Expected 'Updated', got %q", note.Title)
	}

	if *calls != 2 {
		t.Errorf("Expected 2 notifications, got %d", *calls)
	}
}

func TestNoteStore_Save_OutOfRangeIndex(t *testing.T) {
	s, calls := newCountingStore(twoNotes()...)

	if s.Save(model.NewNote("X", "Y"), store.At(7)) {
		t.Error("Expected save with out-of-range index to be a no-op")
	}

	if s.Count() != 2 {
		t.Errorf("Expected 2 notes, got %d", s.Count())
	}

	if *calls != 0 {
		t.Errorf("Expected no notification, got %d", *calls)
	}
}

func TestNoteStore_Notes_ReturnsCopy(t *testing.T) {
	s := NewStoreWith(twoNotes()...)

	notes := s.Notes()
	notes[0].Title = "mutated"

	first, _ := s.Get(0)
	if first.Title != "Note 1" {
		t.Errorf("Expected store to be unaffected by snapshot mutation, got %q", first.Title)
	}
}

func TestNoteStore_NewStoreWith_CopiesInput(t *testing.T) {
	input := twoNotes()
	s := NewStoreWith(input...)

	input[0].Title = "mutated"

	first, _ := s.Get(0)
	if first.Title != "Note 1" {
		t.Errorf("Expected store to own its notes, got %q", first.Title)
	}
}

func TestNoteStore_SetOnChange_Replaces(t *testing.T) {
	s := NewStore()

	first, second := 0, 0
	s.SetOnChange(func() { first++ })
	s.SetOnChange(func() { second++ })

	s.Add(model.NewNote("t", "b"))

	if first != 0 || second != 1 {
		t.Errorf("Expected only the latest observer to be called, got first=%d second=%d", first, second)
	}

	s.SetOnChange(nil)
	s.Add(model.NewNote("t", "b"))

	if second != 1 {
		t.Errorf("Expected removed observer not to be called, got %d", second)
	}
}

func TestNoteStore_Notify_AfterStateIsConsistent(t *testing.T) {
	s := NewStore()

	var seen []int
	s.SetOnChange(func() { seen = append(seen, s.Count()) })

	s.Add(model.NewNote("a", ""))
	s.Add(model.NewNote("b", ""))
	s.Delete(0)
	s.Clear()

	want := []int{1, 2, 1, 0}
	if len(seen) != len(want) {
		t.Fatalf("Expected %v, got %v", want, seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, seen)
			break
		}
	}
}

func TestNoteStore_Subscribe_AllObserversOnce(t *testing.T) {
	s, primary := newCountingStore()

	a, b := 0, 0
	unsubA := s.Subscribe(func() { a++ })
	s.Subscribe(func() { b++ })

	s.Save(model.NewNote("t", "b"), store.NoIndex)

	if *primary != 1 || a != 1 || b != 1 {
		t.Fatalf("Expected every observer notified once, got primary=%d a=%d b=%d", *primary, a, b)
	}

	unsubA()
	unsubA()
	s.Update(model.NewNote("x", "y"), 0)

	if a != 1 || b != 2 {
		t.Errorf("Expected unsubscribed observer to be skipped, got a=%d b=%d", a, b)
	}

	s.Update(model.NewNote("x", "y"), 9)
	if b != 2 {
		t.Errorf("Expected no notification for no-op, got %d", b)
	}
}

func TestNoteStore_Subscribe_UnsubscribeDuringNotify(t *testing.T) {
	s := NewStore()

	calls := 0
	var unsub func()
	unsub = s.Subscribe(func() {
		calls++
		unsub()
	})
	other := 0
	s.Subscribe(func() { other++ })

	s.Add(model.NewNote("t", "b"))
	s.Add(model.NewNote("t", "b"))

	if calls != 1 {
		t.Errorf("Expected self-unsubscribing observer to run once, got %d", calls)
	}
	if other != 2 {
		t.Errorf("Expected other observer to run twice, got %d", other)
	}
}

func TestNoteStore_Subscribe_NilIsIgnored(t *testing.T) {
	s := NewStore()

	unsub := s.Subscribe(nil)
	s.Add(model.NewNote("t", "b"))
	unsub()

	if s.Count() != 1 {
		t.Errorf("Expected 1 note, got %d", s.Count())
	}
}
