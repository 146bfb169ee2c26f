// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package selection

import (
	"reflect"
	"testing"
)

func TestToggleIsAnInvolution(t *testing.T) {
	s := New()

	if !s.Toggle("3") {
		t.Error("first Toggle(3) = false, want true")
	}
	if !s.Contains("3") || s.Size() != 1 {
		t.Errorf("after select: Contains=%v Size=%d", s.Contains("3"), s.Size())
	}

	if s.Toggle("3") {
		t.Error("second Toggle(3) = true, want false")
	}
	if s.Contains("3") || s.Size() != 0 {
		t.Errorf("after deselect: Contains=%v Size=%d", s.Contains("3"), s.Size())
	}
}

func TestListSorted(t *testing.T) {
	s := New()
	for _, id := range []string{"4", "1", "6"} {
		s.Toggle(id)
	}
	want := []string{"1", "4", "6"}
	if got := s.List(); !reflect.DeepEqual(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
}

func TestClear(t *testing.T) {
	s := New()
	s.Toggle("1")
	s.Toggle("2")
	s.Clear()
	if s.Size() != 0 {
		t.Errorf("Size() = %d after Clear, want 0", s.Size())
	}
}

func TestObserversNotifiedOnEveryChange(t *testing.T) {
	s := New()
	var calls [][]string
	s.Subscribe(func(ids []string) {
		calls = append(calls, ids)
	})

	s.Toggle("2")
	s.Toggle("1")
	s.Toggle("2")
	s.Clear()

	want := [][]string{
		{"2"},
		{"1", "2"},
		{"1"},
		{},
	}
	if len(calls) != len(want) {
		t.Fatalf("observer called %d times, want %d", len(calls), len(want))
	}
	for i := range want {
		if len(calls[i]) != len(want[i]) {
			t.Errorf("call %d = %v, want %v", i, calls[i], want[i])
			continue
		}
		for j := range want[i] {
			if calls[i][j] != want[i][j] {
				t.Errorf("call %d = %v, want %v", i, calls[i], want[i])
				break
			}
		}
	}
}

func TestClearOnEmptyDoesNotNotify(t *testing.T) {
	s := New()
	called := false
	s.Subscribe(func([]string) { called = true })
	s.Clear()
	if called {
		t.Error("observer notified on no-op Clear")
	}
}
