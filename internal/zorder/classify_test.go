package zorder

import (
	"errors"
	"testing"

	"github.com/mj1618/winzorder/internal/model"
	"github.com/mj1618/winzorder/internal/platform"
	"github.com/mj1618/winzorder/internal/winid"
)

var allOptions = platform.ResolvedOptions{IncludeTitle: true, IncludeOwnerPID: true}

func TestClassify_Excludes(t *testing.T) {
	tests := []struct {
		name string
		w    fakeWindow
	}{
		{"zero width", fakeWindow{rect: model.Rect{Left: 10, Top: 0, Right: 10, Bottom: 100}, visible: true}},
		{"zero height", fakeWindow{rect: model.Rect{Left: 0, Top: 50, Right: 100, Bottom: 50}, visible: true}},
		{"negative", fakeWindow{rect: model.Rect{Left: 100, Top: 100, Right: 0, Bottom: 0}, visible: true}},
		{"rect error", fakeWindow{rect: model.Rect{Right: 100, Bottom: 100}, rectErr: Code(1400)}},
		{"tool window", fakeWindow{rect: model.Rect{Right: 100, Bottom: 100}, visible: true, exStyle: ExToolWindow}},
		{"no activate", fakeWindow{rect: model.Rect{Right: 100, Bottom: 100}, visible: true, exStyle: ExNoActivate}},
		{"tool window with other bits", fakeWindow{rect: model.Rect{Right: 100, Bottom: 100}, exStyle: ExToolWindow | 0x100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeNative{windows: map[winid.Handle]fakeWindow{0x10: tt.w}}
			if w, ok := (Classifier{Native: f}).Classify(0x10, allOptions); ok {
				t.Errorf("expected exclusion, got %+v", w)
			}
		})
	}
}

func TestClassify_NullHandle(t *testing.T) {
	f := newDesktop(0x10)
	if _, ok := (Classifier{Native: f}).Classify(winid.Null, allOptions); ok {
		t.Error("null handle should never classify")
	}
}

func TestClassify_UnknownHandle(t *testing.T) {
	f := newDesktop(0x10)
	if _, ok := (Classifier{Native: f}).Classify(0x99, allOptions); ok {
		t.Error("stale handle should not classify")
	}
}

func TestClassify_Snapshot(t *testing.T) {
	f := &fakeNative{windows: map[winid.Handle]fakeWindow{
		0xabc: {
			rect:      model.Rect{Left: -8, Top: -8, Right: 1928, Bottom: 1048},
			exStyle:   0x100,
			visible:   true,
			minimized: false,
			cloaked:   true,
			title:     "Editor",
			pid:       4242,
		},
	}}

	w, ok := (Classifier{Native: f}).Classify(0xabc, allOptions)
	if !ok {
		t.Fatal("expected window to classify")
	}
	if w.ID != "win32:abc" {
		t.Errorf("ID = %q", w.ID)
	}
	if w.Rect != (model.Rect{Left: -8, Top: -8, Right: 1928, Bottom: 1048}) {
		t.Errorf("Rect = %+v", w.Rect)
	}
	if !w.IsVisible || w.IsMinimized || !w.IsCloaked {
		t.Errorf("flags = visible:%v minimized:%v cloaked:%v", w.IsVisible, w.IsMinimized, w.IsCloaked)
	}
	if w.ExStyle != 0x100 {
		t.Errorf("ExStyle = %#x", w.ExStyle)
	}
	if w.Title == nil || *w.Title != "Editor" {
		t.Errorf("Title = %v", w.Title)
	}
	if w.OwnerPID == nil || *w.OwnerPID != 4242 {
		t.Errorf("OwnerPID = %v", w.OwnerPID)
	}
}

func TestClassify_HiddenAndMinimizedStillIncluded(t *testing.T) {
	f := &fakeNative{windows: map[winid.Handle]fakeWindow{
		0x1: {rect: model.Rect{Right: 10, Bottom: 10}, minimized: true},
	}}
	w, ok := (Classifier{Native: f}).Classify(0x1, allOptions)
	if !ok {
		t.Fatal("hidden minimized window should still be reported")
	}
	if w.IsVisible || !w.IsMinimized {
		t.Errorf("flags = visible:%v minimized:%v", w.IsVisible, w.IsMinimized)
	}
}

func TestClassify_TitleBestEffort(t *testing.T) {
	f := &fakeNative{windows: map[winid.Handle]fakeWindow{
		0x1: {rect: model.Rect{Right: 10, Bottom: 10}, title: "x", titleErr: errors.New("utf16")},
		0x2: {rect: model.Rect{Right: 10, Bottom: 10}},
	}}
	c := Classifier{Native: f}

	w, ok := c.Classify(0x1, allOptions)
	if !ok {
		t.Fatal("title failure must not exclude the window")
	}
	if w.Title != nil {
		t.Errorf("Title = %q, want nil", *w.Title)
	}

	w, ok = c.Classify(0x2, allOptions)
	if !ok {
		t.Fatal("untitled window should classify")
	}
	if w.Title != nil {
		t.Errorf("empty title should be nil, got %q", *w.Title)
	}
}

func TestClassify_UnknownOwnerIsZero(t *testing.T) {
	f := &fakeNative{windows: map[winid.Handle]fakeWindow{
		0x1: {rect: model.Rect{Right: 10, Bottom: 10}},
	}}
	w, ok := (Classifier{Native: f}).Classify(0x1, allOptions)
	if !ok {
		t.Fatal("expected window to classify")
	}
	if w.OwnerPID == nil || *w.OwnerPID != 0 {
		t.Errorf("OwnerPID = %v, want 0", w.OwnerPID)
	}
}

func TestClassify_OptionsSkipLookups(t *testing.T) {
	f := newDesktop(0x1)
	w, ok := (Classifier{Native: f}).Classify(0x1, platform.ResolvedOptions{})
	if !ok {
		t.Fatal("expected window to classify")
	}
	if w.Title != nil || w.OwnerPID != nil {
		t.Errorf("title/pid should be nil, got %v/%v", w.Title, w.OwnerPID)
	}
	if f.titleCalls != 0 || f.pidCalls != 0 {
		t.Errorf("native title/pid calls = %d/%d, want 0/0", f.titleCalls, f.pidCalls)
	}
}

func TestExcluded(t *testing.T) {
	tests := []struct {
		style uint32
		want  bool
	}{
		{0, false},
		{0x100, false},      // WS_EX_WINDOWEDGE
		{0x00040000, false}, // WS_EX_APPWINDOW
		{ExToolWindow, true},
		{ExNoActivate, true},
		{ExToolWindow | 0x8, true}, // WS_EX_TOPMOST
	}
	for _, tt := range tests {
		if got := Excluded(tt.style); got != tt.want {
			t.Errorf("Excluded(%#x) = %v, want %v", tt.style, got, tt.want)
		}
	}
}
