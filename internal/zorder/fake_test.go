package zorder

import (
	"slices"

	"github.com/mj1618/winzorder/internal/model"
	"github.com/mj1618/winzorder/internal/winid"
)

const codeInvalidWindowHandle Code = 1400 // ERROR_INVALID_WINDOW_HANDLE

type fakeWindow struct {
	rect      model.Rect
	rectErr   error
	exStyle   uint32
	visible   bool
	minimized bool
	cloaked   bool
	title     string
	titleErr  error
	pid       uint32
}

// fakeNative is a scripted desktop. stack is the z-order, topmost first;
// enum is the enumeration order and defaults to stack.
type fakeNative struct {
	stack      []winid.Handle
	enum       []winid.Handle
	windows    map[winid.Handle]fakeWindow
	foreground winid.Handle

	topErr error
	// nextFault and prevFault inject a status on the n-th call (1-based).
	nextFault map[int]error
	prevFault map[int]error
	// loopAt makes NextWindow from that handle jump back to the top.
	loopAt  winid.Handle
	enumErr error

	topCalls, nextCalls, prevCalls, enumCalls int
	titleCalls, pidCalls                      int
}

var _ Native = (*fakeNative)(nil)

func visibleWindow(left, top, right, bottom int32) fakeWindow {
	return fakeWindow{rect: model.Rect{Left: left, Top: top, Right: right, Bottom: bottom}, visible: true}
}

// newDesktop builds a desktop of ordinary visible windows stacked in the
// given order.
func newDesktop(handles ...winid.Handle) *fakeNative {
	f := &fakeNative{
		stack:   handles,
		windows: make(map[winid.Handle]fakeWindow),
	}
	for i, h := range handles {
		w := visibleWindow(int32(i*10), int32(i*10), int32(i*10+200), int32(i*10+100))
		w.title = "window " + h.String()
		w.pid = uint32(1000 + i)
		f.windows[h] = w
	}
	return f
}

func (f *fakeNative) TopWindow() (winid.Handle, error) {
	f.topCalls++
	if f.topErr != nil {
		return winid.Null, f.topErr
	}
	if len(f.stack) == 0 {
		return winid.Null, codeSuccess
	}
	return f.stack[0], nil
}

func (f *fakeNative) NextWindow(h winid.Handle) (winid.Handle, error) {
	f.nextCalls++
	if err, ok := f.nextFault[f.nextCalls]; ok {
		return winid.Null, err
	}
	if h == f.loopAt && len(f.stack) > 0 {
		return f.stack[0], nil
	}
	i := slices.Index(f.stack, h)
	if i < 0 {
		return winid.Null, codeInvalidWindowHandle
	}
	if i == len(f.stack)-1 {
		return winid.Null, codeSuccess
	}
	return f.stack[i+1], nil
}

func (f *fakeNative) PrevWindow(h winid.Handle) (winid.Handle, error) {
	f.prevCalls++
	if err, ok := f.prevFault[f.prevCalls]; ok {
		return winid.Null, err
	}
	i := slices.Index(f.stack, h)
	if i < 0 {
		return winid.Null, codeInvalidWindowHandle
	}
	if i == 0 {
		return winid.Null, codeSuccess
	}
	return f.stack[i-1], nil
}

func (f *fakeNative) EnumWindows(visit func(winid.Handle)) error {
	f.enumCalls++
	if f.enumErr != nil {
		return f.enumErr
	}
	order := f.enum
	if order == nil {
		order = f.stack
	}
	for _, h := range order {
		visit(h)
	}
	return nil
}

func (f *fakeNative) ForegroundWindow() winid.Handle {
	return f.foreground
}

func (f *fakeNative) WindowRect(h winid.Handle) (model.Rect, error) {
	w, ok := f.windows[h]
	if !ok {
		return model.Rect{}, codeInvalidWindowHandle
	}
	return w.rect, w.rectErr
}

func (f *fakeNative) ExStyle(h winid.Handle) uint32   { return f.windows[h].exStyle }
func (f *fakeNative) IsVisible(h winid.Handle) bool   { return f.windows[h].visible }
func (f *fakeNative) IsMinimized(h winid.Handle) bool { return f.windows[h].minimized }
func (f *fakeNative) IsCloaked(h winid.Handle) bool   { return f.windows[h].cloaked }

func (f *fakeNative) Title(h winid.Handle) (string, error) {
	f.titleCalls++
	w := f.windows[h]
	return w.title, w.titleErr
}

func (f *fakeNative) OwnerPID(h winid.Handle) uint32 {
	f.pidCalls++
	return f.windows[h].pid
}

func ids(windows []model.Window) []string {
	out := make([]string, len(windows))
	for i, w := range windows {
		out[i] = w.ID
	}
	return out
}

func encodeAll(handles ...winid.Handle) []string {
	out := make([]string, len(handles))
	for i, h := range handles {
		out[i] = winid.Encode(h)
	}
	return out
}
