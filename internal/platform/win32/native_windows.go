//go:build windows

package win32

import (
	"runtime"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/mj1618/winzorder/internal/model"
	"github.com/mj1618/winzorder/internal/winid"
	"github.com/mj1618/winzorder/internal/zorder"
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	dwmapi   = windows.NewLazySystemDLL("dwmapi.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procEnumWindows          = user32.NewProc("EnumWindows")
	procGetTopWindow         = user32.NewProc("GetTopWindow")
	procGetWindow            = user32.NewProc("GetWindow")
	procGetWindowRect        = user32.NewProc("GetWindowRect")
	procGetWindowLong        = user32.NewProc(getWindowLongName())
	procGetWindowTextLengthW = user32.NewProc("GetWindowTextLengthW")
	procIsIconic             = user32.NewProc("IsIconic")

	procDwmGetWindowAttribute = dwmapi.NewProc("DwmGetWindowAttribute")

	procSetLastError = kernel32.NewProc("SetLastError")
)

const (
	gwHwndNext   = 2
	gwHwndPrev   = 3
	dwmwaCloaked = 14
)

// GWL_EXSTYLE is negative; it is passed through a variable so the
// conversion to uintptr sign-extends.
var gwlExStyle int32 = -20

// getWindowLongName picks the export for the build's pointer width; 32-bit
// user32 has no GetWindowLongPtrW.
func getWindowLongName() string {
	if unsafe.Sizeof(uintptr(0)) == 4 {
		return "GetWindowLongW"
	}
	return "GetWindowLongPtrW"
}

func loadProcs() error {
	procs := []*windows.LazyProc{
		procEnumWindows,
		procGetTopWindow,
		procGetWindow,
		procGetWindowRect,
		procGetWindowLong,
		procGetWindowTextLengthW,
		procIsIconic,
		procDwmGetWindowAttribute,
		procSetLastError,
	}
	for _, p := range procs {
		if err := p.Find(); err != nil {
			return err
		}
	}
	return nil
}

// Native implements zorder.Native with direct user32/dwmapi calls.
type Native struct{}

var _ zorder.Native = Native{}

func hwnd(h winid.Handle) windows.HWND {
	return windows.HWND(h)
}

// handleResult reports a Null handle together with the thread's last error,
// which the chain walker interprets; it may well be ERROR_SUCCESS.
func handleResult(r uintptr, lastErr error) (winid.Handle, error) {
	if r == 0 {
		return winid.Null, lastErr
	}
	return winid.Handle(r), nil
}

// callChain runs a chain primitive with the thread's last error cleared
// first. GetWindow and GetTopWindow leave it untouched when they reach the end
// of the z-order, and goroutines share OS threads, so without the reset a
// status left by any earlier call would be read as this call's failure.
func callChain(p *windows.LazyProc, args ...uintptr) (winid.Handle, error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	procSetLastError.Call(0)
	r, _, err := p.Call(args...)
	return handleResult(r, err)
}

func (Native) TopWindow() (winid.Handle, error) {
	return callChain(procGetTopWindow, 0)
}

func (Native) NextWindow(h winid.Handle) (winid.Handle, error) {
	return callChain(procGetWindow, uintptr(h), gwHwndNext)
}

func (Native) PrevWindow(h winid.Handle) (winid.Handle, error) {
	return callChain(procGetWindow, uintptr(h), gwHwndPrev)
}

// EnumWindows callbacks cannot be released once created, so a single
// callback is shared and each call is routed to its visitor by lParam.
var (
	enumCallback = windows.NewCallback(enumWindowsProc)

	enumMu       sync.Mutex
	enumNextID   uintptr
	enumVisitors = make(map[uintptr]func(winid.Handle))
)

func enumWindowsProc(h windows.HWND, lparam uintptr) uintptr {
	enumMu.Lock()
	visit := enumVisitors[lparam]
	enumMu.Unlock()
	if visit != nil {
		visit(winid.Handle(h))
	}
	return 1
}

func (Native) EnumWindows(visit func(winid.Handle)) error {
	enumMu.Lock()
	enumNextID++
	id := enumNextID
	enumVisitors[id] = visit
	enumMu.Unlock()

	defer func() {
		enumMu.Lock()
		delete(enumVisitors, id)
		enumMu.Unlock()
	}()

	r, _, err := procEnumWindows.Call(enumCallback, id)
	if r == 0 {
		return err
	}
	return nil
}

func (Native) ForegroundWindow() winid.Handle {
	return winid.Handle(windows.GetForegroundWindow())
}

func (Native) WindowRect(h winid.Handle) (model.Rect, error) {
	var rect windows.Rect
	r, _, err := procGetWindowRect.Call(uintptr(h), uintptr(unsafe.Pointer(&rect)))
	if r == 0 {
		return model.Rect{}, err
	}
	return model.Rect{
		Left:   rect.Left,
		Top:    rect.Top,
		Right:  rect.Right,
		Bottom: rect.Bottom,
	}, nil
}

func (Native) ExStyle(h winid.Handle) uint32 {
	r, _, _ := procGetWindowLong.Call(uintptr(h), uintptr(gwlExStyle))
	return uint32(r)
}

func (Native) IsVisible(h winid.Handle) bool {
	return windows.IsWindowVisible(hwnd(h))
}

func (Native) IsMinimized(h winid.Handle) bool {
	r, _, _ := procIsIconic.Call(uintptr(h))
	return r != 0
}

func (Native) IsCloaked(h winid.Handle) bool {
	var cloaked uint32
	hr, _, _ := procDwmGetWindowAttribute.Call(
		uintptr(h),
		dwmwaCloaked,
		uintptr(unsafe.Pointer(&cloaked)),
		unsafe.Sizeof(cloaked),
	)
	return int32(hr) >= 0 && cloaked != 0
}

func (Native) Title(h winid.Handle) (string, error) {
	n, _, _ := procGetWindowTextLengthW.Call(uintptr(h))
	length := int32(n)
	if length <= 0 {
		return "", nil
	}
	buf := make([]uint16, length+1)
	copied, err := windows.GetWindowText(hwnd(h), &buf[0], int32(len(buf)))
	if copied <= 0 {
		if err != nil && err != windows.ERROR_SUCCESS {
			return "", err
		}
		return "", nil
	}
	return windows.UTF16ToString(buf[:copied]), nil
}

func (Native) OwnerPID(h winid.Handle) uint32 {
	var pid uint32
	if _, err := windows.GetWindowThreadProcessId(hwnd(h), &pid); err != nil {
		return 0
	}
	return pid
}
