package zorder

import (
	"fmt"
	"syscall"

	"github.com/pkg/errors"

	"github.com/mj1618/winzorder/internal/model"
	"github.com/mj1618/winzorder/internal/winid"
)

// Native is the narrow set of windowing primitives the engine needs. Each
// method wraps exactly one host call and performs no interpretation of its
// result beyond converting it to Go types.
type Native interface {
	// TopWindow returns the topmost top-level window. A Null handle comes
	// with the raw status the host reported, which may be a success code.
	TopWindow() (winid.Handle, error)

	// NextWindow returns the window directly below h. Same Null contract
	// as TopWindow.
	NextWindow(h winid.Handle) (winid.Handle, error)

	// PrevWindow returns the window directly above h. Same Null contract
	// as TopWindow.
	PrevWindow(h winid.Handle) (winid.Handle, error)

	// EnumWindows calls visit for every top-level window in host order.
	EnumWindows(visit func(winid.Handle)) error

	// ForegroundWindow returns the focused top-level window or Null.
	ForegroundWindow() winid.Handle

	WindowRect(h winid.Handle) (model.Rect, error)
	ExStyle(h winid.Handle) uint32
	IsVisible(h winid.Handle) bool
	IsMinimized(h winid.Handle) bool
	IsCloaked(h winid.Handle) bool
	Title(h winid.Handle) (string, error)

	// OwnerPID returns the owning process id, or 0 if it cannot be resolved.
	OwnerPID(h winid.Handle) uint32
}

// Code is a raw host status: a Win32 error code or an HRESULT.
type Code uint32

func (c Code) Error() string {
	return fmt.Sprintf("native status 0x%08x", uint32(c))
}

// Win32 status codes the chain-advance primitives report at the end of the
// z-order instead of a clean Null.
const (
	codeSuccess        Code = 0
	codeEnvVarNotFound Code = 203 // ERROR_ENVVAR_NOT_FOUND, left over from an unrelated call
	codeWaitTimeout    Code = 258 // WAIT_TIMEOUT
	codeNoMoreItems    Code = 259 // ERROR_NO_MORE_ITEMS
)

const (
	hresultWin32Mask     = 0xFFFF0000
	hresultFacilityWin32 = 0x80070000
)

// win32Code folds an HRESULT_FROM_WIN32 value back to its Win32 code.
func win32Code(c Code) Code {
	if uint32(c)&hresultWin32Mask == hresultFacilityWin32 {
		return c & 0xFFFF
	}
	return c
}

func codeOf(err error) (Code, bool) {
	var c Code
	if errors.As(err, &c) {
		return c, true
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return Code(errno), true
	}
	return 0, false
}

// IsEndOfChain reports whether err, returned alongside a Null handle from a
// chain primitive, only means the walk ran off the end of the z-order.
// Errors that carry no host status are never benign.
func IsEndOfChain(err error) bool {
	if err == nil {
		return true
	}
	c, ok := codeOf(err)
	if !ok {
		return false
	}
	switch win32Code(c) {
	case codeSuccess, codeEnvVarNotFound, codeWaitTimeout, codeNoMoreItems:
		return true
	}
	return false
}
