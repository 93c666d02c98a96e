// Package winid converts native window handles to and from the string
// identifiers that cross the engine boundary.
//
// An identifier is the fixed prefix followed by the handle value in lowercase
// hex, e.g. "win32:1a2b3c". Callers only ever hold identifiers; a stale or
// foreign identifier fails Decode instead of reaching a native call.
package winid

import (
	"strconv"
	"strings"
	"unsafe"
)

// Prefix namespaces every identifier produced by Encode.
const Prefix = "win32:"

// pointerBits is the width of a native handle on this build.
const pointerBits = int(8 * unsafe.Sizeof(uintptr(0)))

// Handle is an opaque top-level window handle. The engine does not own the
// window behind it and the handle may go stale at any time.
type Handle uintptr

// Null is the "no such window" sentinel.
const Null Handle = 0

// IsNull reports whether h is the sentinel.
func (h Handle) IsNull() bool {
	return h == Null
}

// String returns the identifier for h.
func (h Handle) String() string {
	return Encode(h)
}

// Encode formats h as an identifier.
func Encode(h Handle) string {
	return Prefix + strconv.FormatUint(uint64(h), 16)
}

// Decode parses an identifier produced by Encode. It returns false when the
// prefix is missing, the payload is not hex, or the value does not fit a
// native pointer.
func Decode(id string) (Handle, bool) {
	return decode(id, pointerBits)
}

func decode(id string, bits int) (Handle, bool) {
	payload, ok := strings.CutPrefix(id, Prefix)
	if !ok || payload == "" {
		return Null, false
	}
	v, err := strconv.ParseUint(payload, 16, 64)
	if err != nil {
		return Null, false
	}
	if bits < 64 && v > uint64(1)<<bits-1 {
		return Null, false
	}
	return Handle(uintptr(v)), true
}
