// Package win32 provides the Windows window enumeration backend over user32
// and dwmapi. Importing it for side effects registers the backend with
// internal/platform. On other operating systems the package is empty and
// queries report platform.ErrUnsupported.
package win32
