package platform

import "errors"

var (
	// ErrEnvironmentUnavailable means the window system could not be reached.
	ErrEnvironmentUnavailable = errors.New("window system unavailable")

	// ErrFocusResolution means no focused top-level window could be found or read.
	ErrFocusResolution = errors.New("could not get focused window")

	// ErrEnumeration means no window list could be obtained.
	ErrEnumeration = errors.New("could not get list of windows")
)
