package process

import "errors"

var (
	ErrNotFound    = errors.New("not found")
	ErrUnsupported = errors.New("process attach is only supported on windows")
)

// Target names the process and the module whose base anchors the
// global addresses of the offset table.
type Target struct {
	Executable string
	Module     string
}
