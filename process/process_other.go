//go:build !windows

package process

import "orbwalker/memory"

type Attachment struct {
	PID        uint32
	ModuleBase uintptr
	Reader     memory.Reader
}

func (a *Attachment) Close() error { return nil }

func Attach(t Target) (*Attachment, error) {
	return nil, ErrUnsupported
}

func Running(name string) bool { return false }
