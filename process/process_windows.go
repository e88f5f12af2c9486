//go:build windows

package process

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"orbwalker/memory"
)

const PROCESS_VM_READ_QUERY = windows.PROCESS_VM_READ | windows.PROCESS_QUERY_INFORMATION

// Attachment is an open read handle plus the module base of the target.
type Attachment struct {
	PID        uint32
	Handle     windows.Handle
	ModuleBase uintptr
	Reader     *memory.ProcessReader
}

func (a *Attachment) Close() error {
	if a.Handle == 0 {
		return nil
	}
	err := windows.CloseHandle(a.Handle)
	a.Handle = 0
	return err
}

func Attach(t Target) (*Attachment, error) {
	pid, err := FindProcess(t.Executable)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", t.Executable, err)
	}

	handle, err := windows.OpenProcess(PROCESS_VM_READ_QUERY, false, pid)
	if err != nil {
		return nil, fmt.Errorf("open process %d: %w", pid, err)
	}

	module := t.Module
	if module == "" {
		module = t.Executable
	}
	base, err := GetModuleBase(pid, module)
	if err != nil {
		windows.CloseHandle(handle)
		return nil, fmt.Errorf("module %s: %w", module, err)
	}

	return &Attachment{
		PID:        pid,
		Handle:     handle,
		ModuleBase: base,
		Reader:     memory.NewProcessReader(handle),
	}, nil
}

// Running reports whether a process with the executable name exists.
func Running(name string) bool {
	_, err := FindProcess(name)
	return err == nil
}

func FindProcess(name string) (uint32, error) {
	snap, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return 0, err
	}
	defer windows.CloseHandle(snap)

	var pe windows.ProcessEntry32
	pe.Size = uint32(unsafe.Sizeof(pe))
	if err := windows.Process32First(snap, &pe); err != nil {
		return 0, err
	}

	for {
		if windows.UTF16ToString(pe.ExeFile[:]) == name {
			return pe.ProcessID, nil
		}
		if windows.Process32Next(snap, &pe) != nil {
			break
		}
	}
	return 0, ErrNotFound
}

func GetModuleBase(pid uint32, name string) (uintptr, error) {
	snap, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPMODULE|windows.TH32CS_SNAPMODULE32, pid)
	if err != nil {
		return 0, err
	}
	defer windows.CloseHandle(snap)

	var me windows.ModuleEntry32
	me.Size = uint32(unsafe.Sizeof(me))
	if err := windows.Module32First(snap, &me); err != nil {
		return 0, err
	}

	for {
		if windows.UTF16ToString(me.Module[:]) == name {
			return uintptr(me.ModBaseAddr), nil
		}
		if windows.Module32Next(snap, &me) != nil {
			break
		}
	}
	return 0, ErrNotFound
}
