package render

import (
	"fmt"
)

// ResourceAllocationError is returned when the device fails to create a buffer or program.
type ResourceAllocationError struct {
	Resource string
	Err      error
}

func (e *ResourceAllocationError) Error() string {
	return fmt.Sprintf("failed to allocate %s: %v", e.Resource, e.Err)
}

func (e *ResourceAllocationError) Unwrap() error { return e.Err }

// ShaderCompileError carries the compiler or linker log of a failed program.
type ShaderCompileError struct {
	Stage string // "vertex", "fragment" or "link"
	Log   string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %q", e.Stage, e.Log)
}

type DrawError struct {
	Index int
	Err   error
}

func (e *DrawError) Error() string {
	return fmt.Sprintf("failed to draw object %d: %v", e.Index, e.Err)
}

func (e *DrawError) Unwrap() error { return e.Err }

// PresentationError means the frame could not be swapped to the screen.
type PresentationError struct {
	Err error
}

func (e *PresentationError) Error() string {
	return fmt.Sprintf("failed to present frame: %v", e.Err)
}

func (e *PresentationError) Unwrap() error { return e.Err }
