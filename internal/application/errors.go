package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure classes of a run
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrFileRead        = errors.New("file read failed")
	ErrFileWrite       = errors.New("file write failed")
	ErrFileDelete      = errors.New("file delete failed")
)

// ArgumentError represents an invalid command-line argument
type ArgumentError struct {
	Field   string
	Message string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// FileReadError represents a resolved icon that could not be read
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }

func (e *FileReadError) Is(target error) bool {
	return target == ErrFileRead
}

// FileWriteError represents a failure writing the icon pack
type FileWriteError struct {
	Path string
	Err  error
}

func (e *FileWriteError) Error() string {
	return fmt.Sprintf("cannot write %s: %v", e.Path, e.Err)
}

func (e *FileWriteError) Unwrap() error { return e.Err }

func (e *FileWriteError) Is(target error) bool {
	return target == ErrFileWrite
}

// FileDeleteError represents a failure removing the previous icon pack
type FileDeleteError struct {
	Path string
	Err  error
}

func (e *FileDeleteError) Error() string {
	return fmt.Sprintf("cannot remove %s: %v", e.Path, e.Err)
}

func (e *FileDeleteError) Unwrap() error { return e.Err }

func (e *FileDeleteError) Is(target error) bool {
	return target == ErrFileDelete
}
