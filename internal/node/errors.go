package node

import "errors"

var (
	ErrInvalidImage      = errors.New("invalid image reference")
	ErrInvalidTransition = errors.New("invalid lifecycle transition")
	ErrContainerExists   = errors.New("a container with this name already exists")
	ErrImagePull         = errors.New("error pulling image")
	ErrContainerCreate   = errors.New("error creating container")
	ErrContainerStart    = errors.New("error starting container")
	ErrAttach            = errors.New("error attaching to container")
	ErrNotRunning        = errors.New("container is not running")
	ErrExecNotAttached   = errors.New("exec did not return an attached output stream")
	ErrExecFailed        = errors.New("exec command failed")
	ErrMalformedOutput   = errors.New("malformed command output")
	ErrSerialization     = errors.New("command output is not valid JSON")
)
