package domain

import "fmt"

// ParseError reports malformed room-definition content.
type ParseError struct {
	Line int
	Text string
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("room definition line %d: %s (%q)", e.Line, e.Msg, e.Text)
	}
	return "room definition: " + e.Msg
}

// RemoteError means the API answered, but with an error payload or a body
// we could not make sense of.
type RemoteError struct {
	Operation string
	Message   string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %s", e.Operation, e.Message)
}

// NetworkError wraps transport failures talking to the API.
type NetworkError struct {
	Operation string
	Err       error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Operation, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// UploadError is a failed chat attachment delivery.
type UploadError struct {
	Path string
	Err  error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload %s: %v", e.Path, e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}
