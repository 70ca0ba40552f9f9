package contextengine

import "fmt"

// NotFoundError reports a scan root that does not exist or is not a
// directory. Fatal for the scan call; never retried internally.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("scan root not found or not a directory: %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("scan root not found or not a directory: %s", e.Path)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// PermissionError reports a directory that could not be listed during a
// scan. Fatal for that scan call.
type PermissionError struct {
	Path string
	Err  error
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("cannot list directory: %s: %v", e.Path, e.Err)
}

func (e *PermissionError) Unwrap() error { return e.Err }

// NotScannedError reports an Assemble call made without a scanned tree.
// This is a usage error on the caller's side, surfaced immediately.
type NotScannedError struct{}

func (e *NotScannedError) Error() string {
	return "project has not been scanned yet"
}

// FileReadError reports a single selected file that could not be read
// during assembly. Recovered locally: the file is dropped from the result
// and the rest of the assembly proceeds.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("cannot read file: %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }
