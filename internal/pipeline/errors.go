package pipeline

import "fmt"

// LoadError reports that one of the five expected photographs is missing or
// undecodable. The run aborts; no partial net is produced.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to load photograph %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("failed to load photograph %s", e.Path)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
