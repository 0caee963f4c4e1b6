package scores

import "fmt"

// ProviderError is a non-success response from one of the 365scores APIs.
// The upstream status and body are preserved in the message.
type ProviderError struct {
	API    string // "Games", "Bets/Lines" or "Init"
	Status int
	Body   string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("365scores %s API returned error: %d - %s", e.API, e.Status, e.Body)
}

// UnreachableError means the request produced no response at all
// (network failure or timeout).
type UnreachableError struct {
	API string
	Err error
}

func (e *UnreachableError) Error() string {
	return fmt.Sprintf("365scores %s API request failed - no response received", e.API)
}

func (e *UnreachableError) Unwrap() error { return e.Err }
