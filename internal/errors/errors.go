package errors

import (
	"encoding/json"
	"fmt"
)

type BusinessErr struct {
	target  string
	message string
}

func (e *BusinessErr) Error() string {
	return e.message
}

func (e *BusinessErr) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Target  string `json:"target"`
		Message string `json:"message"`
	}{Target: e.target, Message: e.message})
}

func NewBusinessErr(target string, msg string) error {
	return &BusinessErr{
		target:  target,
		message: msg,
	}
}

// StoreUnavailableErr is raised when the watchlist store cannot be read.
// Screening treats it as a signal to fail open: the order is let through
// and the fault is surfaced for operator attention.
type StoreUnavailableErr struct {
	err error
}

func (e *StoreUnavailableErr) Error() string {
	return fmt.Sprintf("watchlist store is unavailable - %v", e.err)
}

func (e *StoreUnavailableErr) Unwrap() error {
	return e.err
}

func NewStoreUnavailableErr(err error) *StoreUnavailableErr {
	return &StoreUnavailableErr{err: err}
}
