package timesheet

import "errors"

// Timesheet ingestion domain errors
var (
	// ErrUpstreamExtraction marks a document whose upstream PDF extraction
	// already failed. Nothing is written to storage for such a run.
	ErrUpstreamExtraction = errors.New("upstream extraction reported an error")

	// ErrMissingRegistration marks a document without an employee
	// registration number. Fatal before any transaction is opened.
	ErrMissingRegistration = errors.New("employee registration not found in document")

	// ErrInvalidDocument marks a payload that is not a parseable export
	// document.
	ErrInvalidDocument = errors.New("payload is not a valid timesheet export")
)
