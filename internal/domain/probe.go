package domain

import "fmt"

// DetailOK is the detail string of a successful probe.
const DetailOK = "db ok"

// ProbeResult is the outcome of a single connectivity probe.
// It is built fresh per request, serialized and discarded.
type ProbeResult struct {
	OK     bool   `json:"ok"`
	Detail string `json:"detail"`
}

// ProbeOK returns the success variant.
func ProbeOK() ProbeResult {
	return ProbeResult{OK: true, Detail: DetailOK}
}

// ProbeFailed returns the failure variant carrying a human-readable detail.
func ProbeFailed(detail string) ProbeResult {
	return ProbeResult{OK: false, Detail: detail}
}

// ProbeError builds the failure variant for a runtime error of the given kind.
// The detail has the form "db error: <kind>: <message>".
func ProbeError(kind string, err error) ProbeResult {
	return ProbeFailed(fmt.Sprintf("db error: %s: %v", kind, err))
}
