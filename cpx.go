// Package cpx implements the OpenCPX compliance posture data model.
//
// A Posture is the root document describing an organization's aggregate
// compliance state at a point in time: the frameworks it is evaluated
// against, the controls within those frameworks, and references to evidence
// backing each claim. Services expose the current posture over HTTP through
// one of the adapter packages (cpxhttp, cpxchi, cpxgin, cpxecho), all of
// which serve the same canonical JSON document at /cpx.
package cpx

// Version is the current OpenCPX schema version.
const Version = "v1"

const (
	// VersionHeader is the response header carrying the schema version.
	VersionHeader = "X-CPX-Version"

	// DefaultPath is the endpoint path posture documents are served at.
	DefaultPath = "/cpx"
)

// Provider returns the current compliance posture. Adapters call it once
// per incoming request and never cache the result; an error is handed to
// the host framework's error path unmodified.
type Provider func() (*Posture, error)
