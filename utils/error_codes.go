package utils

// Error codes carried in the "code" field of API error bodies.
const (
	ErrorTokenAuthFail    = 1001
	ErrorBadRequest       = 1002
	ErrorNotFound         = 1003
	ErrorConflict         = 1004
	ErrorRemoteFailure    = 2001
	ErrorMirrorFailure    = 2002
	ErrorInternal         = 5000
	ErrorStreamNotDefined = 1005
)
