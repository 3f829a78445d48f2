package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeMalformed          Code = "MALFORMED"
	CodeIO                 Code = "IO"
	CodeRender             Code = "RENDER"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeInternal           Code = "INTERNAL"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Kind groups errors by the user action they interrupt.
type Kind string

// Error kinds
const (
	// KindUnspecified is used for errors that have not been classified yet
	KindUnspecified Kind = ""

	// KindLoad marks a catalog that could not be loaded. The session cannot
	// continue without a catalog, so these are the only fatal errors.
	KindLoad Kind = "load"

	// KindPersistence marks a session file that could not be read or written
	KindPersistence Kind = "persistence"

	// KindExport marks a sheet that could not be written or rendered
	KindExport Kind = "export"

	// KindNotice is informational; the operation was a no-op
	KindNotice Kind = "notice"
)

// String returns the string representation of the kind
func (k Kind) String() string {
	return string(k)
}

// Fatal reports whether errors of this kind end the session
func (k Kind) Fatal() bool {
	return k == KindLoad
}

// Title returns the dialog title a UI shows for an error with this kind and code
func Title(kind Kind, code Code) string {
	switch {
	case kind == KindNotice:
		return "Information"
	case kind == KindLoad && code == CodeMalformed:
		return "XML Parse Error"
	case code == CodeNotFound:
		return "File Not Found"
	default:
		return "Error"
	}
}
