package errors

import (
	"errors"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetKind extracts the outermost non-empty kind from an error chain
func GetKind(err error) Kind {
	for err != nil {
		var customErr *Error
		if !errors.As(err, &customErr) {
			return KindUnspecified
		}
		if customErr.Kind != KindUnspecified {
			return customErr.Kind
		}
		err = customErr.Cause
	}
	return KindUnspecified
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]interface{} {
	if err == nil {
		return nil
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}

	return nil
}

// GetMessage extracts the user-friendly message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

// GetTitle returns the dialog title for an error
func GetTitle(err error) string {
	return Title(GetKind(err), GetCode(err))
}

// Type checking helpers

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return GetCode(err) == CodeAlreadyExists
}

// IsFailedPrecondition checks if an error is a failed precondition error
func IsFailedPrecondition(err error) bool {
	return GetCode(err) == CodeFailedPrecondition
}

// IsMalformed checks if an error is a malformed input error
func IsMalformed(err error) bool {
	return GetCode(err) == CodeMalformed
}

// IsIO checks if an error is an IO error
func IsIO(err error) bool {
	return GetCode(err) == CodeIO
}

// IsRender checks if an error is a rendering error
func IsRender(err error) bool {
	return GetCode(err) == CodeRender
}

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}

// IsNotice checks if an error is informational only
func IsNotice(err error) bool {
	return GetKind(err) == KindNotice
}

// IsFatal checks if an error ends the session
func IsFatal(err error) bool {
	return GetKind(err).Fatal()
}
