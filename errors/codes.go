package errors

// ErrorCode is the machine readable code carried by an AppError
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = 200

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1003
	ErrorCode_RATE_LIMITED     ErrorCode = 1004

	// Sentiment data
	ErrorCode_PLATFORM_NOT_FOUND ErrorCode = 2000
	ErrorCode_CLUSTER_NOT_FOUND  ErrorCode = 2001
	ErrorCode_DATA_SHAPE_INVALID ErrorCode = 2002
	ErrorCode_SOURCE_UNAVAILABLE ErrorCode = 2003
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:            "HTTP_OK",
	ErrorCode_INTERNAL:           "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:   "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:          "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:    "INVALID_PAYLOAD",
	ErrorCode_RATE_LIMITED:       "RATE_LIMITED",
	ErrorCode_PLATFORM_NOT_FOUND: "PLATFORM_NOT_FOUND",
	ErrorCode_CLUSTER_NOT_FOUND:  "CLUSTER_NOT_FOUND",
	ErrorCode_DATA_SHAPE_INVALID: "DATA_SHAPE_INVALID",
	ErrorCode_SOURCE_UNAVAILABLE: "SOURCE_UNAVAILABLE",
}

func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

// MarshalText renders the code by name in JSON bodies and log fields
func (c ErrorCode) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
