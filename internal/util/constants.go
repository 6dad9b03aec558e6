package util

const DateFormat = "2006-01-02"

const (
	MaxTypeNameLength = 100
	DefaultPage       = 0
)

const HeaderRequestID = "X-Request-ID"
