package logger

const RequestIdKey = "X-Request-Id"

var LogDir string
