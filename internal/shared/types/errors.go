package types

import "errors"

var (
	ErrInvalidCriticalMode = errors.New("invalid critical-client mode: use todos, apenas-criticos or sem-criticos")
	ErrInvalidReportType   = errors.New("invalid report type: use csv, json, xlsx or pdf")
)
