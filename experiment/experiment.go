// Package experiment builds timestamped identifiers used to name output
// artifacts. Identifiers are pure functions of the supplied clock value,
// with no process-wide state.
package experiment

import (
	"fmt"
	"time"
)

// DefaultPrefix is used when no prefix is supplied
const DefaultPrefix = "EXP"

// ID formats an experiment identifier as PREFIX_YYYYMMDD or
// PREFIX_YYYYMMDD_function when a function name is given.
func ID(now time.Time, prefix, functionName string) string {
	if prefix == "" {
		prefix = DefaultPrefix
	}

	dateStr := now.Format("20060102")
	if functionName != "" {
		return fmt.Sprintf("%s_%s_%s", prefix, dateStr, functionName)
	}
	return fmt.Sprintf("%s_%s", prefix, dateStr)
}
