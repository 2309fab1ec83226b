package tools

import "regexp"

// The format predicates below back the custom "format" keywords used in
// the tool input schemas.

// iso8601Pattern matches a full ISO-8601 datetime with optional fractional
// seconds and optional trailing Z.
var iso8601Pattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(?:\.\d+)?Z?$`)

// unixTimestampPattern matches a unix timestamp encoded as a string of
// exactly 10 (seconds) or 13 (milliseconds) digits. No other lengths.
var unixTimestampPattern = regexp.MustCompile(`^\d{10}(?:\d{3})?$`)

// timezonePattern matches 1-3 slash-separated segments of letters and
// underscores, e.g. "UTC", "Asia/Kolkata", "America/Indiana/Knox".
var timezonePattern = regexp.MustCompile(`^[A-Za-z_]+(?:/[A-Za-z_]+(?:/[A-Za-z_]+)?)?$`)

// datePattern matches a plain YYYY-MM-DD date.
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsDateTime reports whether s is an ISO-8601 datetime or a 10/13-digit
// unix timestamp string.
func IsDateTime(s string) bool {
	return iso8601Pattern.MatchString(s) || unixTimestampPattern.MatchString(s)
}

// IsTimezone reports whether s is a region-format timezone string.
func IsTimezone(s string) bool {
	return timezonePattern.MatchString(s)
}

// IsDate reports whether s is a YYYY-MM-DD date.
func IsDate(s string) bool {
	return datePattern.MatchString(s)
}
