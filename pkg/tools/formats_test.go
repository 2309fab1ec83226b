package tools

import "testing"

func TestIsDateTimeAcceptsISO8601(t *testing.T) {
	for _, s := range []string{
		"2024-01-01T00:00:00Z",
		"2024-01-01T00:00:00",
		"2024-06-15T23:59:59.123Z",
	} {
		if !IsDateTime(s) {
			t.Fatalf("expected %q to be accepted", s)
		}
	}
}

func TestIsDateTimeAcceptsUnixTimestampStrings(t *testing.T) {
	if !IsDateTime("1700000000") {
		t.Fatalf("expected 10-digit unix seconds to be accepted")
	}
	if !IsDateTime("1700000000000") {
		t.Fatalf("expected 13-digit unix millis to be accepted")
	}
}

func TestIsDateTimeRejectsPartialTimestamps(t *testing.T) {
	for _, s := range []string{"1700000", "17000000000", "170000000000000", "not-a-date", "2024-01-01"} {
		if IsDateTime(s) {
			t.Fatalf("expected %q to be rejected", s)
		}
	}
}

func TestIsTimezoneAcceptsRegionFormats(t *testing.T) {
	for _, s := range []string{"UTC", "Asia/Kolkata", "America/New_York", "America/Indiana/Knox"} {
		if !IsTimezone(s) {
			t.Fatalf("expected %q to be accepted", s)
		}
	}
}

func TestIsTimezoneRejectsInvalidFormats(t *testing.T) {
	for _, s := range []string{"Asia/Kolkata/Extra/Extra", "asia123", "Europe/Paris.fr", ""} {
		if IsTimezone(s) {
			t.Fatalf("expected %q to be rejected", s)
		}
	}
}

func TestIsDate(t *testing.T) {
	if !IsDate("2024-09-05") {
		t.Fatalf("expected YYYY-MM-DD to be accepted")
	}
	if IsDate("2024-09-05T00:00:00Z") {
		t.Fatalf("expected datetime to be rejected")
	}
	if IsDate("05-09-2024") {
		t.Fatalf("expected DD-MM-YYYY to be rejected")
	}
}
