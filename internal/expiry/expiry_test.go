package expiry

import (
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	date := func(s string) *time.Time {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatalf("parse %s: %v", s, err)
		}
		return &parsed
	}

	cases := []struct {
		name string
		in   *time.Time
		want Status
	}{
		{"nil date", nil, StatusUnknown},
		{"day before", date("2023-12-31"), StatusExpired},
		{"far past", date("2020-06-15"), StatusExpired},
		{"same instant", date("2024-01-01"), StatusWarning},
		{"mid window", date("2024-01-20"), StatusWarning},
		{"window boundary", date("2024-01-31"), StatusWarning},
		{"day past window", date("2024-02-01"), StatusValid},
		{"far future", date("2030-01-01"), StatusValid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.in, now); got != tc.want {
				t.Fatalf("Classify(%v) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}

func TestIsExpired(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	if !IsExpired(&past, now) {
		t.Fatal("past date should be expired")
	}
	if IsExpired(&future, now) {
		t.Fatal("future date should not be expired")
	}
	if IsExpired(nil, now) {
		t.Fatal("missing date should not count as expired")
	}
}
