package registry

import (
	"testing"

	"github.com/kosdesign/game-center/internal/models"
)

func TestCompareVersions(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"1.0", "1.0", 0},
		{"1.0", "1.0.0", 0},
		{"1.2", "1.10", -1},
		{"1.10", "1.2", 1},
		{"2", "1.9.9", 1},
		{"0.9", "1.0", -1},
		{"1.0.1", "1.0", 1},
		{"1.x", "1.0", 0},
		{"", "0", 0},
	}
	for _, tc := range cases {
		if got := compareVersions(tc.a, tc.b); got != tc.want {
			t.Errorf("compareVersions(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestLatestVersion(t *testing.T) {
	if latestVersion(nil) != nil {
		t.Fatal("empty slice should yield nil")
	}
	versions := []models.GameVersion{
		{GameVersion: "1.0"},
		{GameVersion: "1.10"},
		{GameVersion: "1.2"},
		{GameVersion: "0.9"},
	}
	got := latestVersion(versions)
	if got.GameVersion != "1.10" {
		t.Fatalf("latest = %q, want 1.10", got.GameVersion)
	}
}
