package registry

import (
	"strconv"
	"strings"

	"github.com/kosdesign/game-center/internal/models"
)

// compareVersions orders semantic version strings by numeric dot segments;
// missing segments count as zero, non-numeric segments as zero.
func compareVersions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	n := len(as)
	if len(bs) > n {
		n = len(bs)
	}
	for i := 0; i < n; i++ {
		var av, bv int
		if i < len(as) {
			av, _ = strconv.Atoi(as[i])
		}
		if i < len(bs) {
			bv, _ = strconv.Atoi(bs[i])
		}
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}
	return 0
}

// latestVersion picks the highest semantic version among a game's records.
func latestVersion(versions []models.GameVersion) *models.GameVersion {
	if len(versions) == 0 {
		return nil
	}
	best := &versions[0]
	for i := 1; i < len(versions); i++ {
		if compareVersions(versions[i].GameVersion, best.GameVersion) > 0 {
			best = &versions[i]
		}
	}
	return best
}
