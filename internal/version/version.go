// Package version answers "is the host engine at least X.Y.Z" questions for
// codec features whose wire format changed between engine releases.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is an engine version triple.
type Version struct {
	Major int
	Minor int
	Patch int
}

// Parse parses "major.minor" or "major.minor.patch". Suffixes after a dash
// (e.g. "1.8.8-R0.1-SNAPSHOT") are ignored.
func Parse(s string) (Version, error) {
	base := strings.SplitN(strings.TrimSpace(s), "-", 2)[0]
	parts := strings.Split(base, ".")
	if len(parts) < 2 || len(parts) > 3 {
		return Version{}, fmt.Errorf("invalid version string: %q", s)
	}

	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Version{}, fmt.Errorf("invalid version string: %q", s)
		}
		nums[i] = n
	}

	v := Version{Major: nums[0], Minor: nums[1]}
	if len(nums) > 2 {
		v.Patch = nums[2]
	}
	return v, nil
}

// String renders the triple as "major.minor.patch".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// AtLeast reports whether v is at or above the given triple.
func (v Version) AtLeast(major, minor, patch int) bool {
	if v.Major != major {
		return v.Major > major
	}
	if v.Minor != minor {
		return v.Minor > minor
	}
	return v.Patch >= patch
}

// IsLegacy reports whether v predates 1.13, the flattening release.
func (v Version) IsLegacy() bool {
	return !v.AtLeast(1, 13, 0)
}

// Service exposes the engine version injected at startup.
type Service struct {
	current Version
	known   bool
}

// NewService creates a version service for the given engine version string.
// An empty string yields a service that reports no known version, which
// disables version-gated features.
func NewService(engineVersion string) (*Service, error) {
	if strings.TrimSpace(engineVersion) == "" {
		return &Service{}, nil
	}
	v, err := Parse(engineVersion)
	if err != nil {
		return nil, err
	}
	return &Service{current: v, known: true}, nil
}

// Current returns the engine version and whether one is known.
func (s *Service) Current() (Version, bool) {
	return s.current, s.known
}

// AtLeast reports whether a known engine version is at or above the triple.
// An unknown version is never "at least" anything.
func (s *Service) AtLeast(major, minor, patch int) bool {
	return s.known && s.current.AtLeast(major, minor, patch)
}
