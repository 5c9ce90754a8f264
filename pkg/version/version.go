package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Version of frontkit
const (
	Major = 0
	Minor = 3
	Patch = 0
)

var ErrInvalidVersion = errors.New("invalid version")

type Version struct {
	Major int
	Minor int
	Patch int
}

func Current() Version {
	return Version{
		Major: Major,
		Minor: Minor,
		Patch: Patch,
	}
}

// String gives you the string representation of the current version
func String() string {
	return Current().String()
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func Parse(s string) (Version, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "v")

	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("%w: %q (expected x.y.z)", ErrInvalidVersion, s)
	}

	nums := make([]int, 3)
	for i, name := range []string{"major", "minor", "patch"} {
		n, err := strconv.Atoi(parts[i])
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("%w: %q (invalid %s)", ErrInvalidVersion, s, name)
		}
		nums[i] = n
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

func (v Version) Compare(other Version) int {
	switch {
	case v.Major != other.Major:
		return cmpInt(v.Major, other.Major)
	case v.Minor != other.Minor:
		return cmpInt(v.Minor, other.Minor)
	default:
		return cmpInt(v.Patch, other.Patch)
	}
}

func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// Supports reports whether this build satisfies a minimum version requirement
// such as the one pinned in a config file.
func Supports(required string) (bool, error) {
	if strings.TrimSpace(required) == "" {
		return true, nil
	}
	want, err := Parse(required)
	if err != nil {
		return false, err
	}
	return !Current().Less(want), nil
}

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}
