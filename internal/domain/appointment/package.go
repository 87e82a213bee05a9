package appointment

import "strings"

// Package is a detailing service tier. Each tier occupies the crew for a
// fixed number of whole hours.
type Package string

const (
	PackagePlatinum Package = "platinum"
	PackageGold     Package = "gold"
	PackageDiamond  Package = "diamond"
)

// DefaultDurationHours is charged for any package the table does not know.
const DefaultDurationHours = 1

var packageDurations = map[Package]int{
	PackagePlatinum: 1, // 45-60 minutes
	PackageGold:     2, // 90-120 minutes
	PackageDiamond:  3, // 2.5-3.5 hours
}

// Packages lists the known tiers from shortest to longest.
func Packages() []Package {
	return []Package{PackagePlatinum, PackageGold, PackageDiamond}
}

// ParsePackage normalises s and reports whether it names a known tier.
func ParsePackage(s string) (Package, bool) {
	p := Package(strings.ToLower(strings.TrimSpace(s)))
	return p, p.Valid()
}

func (p Package) Valid() bool {
	_, ok := packageDurations[p]
	return ok
}

// DurationHours never fails: unknown tiers fall back to DefaultDurationHours.
func (p Package) DurationHours() int {
	if d, ok := packageDurations[p]; ok {
		return d
	}
	return DefaultDurationHours
}

func (p Package) String() string {
	return string(p)
}
