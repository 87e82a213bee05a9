// Package catalog holds the published service menu: detailing packages and
// membership tiers with their prices.
package catalog

import (
	domain "github.com/BruksfildServices01/detailing-scheduler/internal/domain/appointment"
)

type PackageInfo struct {
	ID            domain.Package `json:"id"`
	Name          string         `json:"name"`
	Price         int            `json:"price"`
	DurationLabel string         `json:"durationLabel"`
	DurationHours int            `json:"durationHours"`
	BestFor       string         `json:"bestFor"`
	Features      []string       `json:"features"`
	Popular       bool           `json:"popular,omitempty"`
}

type MembershipTier struct {
	ID             domain.Package `json:"id"`
	Name           string         `json:"name"`
	MonthlyPrice   int            `json:"monthlyPrice"`
	WeeklyPrice    int            `json:"weeklyPrice"`
	MonthlySavings int            `json:"monthlySavings"`
	WeeklySavings  int            `json:"weeklySavings"`
	Description    string         `json:"description"`
	Benefits       []string       `json:"benefits"`
}

// MinimumCommitmentMonths applies to every membership tier.
const MinimumCommitmentMonths = 2

func Packages() []PackageInfo {
	return []PackageInfo{
		{
			ID:            domain.PackagePlatinum,
			Name:          "Platinum Package",
			Price:         75,
			DurationLabel: "45–60 minutes",
			DurationHours: domain.PackagePlatinum.DurationHours(),
			BestFor:       "Quick refresh or regular weekly cleanups",
			Features: []string{
				"Pressure washer + foam cannon hand wash",
				"Rinse & dry with plush microfiber towels",
				"Wheel degreasing & tire shine",
				"Quick vacuum (seats, floors, trunk)",
				"Wipe down of dash, doors, and plastics",
				"Streak-free window cleaning (inside & out)",
				"Air freshener spray",
			},
		},
		{
			ID:            domain.PackageGold,
			Name:          "Gold Package",
			Price:         120,
			DurationLabel: "90–120 minutes",
			DurationHours: domain.PackageGold.DurationHours(),
			BestFor:       "Monthly deep cleans or pre-event prep",
			Popular:       true,
			Features: []string{
				"Everything in Platinum, plus:",
				"Ceramic spray sealant or wax applied by hand",
				"Interior plastic + leather surfaces cleaned",
				"Leather seats conditioned",
				"Carpet & fabric seats cleaned using drill brush + carpet cleaner",
				"Vents, cup holders, door jambs detailed",
				"Trim & bumper restoration for faded plastics",
				"Pet hair removal (light to moderate)",
				"Tornador blowout for tight areas",
			},
		},
		{
			ID:            domain.PackageDiamond,
			Name:          "Diamond Package",
			Price:         175,
			DurationLabel: "2.5–3.5 hours",
			DurationHours: domain.PackageDiamond.DurationHours(),
			BestFor:       "High-end vehicles, special occasions, or resale prep",
			Features: []string{
				"Everything in Gold, plus:",
				"Full Tornador + vacuum interior blowout/detail",
				"Ceramic coat applied for 3–6 month paint protection",
				"1-step spray wax enhancement for shine",
				"Deep stain treatment for carpets & seats",
				"Engine bay light cleaning (if safe to access)",
				"Full pet hair removal (heavy-duty)",
				"Odor treatment & premium scent choice",
				"Complimentary microfiber towel & club decal",
			},
		},
	}
}

func MembershipTiers() []MembershipTier {
	return []MembershipTier{
		{
			ID:             domain.PackagePlatinum,
			Name:           "Platinum Member",
			MonthlyPrice:   68,
			WeeklyPrice:    60,
			MonthlySavings: 7,
			WeeklySavings:  60,
			Description:    "Best for routine maintenance & seasonal refreshes",
			Benefits: []string{
				"Priority access to booking",
				"Discounted add-ons (pet hair, engine bay, etc.)",
				"$10 OFF Platinum service",
				"$15 OFF Gold service",
				"$20 OFF Diamond service",
				"Locked-in pricing for membership duration",
			},
		},
		{
			ID:             domain.PackageGold,
			Name:           "Gold Member",
			MonthlyPrice:   96,
			WeeklyPrice:    85,
			MonthlySavings: 24,
			WeeklySavings:  140,
			Description:    "Perfect for daily drivers or families",
			Benefits: []string{
				"48-hour guaranteed booking",
				"Free tire shine + premium scent upgrades",
				"$15 OFF Platinum service",
				"$25 OFF Gold service",
				"$35 OFF Diamond service",
				"Locked-in pricing for full term",
			},
		},
		{
			ID:             domain.PackageDiamond,
			Name:           "Diamond Member",
			MonthlyPrice:   140,
			WeeklyPrice:    125,
			MonthlySavings: 35,
			WeeklySavings:  200,
			Description:    "Ideal for luxury cars, show vehicles, or perfectionists",
			Benefits: []string{
				"First-priority scheduling",
				"Monthly pet hair + stain touch-up included",
				"Free microfiber towel + club decal",
				"$25 OFF Platinum service",
				"$40 OFF Gold service",
				"$60 OFF Diamond service",
				"Locked-in VIP pricing",
			},
		},
	}
}
