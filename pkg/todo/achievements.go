package todo

import (
	"slices"
	"strings"

	"suite/pkg/storage"
	"suite/pkg/utils"
)

const badgesKey = "badges"

// Badge is an achievement identified by its stable label.
type Badge string

const (
	BadgeGettingStarted  Badge = "Getting Started"
	BadgeProPlanner      Badge = "Pro Planner"
	BadgeConsistencyKing Badge = "Consistency King"
	BadgeMonthlyMaster   Badge = "Monthly Master"
	BadgeCategoryPro     Badge = "Category Pro"
)

var badgeIcons = map[Badge]string{
	BadgeGettingStarted:  "🎯",
	BadgeProPlanner:      "💯",
	BadgeConsistencyKing: "🕖",
	BadgeMonthlyMaster:   "📅",
	BadgeCategoryPro:     "🏷️",
}

// Icon returns the emoji shown next to the badge.
func (b Badge) Icon() string {
	return badgeIcons[b]
}

// Display is the icon followed by the label.
func (b Badge) Display() string {
	if icon := b.Icon(); icon != "" {
		return icon + " " + string(b)
	}
	return string(b)
}

// Progress is the input to the achievement rules.
type Progress struct {
	Completed  int
	Streak     int
	Categories int
}

type rule struct {
	badge   Badge
	reached func(Progress) bool
}

// rules is evaluated in order; the order fixes display order for badges
// earned in the same pass.
var rules = []rule{
	{BadgeGettingStarted, func(p Progress) bool { return p.Completed >= 10 }},
	{BadgeProPlanner, func(p Progress) bool { return p.Completed >= 100 }},
	{BadgeConsistencyKing, func(p Progress) bool { return p.Streak >= 7 }},
	{BadgeMonthlyMaster, func(p Progress) bool { return p.Streak >= 30 }},
	{BadgeCategoryPro, func(p Progress) bool { return p.Categories >= 5 }},
}

// AllBadges lists every badge in rule order.
func AllBadges() []Badge {
	out := make([]Badge, len(rules))
	for i, r := range rules {
		out[i] = r.badge
	}
	return out
}

// Evaluate returns the badges whose thresholds p crosses.
func Evaluate(p Progress) []Badge {
	var earned []Badge
	for _, r := range rules {
		if r.reached(p) {
			earned = append(earned, r.badge)
		}
	}
	return earned
}

// BadgeSet is an insertion-ordered set of badges.
type BadgeSet []Badge

// Has reports whether b is in the set.
func (s BadgeSet) Has(b Badge) bool {
	return slices.Contains(s, b)
}

// Union appends the badges of earned not yet present. The receiver is
// never modified and nothing is ever removed.
func (s BadgeSet) Union(earned []Badge) BadgeSet {
	out := slices.Clone(s)
	for _, b := range earned {
		if !out.Has(b) {
			out = append(out, b)
		}
	}
	return out
}

// Accumulate folds one recomputation into the set.
func (s BadgeSet) Accumulate(p Progress) BadgeSet {
	return s.Union(Evaluate(p))
}

// LoadBadges reads the persisted set. Labels stored with their icon prefix
// are normalised; unknown labels are kept as-is.
func LoadBadges(store storage.Store) BadgeSet {
	var labels []string
	if !storage.LoadJSON(store, badgesKey, &labels) {
		return BadgeSet{}
	}

	set := BadgeSet{}
	for _, l := range labels {
		set = set.Union([]Badge{normaliseBadge(l)})
	}
	return set
}

func saveBadges(store storage.Store, set BadgeSet) {
	if err := storage.SaveJSON(store, badgesKey, set); err != nil {
		utils.Warn("failed to persist badges", "error", err)
	}
}

func normaliseBadge(label string) Badge {
	label = strings.TrimSpace(label)
	for b, icon := range badgeIcons {
		if label == string(b) || label == icon+" "+string(b) {
			return b
		}
	}
	return Badge(label)
}
