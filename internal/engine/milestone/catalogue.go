package milestone

import "github.com/songbird/backend/internal/contracts"

// Catalogue is the ordered set of milestones an evaluation runs
// against. It is passed into Evaluate explicitly so tests and future
// tiers never touch the algorithm. Output order follows catalogue
// order.
type Catalogue []contracts.Milestone

// DefaultCatalogue returns the production milestone tiers: streak
// thresholds 7/14/30/50/100/365 and lifetime entry-count thresholds
// 50/100/500.
func DefaultCatalogue() Catalogue {
	return Catalogue{
		{
			ID: "streak_7", Kind: contracts.MilestoneStreak, Threshold: 7,
			Headline: "One Week Streak!",
			Body:     "A week of musical memories.",
			Reward:   &contracts.MilestoneReward{Icon: "🎨", Text: "Robin theme unlocked"},
		},
		{
			ID: "streak_14", Kind: contracts.MilestoneStreak, Threshold: 14,
			Headline: "Two Weeks Strong!",
			Body:     "Fourteen days, fourteen songs.",
		},
		{
			ID: "streak_30", Kind: contracts.MilestoneStreak, Threshold: 30,
			Headline: "30 Days of Music!",
			Body:     "A month of your life, captured in song.",
			Reward:   &contracts.MilestoneReward{Icon: "🎨", Text: "Cardinal theme unlocked"},
		},
		{
			ID: "streak_50", Kind: contracts.MilestoneStreak, Threshold: 50,
			Headline: "50 Day Streak!",
			Body:     "Fifty days without missing a beat.",
		},
		{
			ID: "streak_100", Kind: contracts.MilestoneStreak, Threshold: 100,
			Headline: "100 Day Streak!",
			Body:     "Triple digits. This is dedication.",
			Reward:   &contracts.MilestoneReward{Icon: "🏅", Text: "Century badge"},
		},
		{
			ID: "streak_365", Kind: contracts.MilestoneStreak, Threshold: 365,
			Headline: "One Full Year!",
			Body:     "365 days. 365 songs. 365 memories.",
			Reward:   &contracts.MilestoneReward{Icon: "🎁", Text: "Year One badge"},
		},
		{
			ID: "entries_50", Kind: contracts.MilestoneEntries, Threshold: 50,
			Headline: "50 Entries!",
			Body:     "Your soundtrack is taking shape.",
		},
		{
			ID: "entries_100", Kind: contracts.MilestoneEntries, Threshold: 100,
			Headline: "100 Entries!",
			Body:     "You're not just tracking songs anymore, you're building a legacy.",
			Reward:   &contracts.MilestoneReward{Icon: "🏅", Text: "100-entry badge"},
		},
		{
			ID: "entries_500", Kind: contracts.MilestoneEntries, Threshold: 500,
			Headline: "500 Entries!",
			Body:     "Half a thousand days of music.",
		},
	}
}
