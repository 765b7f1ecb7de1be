package contracts

// MilestoneKind distinguishes what a milestone threshold is measured
// against.
type MilestoneKind string

const (
	MilestoneStreak  MilestoneKind = "streak"  // consecutive-day streak length
	MilestoneEntries MilestoneKind = "entries" // lifetime entry count
)

// MilestoneReward describes the unlock shown to the user when a
// milestone is reached. Presentation only; the engine never dispatches
// anything.
type MilestoneReward struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
}

// Milestone is one threshold in the catalogue. The catalogue is an
// explicit input to the evaluator, not a global, so it can be extended
// or swapped in tests without touching the algorithm.
type Milestone struct {
	ID        string           `json:"id"`
	Kind      MilestoneKind    `json:"kind"`
	Threshold int              `json:"threshold"`
	Headline  string           `json:"headline"`
	Body      string           `json:"body,omitempty"`
	Reward    *MilestoneReward `json:"reward,omitempty"`
}

// MilestoneRecord is the evaluated state of one milestone. Achieved
// state is monotonic: once a record carries an AchievedDate, every later
// evaluation echoes that same date even if the live streak has since
// dropped below the threshold.
type MilestoneRecord struct {
	MilestoneID  string `json:"milestone_id"`
	Achieved     bool   `json:"achieved"`
	AchievedDate DayKey `json:"achieved_date,omitempty"`
}

// MilestoneProgress reports how far the owner is from an unachieved
// milestone.
type MilestoneProgress struct {
	Current int    `json:"current"`
	Target  int    `json:"target"`
	Message string `json:"message"`
}

// NextMilestone is the first unachieved milestone in catalogue order,
// with progress toward it.
type NextMilestone struct {
	Milestone Milestone         `json:"milestone"`
	Progress  MilestoneProgress `json:"progress"`
}
