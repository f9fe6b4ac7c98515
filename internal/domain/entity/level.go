package entity

// LevelInfo is one tier of the level ladder. TargetScore is the minScore of
// the next tier; Unbounded marks the top tier, whose target reads as "Max".
type LevelInfo struct {
	Name        string `json:"name"`
	MinScore    int    `json:"minScore"`
	TargetScore int    `json:"targetScore"`
	Unbounded   bool   `json:"unbounded"`
}

// Levels is ordered by ascending MinScore. The current tier for a score is the
// highest tier whose MinScore does not exceed it.
var Levels = []LevelInfo{
	{Name: "Bronze", MinScore: 0, TargetScore: 500},
	{Name: "Silver", MinScore: 500, TargetScore: 1500},
	{Name: "Gold", MinScore: 1500, TargetScore: 3000},
	{Name: "Diamond", MinScore: 3000, Unbounded: true},
}
