package domain

// SequenceItem is one slot of the display sequence returned to the client.
type SequenceItem struct {
	Tier      Tier   `json:"tier"`
	AssetPath string `json:"asset_path"`
	IsWinner  bool   `json:"is_winner"`
}

// DrawResult is the outcome of one draw. It is ephemeral: only the winning
// (tier, asset index) pair is persisted, the decoy sequence exists for the
// duration of the response.
type DrawResult struct {
	WinningTier Tier           `json:"-"`
	AssetIndex  int            `json:"-"`
	WinningItem SequenceItem   `json:"winning_item"`
	Items       []SequenceItem `json:"items"`
	WinnerSlot  int            `json:"-"`
	StatsAfter  UserStats      `json:"stats"`
	Collected   bool           `json:"collected"`
}
