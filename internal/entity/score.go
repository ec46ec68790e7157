package entity

// Score is the career tally across games on this scoreboard.
type Score struct {
	RedWins    int `json:"red_wins"`
	YellowWins int `json:"yellow_wins"`
	Draws      int `json:"draws"`
}
