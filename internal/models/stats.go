package models

type SummaryStat struct {
	TotalGames    int     `json:"total_games"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	WinRate       float64 `json:"win_rate"`
	CurrentMMR    int     `json:"current_mmr"`
	PeakMMR       int     `json:"peak_mmr"`
	AvgAPM        float64 `json:"avg_apm"`
	AvgGameLength float64 `json:"avg_game_length_sec"`
}

type MatchupStat struct {
	Matchup      string  `json:"matchup"`
	TotalGames   int     `json:"total_games"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	WinRate      float64 `json:"win_rate"`
	AvgWorkers8m float64 `json:"avg_workers_8m"`
}
