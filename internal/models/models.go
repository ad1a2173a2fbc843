package models

import "time"

// Replay is a single parsed ladder game, keyed by the sha1 of the replay file.
type Replay struct {
	ID             string    `json:"replay_id"`
	FilePath       string    `json:"file_path"`
	PlayedAt       time.Time `json:"played_at"`
	MapName        string    `json:"map_name"`
	PlayerRace     string    `json:"player_race"`
	OpponentRace   string    `json:"opponent_race"`
	Matchup        string    `json:"matchup"`
	Result         string    `json:"result"`
	GameLengthSec  int       `json:"game_length_sec"`
	PlayerMMR      *int      `json:"player_mmr"`
	OpponentMMR    *int      `json:"opponent_mmr"`
	PlayerAPM      int       `json:"player_apm"`
	OpponentAPM    int       `json:"opponent_apm"`
	Workers6m      int       `json:"workers_6m"`
	Workers8m      int       `json:"workers_8m"`
	Workers10m     int       `json:"workers_10m"`
	BasesBy6m      int       `json:"bases_by_6m"`
	BasesBy8m      int       `json:"bases_by_8m"`
	ArmySupply8m   int       `json:"army_supply_8m"`
	ArmyMinerals8m int       `json:"army_minerals_8m"`
	ArmyGas8m      int       `json:"army_gas_8m"`
	WorkerKills8m  int       `json:"worker_kills_8m"`
	WorkerLosses8m int       `json:"worker_losses_8m"`
	ParsedAt       time.Time `json:"parsed_at"`
}

// Results a replay can carry. Anything else counts as undecided.
const (
	ResultWin  = "Win"
	ResultLoss = "Loss"
)

type ReplayFilter struct {
	Matchup string
	Result  string
	MapName string // partial match
	Days    int    // only games from the last N days when > 0
	Limit   int
	Offset  int
}

// MMRPoint is one entry of the MMR history feed, oldest first.
type MMRPoint struct {
	Date    string `json:"date"`
	MMR     int    `json:"mmr"`
	Result  string `json:"result"`
	Matchup string `json:"matchup"`
}

// MMRHistory is the payload of GET /api/v1/mmr/history.
type MMRHistory struct {
	PlayerName string     `json:"player_name"`
	Data       []MMRPoint `json:"data"`
	Tags       []Tag      `json:"tags"`
}
