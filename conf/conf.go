// Configuration Specification
//
// Copyright (c) 2021, 2022  Philip Kaludercic
//
// This file is part of go-mancala.
//
// go-mancala is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License,
// version 3, as published by the Free Software Foundation.
//
// go-mancala is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public
// License, version 3, along with go-mancala. If not, see
// <http://www.gnu.org/licenses/>

package conf

import (
	"runtime"
	"time"

	"go-mancala/bot"
)

type EngineConf struct {
	Difficulty int `toml:"difficulty"`
}

type TournamentConf struct {
	Agents   []string `toml:"agents"`
	Rounds   uint     `toml:"rounds"` // openings per pairing
	Plies    uint     `toml:"plies"`  // random moves per opening
	Seed     uint64   `toml:"seed"`
	Workers  uint     `toml:"workers"`
	Timeout  uint     `toml:"timeout"` // milliseconds per move
	Sanity   bool     `toml:"sanity"`
	Result   string   `toml:"result,omitempty"`
	Graph    string   `toml:"graph,omitempty"` // dominance graph in DOT
}

type DatabaseConf struct {
	Enabled bool   `toml:"enabled"`
	File    string `toml:"file"`
}

type Conf struct {
	Debug      bool           `toml:"debug"`
	Engine     EngineConf     `toml:"engine"`
	Tournament TournamentConf `toml:"tournament"`
	Database   DatabaseConf   `toml:"database"`
}

// Configuration object used by default
var defaultConfig = Conf{
	Engine: EngineConf{
		Difficulty: bot.DefaultDifficulty,
	},
	Tournament: TournamentConf{
		Agents: []string{
			"random",
			"minimax-1",
			"minimax-2",
			"minimax-3",
			"minimax-4",
			"minimax-5",
		},
		Rounds:   4,
		Plies:    4,
		Seed:     2671,
		Workers:  uint(runtime.NumCPU()),
		Timeout:  5000,
		Sanity:   true,
	},
	Database: DatabaseConf{
		Enabled: false,
		File:    "mancala.db",
	},
}

// Default returns a copy of the default configuration
func Default() *Conf {
	c := defaultConfig
	c.Tournament.Agents = append([]string(nil), defaultConfig.Tournament.Agents...)
	return &c
}

// MoveTimeout is the time an agent has for a move, or 0
func (c *Conf) MoveTimeout() time.Duration {
	return time.Duration(c.Tournament.Timeout) * time.Millisecond
}
