// Sanity Test
//
// Copyright (c) 2022, 2023  Philip Kaludercic
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

package sched

import (
	"go-mancala"
	"go-mancala/bot"
)

// MakeSanityCheck returns a stage where every search engine plays
// once against a random agent, making the first move
func MakeSanityCheck(seed uint64) Composable {
	return &scheduler{
		name: "Sanity Test",
		desc: `All search engines are made to compete once against a random
agent, with the engine making the first move.  To pass this stage, an
engine may not lose against the random agent, otherwise it is
disqualified immediately.  Other agents pass without playing.`,
		schedule: func(a []mancala.Agent) (games []*mancala.Game) {
			adv := bot.MakeRandom(seed)
			for _, agent := range a {
				if _, ok := agent.(*bot.Engine); !ok {
					continue
				}
				games = append(games, &mancala.Game{
					State: mancala.MakeState(),
					One:   agent,
					Two:   adv,
				})
			}
			return
		},
	}
}
