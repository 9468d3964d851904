// Round Robin Tournament
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
	"fmt"

	"golang.org/x/exp/rand"

	"go-mancala"
	"go-mancala/game"
)

// MakeRoundRobin returns a stage where every agent plays against
// every other agent.  Each of the ROUNDS openings is generated by
// playing PLIES random moves, and is played from both sides.
func MakeRoundRobin(rounds, plies uint, seed uint64) Composable {
	return &scheduler{
		name: "Round Robin",
		desc: fmt.Sprintf(`Each agent plays against every other agent on %d
openings, made up of up to %d random moves, once as Player 1 and once
as Player 2.  A win gives two points, a draw one and a loss takes two
points away.`, rounds, plies),
		schedule: func(agents []mancala.Agent) (games []*mancala.Game) {
			rng := rand.New(rand.NewSource(seed))
			for r := uint(0); r < rounds; r++ {
				opening := mancala.MakeState()
				game.Scramble(opening, plies, rng)

				for _, a := range agents {
					for _, b := range agents {
						if a == b {
							continue
						}

						games = append(games, &mancala.Game{
							State: opening.Copy(),
							One:   a,
							Two:   b,
						})
					}
				}
			}
			return
		},
	}
}
