// ELO Ratings
//
// Copyright (c) 2022  Philip Kaludercic
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
	"math"

	"go-mancala"
)

const (
	MAX_DIFF = 400
	EPS      = 0.0001
	K        = 20

	// Rating every agent starts with
	InitialRating = 1000
)

// Update the rating of A after a game against B, where OUTCOME is 1
// for a win, 0.5 for a draw and 0 for a loss
func updateRating(a, b, outcome float64) float64 {
	// https://de.wikipedia.org/wiki/Elo-Zahl#Erwartungswert
	diff := math.Max(-MAX_DIFF, math.Min(b-a, MAX_DIFF))

	ea := 1 / (1 + math.Pow(10, diff/MAX_DIFF))
	eb := 1 / (1 + math.Pow(10, -diff/MAX_DIFF))
	if math.Abs((ea+eb)-1) > EPS {
		return a
	}

	return a + K*(outcome-ea)
}

// Ratings replays all finished games in order and returns the ELO
// rating of every agent
func (s *scheduler) Ratings() map[mancala.Agent]float64 {
	ratings := make(map[mancala.Agent]float64, len(s.agents))
	for _, a := range s.agents {
		ratings[a] = InitialRating
	}

	for _, g := range s.games {
		var outcome float64
		switch g.Outcome.Winner() {
		case mancala.Player1:
			outcome = 1
		case mancala.Player2:
			outcome = 0
		default:
			if g.Outcome != mancala.DRAW {
				continue
			}
			outcome = 0.5
		}

		one, ok1 := ratings[g.One]
		two, ok2 := ratings[g.Two]
		if ok1 {
			ratings[g.One] = updateRating(one, two, outcome)
		}
		if ok2 {
			ratings[g.Two] = updateRating(two, one, 1-outcome)
		}
	}

	return ratings
}
