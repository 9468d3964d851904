// Static Evaluation
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

package bot

import "go-mancala"

// Score of a won game, dominating every heuristic
const WinScore = 10000

// Weights of the heuristic terms
const (
	storeWeight        = 3
	extraTurnWeight    = 1
	captureWeight      = 2
	distributionWeight = 1

	extraTurnBonus = 5
)

// Evaluate scores a state from the perspective of Player 2
func Evaluate(s *mancala.State) int {
	return EvaluateFor(s, mancala.Player2)
}

// EvaluateFor scores a state from the perspective of AI.  Positive
// values favour AI.
func EvaluateFor(s *mancala.State, ai mancala.Player) int {
	if s.Over() {
		switch s.Winner() {
		case ai:
			return WinScore
		case ai.Opponent():
			return -WinScore
		default:
			return 0
		}
	}

	return storeWeight*storeDifference(s, ai) +
		extraTurnWeight*extraTurnPotential(s, ai) +
		captureWeight*capturePotential(s, ai) +
		distributionWeight*stoneDistribution(s, ai)
}

func storeDifference(s *mancala.State, ai mancala.Player) int {
	return s.Store(ai) - s.Store(ai.Opponent())
}

// The potential of a term belongs to the player to move
func sign(s *mancala.State, ai mancala.Player, score int) int {
	if s.Current() != ai {
		return -score
	}
	return score
}

// Count pits that would end in the store of the player to move
func extraTurnPotential(s *mancala.State, ai mancala.Player) (score int) {
	var (
		self   = s.Current()
		store  = mancala.StoreOf(self)
		lo, hi = mancala.PitRange(self)
	)
	for i := lo; i < hi; i++ {
		if s.Pit(i) == mancala.Distance(i, store) {
			score += extraTurnBonus
		}
	}
	return sign(s, ai, score)
}

// Sum up captures the player to move could make next.  Several pits
// reaching the same empty pit are all counted.
func capturePotential(s *mancala.State, ai mancala.Player) (score int) {
	lo, hi := mancala.PitRange(s.Current())
	for i := lo; i < hi; i++ {
		if s.Pit(i) != 0 {
			continue
		}
		for j := lo; j < hi; j++ {
			if j == i || s.Pit(j) != mancala.Distance(j, i) {
				continue
			}
			if opp := s.Pit(mancala.Opposite(i)); opp > 0 {
				score += opp + 1
			}
		}
	}
	return sign(s, ai, score)
}

// Prefer more stones, spread over more pits
func stoneDistribution(s *mancala.State, ai mancala.Player) int {
	b := s.Board()
	own, ownPits := b.Side(ai)
	opp, oppPits := b.Side(ai.Opponent())
	return (own - opp) + 2*(ownPits-oppPits)
}
