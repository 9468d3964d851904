// Kalah Game State
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

package mancala

// State is a board together with the side to move
type State struct {
	board Board
	// Is it Player 1's turn?
	p1 bool
}

// MakeState returns a fresh game with Player 1 to move
func MakeState() *State {
	return &State{board: MakeBoard(), p1: true}
}

// FromBoard returns a state for an arbitrary board with TURN to move
func FromBoard(b Board, turn Player) *State {
	return &State{board: b, p1: turn != Player2}
}

func (s *State) Player1Turn() bool {
	return s.p1
}

// Current returns the player to move
func (s *State) Current() Player {
	if s.p1 {
		return Player1
	}
	return Player2
}

// Board returns a copy of the board
func (s *State) Board() Board {
	return s.board
}

// Pit returns the stones in cell PIT, or 0 if PIT does not exist
func (s *State) Pit(pit int) int {
	if pit < 0 || pit >= Cells {
		return 0
	}
	return s.board[pit]
}

// Store returns the content of P's store
func (s *State) Store(p Player) int {
	if i := StoreOf(p); i >= 0 {
		return s.board[i]
	}
	return 0
}

// Legal returns true if the player to move may sow PIT
func (s *State) Legal(pit int) bool {
	if IsStore(pit) || Owner(pit) != s.Current() {
		return false
	}
	return s.board[pit] > 0
}

// Moves lists all legal moves in ascending order
func (s *State) Moves() []int {
	lo, hi := PitRange(s.Current())
	moves := make([]int, 0, Pits)
	for i := lo; i < hi; i++ {
		if s.board[i] > 0 {
			moves = append(moves, i)
		}
	}
	return moves
}

// Sow plays PIT for the player to move.
//
// If the move is not legal, the state is left untouched and false is
// returned.  The turn passes to the opponent unless the last stone
// fell into the mover's store or the game ended.
func (s *State) Sow(pit int) bool {
	if !s.Legal(pit) {
		return false
	}

	var (
		self   = s.Current()
		stones = s.board[pit]
		pos    = pit
	)

	// pick up stones from pit and distribute them
	s.board[pit] = 0
	for ; stones > 0; stones-- {
		pos = Next(pos, self)
		s.board[pos]++
	}

	// check for a capture
	if !IsStore(pos) && Owner(pos) == self && s.board[pos] == 1 {
		if opp := Opposite(pos); s.board[opp] > 0 {
			s.board[StoreOf(self)] += s.board[opp] + 1
			s.board[opp] = 0
			s.board[pos] = 0
		}
	}

	if s.Over() {
		s.collect()
		return true
	}

	// check for a repeat-move
	if pos != StoreOf(self) {
		s.p1 = !s.p1
	}
	return true
}

// Over returns true if either side has run out of stones
func (s *State) Over() bool {
	one, _ := s.board.Side(Player1)
	two, _ := s.board.Side(Player2)
	return one == 0 || two == 0
}

// Winner returns the player with more stones, or None.
//
// Stones still in a player's pits count for that player.  Before the
// game is over, there is no winner.
func (s *State) Winner() Player {
	if !s.Over() {
		return None
	}

	one, _ := s.board.Side(Player1)
	two, _ := s.board.Side(Player2)
	one += s.board[Store1]
	two += s.board[Store2]

	switch {
	case one > two:
		return Player1
	case two > one:
		return Player2
	default:
		return None
	}
}

// Outcome translates the winner into a game outcome
func (s *State) Outcome() Outcome {
	if !s.Over() {
		return ONGOING
	}
	switch s.Winner() {
	case Player1:
		return PLAYER1_WON
	case Player2:
		return PLAYER2_WON
	default:
		return DRAW
	}
}

// Move all stones in the pits to the store of their owner
func (s *State) collect() {
	for _, p := range []Player{Player1, Player2} {
		lo, hi := PitRange(p)
		for i := lo; i < hi; i++ {
			s.board[StoreOf(p)] += s.board[i]
			s.board[i] = 0
		}
	}
}

// Deep copy of the state
func (s *State) Copy() *State {
	c := *s
	return &c
}

func (s *State) String() string {
	if s.p1 {
		return s.board.String() + " P1"
	}
	return s.board.String() + " P2"
}
