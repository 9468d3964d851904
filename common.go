// Common Interfaces and constants
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

import (
	"context"
	"fmt"
	"time"
)

type (
	Player  uint8
	Outcome uint8
)

const (
	// Possible players, None doubles as "tie"
	None Player = iota
	Player1
	Player2
)

const (
	// Possible game states
	ONGOING Outcome = iota
	PLAYER1_WON
	PLAYER2_WON
	DRAW
	PLAYER1_RESIGNED
	PLAYER2_RESIGNED
)

func (p Player) String() string {
	switch p {
	case None:
		return "None"
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	}
	return fmt.Sprintf("Player(%d)", uint8(p))
}

// Opponent returns the other player, None stays None
func (p Player) Opponent() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return None
}

func (o Outcome) String() string {
	switch o {
	case ONGOING:
		return "Ongoing"
	case PLAYER1_WON:
		return "Player 1 won"
	case PLAYER2_WON:
		return "Player 2 won"
	case DRAW:
		return "Draw"
	case PLAYER1_RESIGNED:
		return "Player 1 resigned"
	case PLAYER2_RESIGNED:
		return "Player 2 resigned"
	}
	return fmt.Sprintf("Outcome(%d)", uint8(o))
}

// Winner returns the player that benefits from the outcome
func (o Outcome) Winner() Player {
	switch o {
	case PLAYER1_WON, PLAYER2_RESIGNED:
		return Player1
	case PLAYER2_WON, PLAYER1_RESIGNED:
		return Player2
	}
	return None
}

// An Agent proposes moves for whoever is to move in a state
type Agent interface {
	fmt.Stringer
	Request(context.Context, *State) (int, error)
}

type Game struct {
	// The state the game is being played on
	State     *State
	Id        uint64
	One       Agent // Player 1
	Two       Agent // Player 2
	Outcome   Outcome
	MoveCount uint
}

func (g *Game) Player(p Player) Agent {
	switch p {
	case Player1:
		return g.One
	case Player2:
		return g.Two
	}
	return nil
}

func (g *Game) Active() Agent {
	return g.Player(g.State.Current())
}

type Move struct {
	Choice  int
	Comment string
	Agent   Agent
	Player  Player
	Game    *Game
	Stamp   time.Time
}

// Standing is the aggregate result of an agent in a tournament
type Standing struct {
	Agent  string
	Wins   uint
	Losses uint
	Draws  uint
	Rating float64 // ELO rating after the last game
}

func (s Standing) Points() int {
	return 2*int(s.Wins) - 2*int(s.Losses) + int(s.Draws)
}

func (s Standing) Games() uint {
	return s.Wins + s.Losses + s.Draws
}
