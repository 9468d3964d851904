// MinMax Agent with Alpha-Beta Pruning
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

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"go-mancala"
)

const (
	MinDifficulty     = 1
	MaxDifficulty     = 5
	DefaultDifficulty = 2
)

// Plies searched for each difficulty level
var depths = [...]uint{
	1: 2,
	2: 3,
	3: 4,
	4: 5,
	5: 7,
}

func clamp(difficulty int) int {
	if difficulty < MinDifficulty {
		return MinDifficulty
	}
	if difficulty > MaxDifficulty {
		return MaxDifficulty
	}
	return difficulty
}

// Depth returns the search depth for a (clamped) difficulty
func Depth(difficulty int) uint {
	return depths[clamp(difficulty)]
}

// Engine searches for the best move of the player to move.
//
// The only state an engine has is its difficulty and perspective, so
// it may be reused for any number of sequential searches.
type Engine struct {
	difficulty int
	depth      uint // ply cutoff
	selfPlay   bool // evaluate for the player to move at the root
}

// MakeEngine returns an engine that evaluates every position for
// Player 2, regardless of who is to move
func MakeEngine(difficulty int) *Engine {
	var e Engine
	e.SetDifficulty(difficulty)
	return &e
}

// MakeSelfPlayEngine returns an engine that evaluates positions for
// whoever is to move when the search starts, so that it may play
// either side of a game
func MakeSelfPlayEngine(difficulty int) *Engine {
	e := MakeEngine(difficulty)
	e.selfPlay = true
	return e
}

func (e *Engine) SetDifficulty(difficulty int) {
	e.difficulty = clamp(difficulty)
	e.depth = depths[e.difficulty]
}

func (e *Engine) Difficulty() int { return e.difficulty }
func (e *Engine) Depth() uint     { return e.depth }
func (e *Engine) SelfPlay() bool  { return e.selfPlay }

// Player whose evaluation is maximised when searching S
func (e *Engine) perspective(s *mancala.State) mancala.Player {
	if e.selfPlay {
		return s.Current()
	}
	return mancala.Player2
}

// Result of a search
type Result struct {
	Move  int    // best move, -1 if there is none
	Score int    // evaluation of the best move
	Nodes uint64 // visited nodes
	Cuts  uint64 // pruned siblings
}

type search struct {
	ai    mancala.Player // maximising player
	nodes uint64
	cuts  uint64
}

func (sr *search) minimax(σ *mancala.State, δ uint, max bool, α, β int) int {
	sr.nodes++

	moves := σ.Moves()
	if δ == 0 || σ.Over() || len(moves) == 0 {
		return EvaluateFor(σ, sr.ai)
	}

	var Φ int // best evaluation
	if max {
		Φ = math.MinInt
	} else {
		Φ = math.MaxInt
	}

	for _, m := range moves {
		// Create a new copy to avoid destructively modifying
		// parent or sibling states
		n := σ.Copy()
		n.Sow(m)

		// A move that keeps the turn does not hand control to
		// the opponent, so it does not consume a ply.
		var φ int
		if n.Player1Turn() == σ.Player1Turn() {
			φ = sr.minimax(n, δ, max, α, β)
		} else {
			φ = sr.minimax(n, δ-1, !max, α, β)
		}

		if max {
			if φ > Φ {
				Φ = φ
			}
			if Φ > α {
				α = Φ
			}
		} else {
			if φ < Φ {
				Φ = φ
			}
			if Φ < β {
				β = Φ
			}
		}
		if β <= α {
			sr.cuts++
			break
		}
	}

	return Φ
}

// Analyse searches the state for the best move of the player to move.
//
// The context is consulted before every move at the root.  If it is
// done, the best move found so far is returned together with the
// context's error.
func (e *Engine) Analyse(ctx context.Context, s *mancala.State) (Result, error) {
	res := Result{Move: -1, Score: math.MinInt}

	moves := s.Moves()
	if len(moves) == 0 {
		return res, nil
	}
	res.Move = moves[0]

	sr := search{ai: e.perspective(s)}
	for _, m := range moves {
		if err := ctx.Err(); err != nil {
			res.Nodes, res.Cuts = sr.nodes, sr.cuts
			return res, err
		}

		n := s.Copy()
		n.Sow(m)
		φ := sr.minimax(n, e.depth-1, false, math.MinInt, math.MaxInt)
		if φ > res.Score {
			res.Score = φ
			res.Move = m
		}
	}

	res.Nodes, res.Cuts = sr.nodes, sr.cuts
	return res, nil
}

// FindBestMove returns the best move for the player to move, or -1
func (e *Engine) FindBestMove(s *mancala.State) int {
	res, _ := e.Analyse(context.Background(), s)
	return res.Move
}

func (e *Engine) Request(ctx context.Context, s *mancala.State) (int, error) {
	res, err := e.Analyse(ctx, s)
	log.Debug().
		Str("agent", e.String()).
		Str("state", s.String()).
		Int("move", res.Move).
		Int("score", res.Score).
		Uint64("nodes", res.Nodes).
		Uint64("cuts", res.Cuts).
		Msg("Search finished")
	if res.Move < 0 {
		return res.Move, fmt.Errorf("no legal move in %s", s)
	}
	return res.Move, err
}

func (e *Engine) String() string { return fmt.Sprintf("Minimax-%d", e.difficulty) }
