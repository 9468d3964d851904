// Game Model
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

package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"go-mancala"
)

var ErrIllegalMove = errors.New("illegal move")

// Move applies M to G, returning false if the move was rejected
func Move(g *mancala.Game, m *mancala.Move) bool {
	if m.Player != g.State.Current() {
		return false
	}
	if !g.State.Sow(m.Choice) {
		return false
	}
	g.MoveCount++
	return true
}

// MoveCopy applies M to a copy of G
func MoveCopy(g *mancala.Game, m *mancala.Move) (*mancala.Game, bool) {
	c := *g
	c.State = g.State.Copy()
	return &c, Move(&c, m)
}

// Scramble plays up to PLIES random moves on S.  A move that would
// end the game is not made, so that S remains playable.
func Scramble(s *mancala.State, plies uint, r *rand.Rand) {
	for i := uint(0); i < plies; i++ {
		moves := s.Moves()
		if len(moves) == 0 {
			return
		}
		n := s.Copy()
		n.Sow(moves[r.Intn(len(moves))])
		if n.Over() {
			return
		}
		*s = *n
	}
}

func resign(p mancala.Player) mancala.Outcome {
	if p == mancala.Player1 {
		return mancala.PLAYER1_RESIGNED
	}
	return mancala.PLAYER2_RESIGNED
}

// Play runs G until it is over or an agent fails.
//
// Each request is given at most TIMEOUT, unless TIMEOUT is zero.  An
// agent resigns if it proposes an illegal move or fails without
// proposing a legal move.  The returned error is only non-nil if CTX
// was cancelled.
func Play(ctx context.Context, g *mancala.Game, timeout time.Duration) error {
	l := log.With().Uint64("game", g.Id).Logger()
	l.Debug().Msgf("Starting %s vs. %s on %s", g.One, g.Two, g.State)

	g.Outcome = mancala.ONGOING
	for !g.State.Over() {
		if err := ctx.Err(); err != nil {
			return err
		}

		var (
			self  = g.State.Current()
			moves = g.State.Moves()
			m     = &mancala.Move{
				Agent:  g.Active(),
				Player: self,
				Game:   g,
			}
		)
		switch len(moves) {
		case 0:
			// If this happens, then State.Over or State.Moves
			// must be broken.
			return fmt.Errorf("no moves even though %s is not over", g.State)
		case 1:
			// Skip trivial moves
			m.Choice = moves[0]
			m.Comment = "[Auto-move]"
		default:
			choice, err := request(ctx, g, timeout)
			m.Choice = choice
			if err != nil {
				m.Comment = err.Error()
				if !g.State.Legal(choice) {
					l.Info().Err(err).Msgf("%s failed to move", m.Agent)
					g.Outcome = resign(self)
					return ctx.Err()
				}
			}
		}
		m.Stamp = time.Now()

		if !Move(g, m) {
			l.Info().
				Err(fmt.Errorf("%w %d", ErrIllegalMove, m.Choice)).
				Msgf("%s resigns on %s", m.Agent, g.State)
			g.Outcome = resign(self)
			return nil
		}
		l.Debug().
			Int("move", m.Choice).
			Str("comment", m.Comment).
			Msgf("%s: %s", self, g.State)
	}

	g.Outcome = g.State.Outcome()
	l.Debug().Msgf("Game finished (%s)", g.Outcome)
	return nil
}

// Ask the active agent for a move on a copy of the state
func request(ctx context.Context, g *mancala.Game, timeout time.Duration) (int, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return g.Active().Request(ctx, g.State.Copy())
}
