// Random Agent
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
	"sync"

	"golang.org/x/exp/rand"

	"go-mancala"
)

type random struct {
	lock sync.Mutex // a random agent may play several games at once
	rng  *rand.Rand
}

func (r *random) Request(_ context.Context, s *mancala.State) (int, error) {
	moves := s.Moves()
	if len(moves) == 0 {
		return -1, fmt.Errorf("no legal move in %s", s)
	}

	r.lock.Lock()
	defer r.lock.Unlock()
	return moves[r.rng.Intn(len(moves))], nil
}

func (*random) String() string { return "Random" }

// MakeRandom returns an agent that only makes random moves
func MakeRandom(seed uint64) mancala.Agent {
	return &random{rng: rand.New(rand.NewSource(seed))}
}
