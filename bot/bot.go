// Agent Construction
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
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go-mancala"
)

var ErrUnknownAgent = errors.New("unknown agent")

var mmPat = regexp.MustCompile(`^(?:minimax-|mm)(\d+)$`)

// Make creates an agent from a name such as "random", "minimax-3" or
// "mm5".  Engines are created for self-play, as an agent may be
// assigned either side.  SEED is only used by random agents.
func Make(name string, seed uint64) (mancala.Agent, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "random" {
		return MakeRandom(seed), nil
	}

	mat := mmPat.FindStringSubmatch(name)
	if mat == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAgent, name)
	}
	d, err := strconv.Atoi(mat[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAgent, name)
	}
	if d < MinDifficulty || d > MaxDifficulty {
		return nil, fmt.Errorf("%w: difficulty %d out of range", ErrUnknownAgent, d)
	}
	return MakeSelfPlayEngine(d), nil
}
