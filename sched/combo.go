// Scheduler Combinator
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
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"go-mancala"
)

// Combo runs a sequence of stages
type Combo struct {
	Workers uint
	Timeout time.Duration
	Stages  []Composable
}

// Run passes AGENTS through every stage.  Each stage only receives the
// agents that qualified in the previous stage.  The agents that
// qualified in the last stage are returned.
func (c *Combo) Run(ctx context.Context, agents []mancala.Agent) ([]mancala.Agent, error) {
	next := agents
	for _, stage := range c.Stages {
		prev := next
		stage.Take(prev)
		log.Info().Msgf("Starting stage %q with %d agents", stage, len(prev))

		err := stage.Run(ctx, c.Workers, c.Timeout)
		if err != nil {
			return prev, err
		}

		next = stage.Give()
		if len(next) < len(prev) {
			log.Debug().Msgf("%d agents remain after %s", len(next), stage)
		}
	}
	return next, nil
}
