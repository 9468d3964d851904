// Dominance Graph
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
	"io"
	"strings"

	"go-mancala"
)

// WriteDominance writes a Graphviz graph with an edge from every
// agent to each agent it defeated
func (s *scheduler) WriteDominance(w io.Writer) error {
	var (
		nodes = make(map[mancala.Agent]string)
		edges = make(map[[2]string]struct{})
	)
	node := func(a mancala.Agent) (string, error) {
		if node, ok := nodes[a]; ok {
			return node, nil
		}
		node := fmt.Sprintf("n%d", len(nodes))
		nodes[a] = node

		name := strings.ReplaceAll(a.String(), `"`, `\"`)
		_, err := fmt.Fprintf(w, `%s [label="%s"];`+"\n", node, name)
		if err != nil {
			return "", err
		}
		return node, nil
	}

	_, err := fmt.Fprintln(w, `strict digraph dominance { ratio = compress ;`)
	if err != nil {
		return err
	}

	// Agents without any game should also appear
	for _, a := range s.agents {
		if _, err := node(a); err != nil {
			return err
		}
	}

	for _, g := range s.games {
		var win, loss mancala.Agent
		switch g.Outcome.Winner() {
		case mancala.Player1:
			win, loss = g.One, g.Two
		case mancala.Player2:
			win, loss = g.Two, g.One
		default:
			continue
		}

		t, err := node(loss)
		if err != nil {
			return err
		}
		f, err := node(win)
		if err != nil {
			return err
		}

		if _, ok := edges[[2]string{f, t}]; ok {
			continue
		}
		edges[[2]string{f, t}] = struct{}{}
		_, err = fmt.Fprintln(w, f, "->", t, ";")
		if err != nil {
			return err
		}
	}

	_, err = fmt.Fprintln(w, `}`)
	return err
}
