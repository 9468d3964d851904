// Kalah Board Layout
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
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	Pits   = 6          // pits per side
	Stones = 4          // initial stones per pit
	Cells  = 2*Pits + 2 // pits and stores
	Store1 = Pits       // Player 1's store
	Store2 = Cells - 1  // Player 2's store
	Total  = 2 * Pits * Stones
)

var repr = regexp.MustCompile(`^\s*<\s*(\d+(\s*,\s*\d+)+)\s*>\s*$`)

// Board holds the stones of every cell.
//
// Indices 0-5 are the pits of Player 1 (left to right), followed by
// the store of Player 1.  Indices 7-12 are the pits of Player 2,
// followed by the store of Player 2.  Sowing walks the indices in
// ascending order.
type Board [Cells]int

// MakeBoard returns the board every game starts with
func MakeBoard() (b Board) {
	for i := range b {
		if !IsStore(i) {
			b[i] = Stones
		}
	}
	return
}

func IsStore(i int) bool {
	return i == Store1 || i == Store2
}

// StoreOf returns the index of P's store, or -1
func StoreOf(p Player) int {
	switch p {
	case Player1:
		return Store1
	case Player2:
		return Store2
	}
	return -1
}

// Owner returns the player a pit or store belongs to
func Owner(i int) Player {
	switch {
	case i < 0 || i >= Cells:
		return None
	case i <= Store1:
		return Player1
	default:
		return Player2
	}
}

// PitRange returns the half-open index range of P's pits
func PitRange(p Player) (lo, hi int) {
	switch p {
	case Player1:
		return 0, Store1
	case Player2:
		return Store1 + 1, Store2
	}
	return 0, 0
}

// Opposite maps a pit to the pit facing it
func Opposite(pit int) int {
	return 2*Pits - pit
}

// Next returns the cell MOVER would sow into after I
func Next(i int, mover Player) int {
	i = (i + 1) % Cells
	if i == StoreOf(mover.Opponent()) {
		i = (i + 1) % Cells
	}
	return i
}

// Distance counts the cells from FROM to TO walking forwards.
//
// Stores are not skipped.
func Distance(from, to int) int {
	return (to - from + Cells) % Cells
}

// Sum counts all stones on the board
func (b *Board) Sum() (n int) {
	for _, c := range b {
		n += c
	}
	return
}

// Side returns the number of stones and non-empty pits of P
func (b *Board) Side(p Player) (stones, occupied int) {
	lo, hi := PitRange(p)
	for i := lo; i < hi; i++ {
		stones += b[i]
		if b[i] > 0 {
			occupied++
		}
	}
	return
}

// Parse reads a board in KGP notation, <6,s1,s2,p0,...,p5,p7,...,p12>
func Parse(notation string) (b Board, err error) {
	match := repr.FindStringSubmatch(notation)
	if match == nil {
		return b, errors.New("invalid board notation")
	}

	var data []int
	for _, part := range strings.Split(match[1], ",") {
		part = strings.TrimSpace(part)
		n, err := strconv.ParseUint(part, 10, 16)
		if err != nil {
			return b, err
		}
		data = append(data, int(n))
	}

	if data[0] != Pits || len(data) != 1+2+2*Pits {
		return b, errors.New("invalid size")
	}

	b[Store1] = data[1]
	b[Store2] = data[2]
	for i := 0; i < Pits; i++ {
		b[i] = data[3+i]
		b[Store1+1+i] = data[3+Pits+i]
	}
	return b, nil
}

// String converts a board into KGP notation
func (b Board) String() string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "<%d,%d,%d", Pits, b[Store1], b[Store2])
	for i := 0; i < Pits; i++ {
		fmt.Fprintf(&buf, ",%d", b[i])
	}
	for i := Store1 + 1; i < Store2; i++ {
		fmt.Fprintf(&buf, ",%d", b[i])
	}
	fmt.Fprint(&buf, ">")

	return buf.String()
}
