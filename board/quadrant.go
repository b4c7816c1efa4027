// Package board describes the Ludo board: the four starting quadrants, the
// two tokens each player owns, and the positions a token can occupy.
package board

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidQuadrant = errors.New("quadrant must be one of A, B, C or D")
	ErrInvalidToken    = errors.New("token must be p or q")
)

// Quadrant identifies a player by the corner of the board they start from
type Quadrant string

const (
	A Quadrant = "A"
	B Quadrant = "B"
	C Quadrant = "C"
	D Quadrant = "D"
)

// Quadrants lists every quadrant in board order
var Quadrants = []Quadrant{A, B, C, D}

type quadrantSpaces struct {
	start, end int
}

var spaces = map[Quadrant]quadrantSpaces{
	A: {start: 1, end: 50},
	B: {start: 15, end: 8},
	C: {start: 29, end: 22},
	D: {start: 43, end: 36},
}

// ParseQuadrant converts a string such as "B" to a Quadrant
func ParseQuadrant(s string) (Quadrant, error) {
	q := Quadrant(s)
	if !q.Valid() {
		return "", fmt.Errorf("%w: got %q", ErrInvalidQuadrant, s)
	}
	return q, nil
}

func (q Quadrant) Valid() bool {
	_, ok := spaces[q]
	return ok
}

// StartSpace is the absolute track slot a token lands on at step-count 1
func (q Quadrant) StartSpace() int {
	return spaces[q].start
}

// EndSpace is the absolute track slot just before the quadrant's home row
func (q Quadrant) EndSpace() int {
	return spaces[q].end
}

func (q Quadrant) String() string {
	return string(q)
}

// Token names one of the two tokens a player owns
type Token string

const (
	TokenP Token = "p"
	TokenQ Token = "q"
)

// Tokens lists both tokens, p first. Ties between tokens favour p.
var Tokens = []Token{TokenP, TokenQ}

func ParseToken(s string) (Token, error) {
	switch Token(s) {
	case TokenP, TokenQ:
		return Token(s), nil
	}
	return "", fmt.Errorf("%w: got %q", ErrInvalidToken, s)
}

// Other returns the player's other token
func (t Token) Other() Token {
	if t == TokenP {
		return TokenQ
	}
	return TokenP
}
