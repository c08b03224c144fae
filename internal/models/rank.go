package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Rank is a teacher's position on the promotion ladder.
// The numeric order is the promotion order.
type Rank int

const (
	Instructor Rank = iota
	AssistantProfessor
	AssociateProfessor
	Professor
)

var rankNames = [...]string{
	Instructor:         "Instructor",
	AssistantProfessor: "AssistantProfessor",
	AssociateProfessor: "AssociateProfessor",
	Professor:          "Professor",
}

// Ranks lists every rank from lowest to highest.
func Ranks() []Rank {
	return []Rank{Instructor, AssistantProfessor, AssociateProfessor, Professor}
}

func (r Rank) Valid() bool { return r >= Instructor && r <= Professor }

func (r Rank) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankNames[r]
}

// Next returns the rank one step up. Professor stays Professor.
func (r Rank) Next() Rank {
	if r >= Professor {
		return Professor
	}
	return r + 1
}

// ParseRank accepts a rank name exactly as String prints it.
func ParseRank(s string) (Rank, error) {
	names := make([]string, 0, len(rankNames))
	for _, r := range Ranks() {
		if r.String() == s {
			return r, nil
		}
		names = append(names, r.String())
	}
	return 0, fmt.Errorf("unknown rank %q, want one of %s", s, strings.Join(names, ", "))
}

func (r Rank) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("invalid rank %d", int(r))
	}
	return []byte(r.String()), nil
}

func (r *Rank) UnmarshalText(b []byte) error {
	v, err := ParseRank(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// Value stores the rank by name.
func (r Rank) Value() (driver.Value, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("invalid rank %d", int(r))
	}
	return r.String(), nil
}

func (r *Rank) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return r.UnmarshalText([]byte(v))
	case []byte:
		return r.UnmarshalText(v)
	case nil:
		return fmt.Errorf("rank is NULL")
	default:
		return fmt.Errorf("cannot scan %T into Rank", src)
	}
}
