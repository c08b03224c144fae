package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestRankNext(t *testing.T) {
	cases := []struct {
		in, want Rank
	}{
		{Instructor, AssistantProfessor},
		{AssistantProfessor, AssociateProfessor},
		{AssociateProfessor, Professor},
		{Professor, Professor},
	}
	for _, c := range cases {
		if got := c.in.Next(); got != c.want {
			t.Fatalf("%s.Next() = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestRankNext_CeilingIsStable(t *testing.T) {
	r := Professor
	for i := 0; i < 5; i++ {
		r = r.Next()
	}
	if r != Professor {
		t.Fatalf("got %s after repeated promotion", r)
	}
}

func TestRankOrderIsTotal(t *testing.T) {
	rs := Ranks()
	for i := 1; i < len(rs); i++ {
		if !(rs[i-1] < rs[i]) {
			t.Fatalf("%s must be below %s", rs[i-1], rs[i])
		}
	}
}

func TestParseRank(t *testing.T) {
	for _, r := range Ranks() {
		got, err := ParseRank(r.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != r {
			t.Fatalf("ParseRank(%q) = %s", r.String(), got)
		}
	}
	_, err := ParseRank("Dean")
	if err == nil || !strings.Contains(err.Error(), "Instructor, AssistantProfessor, AssociateProfessor, Professor") {
		t.Fatalf("error must list the valid ranks, got %v", err)
	}
}

func TestRankScanAndValue(t *testing.T) {
	v, err := AssociateProfessor.Value()
	if err != nil {
		t.Fatal(err)
	}
	if v != "AssociateProfessor" {
		t.Fatalf("Value() = %v", v)
	}

	var r Rank
	if err := r.Scan([]byte("Professor")); err != nil {
		t.Fatal(err)
	}
	if r != Professor {
		t.Fatalf("Scan -> %s", r)
	}
	if err := r.Scan(nil); err == nil {
		t.Fatal("expected error scanning NULL")
	}
	if _, err := Rank(42).Value(); err == nil {
		t.Fatal("expected error for out of range rank")
	}
}

func TestRankJSON(t *testing.T) {
	b, err := json.Marshal(Teacher{Name: "Ionescu", Rank: AssistantProfessor})
	if err != nil {
		t.Fatal(err)
	}
	var back struct {
		Rank string `json:"rank"`
	}
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if back.Rank != "AssistantProfessor" {
		t.Fatalf("rank encoded as %q", back.Rank)
	}
}
