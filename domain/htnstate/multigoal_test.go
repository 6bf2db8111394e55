package htnstate

import "testing"

func TestMultigoal_NotAchieved(t *testing.T) {
	s := New("toy")
	s.Set("loc", "b", "room1")
	s.Set("loc", "c", "room1")

	mg := NewMultigoal("goal")
	mg.Set("loc", "b", "room2")
	mg.Set("loc", "c", "room3")

	unmet := mg.NotAchieved(s)
	if len(unmet["loc"]) != 2 {
		t.Fatalf("NotAchieved() = %v, want both b and c unmet", unmet)
	}
	if unmet["loc"]["b"] != "room2" || unmet["loc"]["c"] != "room3" {
		t.Fatalf("NotAchieved() = %v, want desired values", unmet)
	}
}

func TestMultigoal_NotAchieved_AlreadySatisfied(t *testing.T) {
	s := New("toy")
	s.Set("loc", "b", "room2")

	mg := NewMultigoal("goal")
	mg.Set("loc", "b", "room2")

	unmet := mg.NotAchieved(s)
	if len(unmet) != 0 {
		t.Fatalf("NotAchieved() = %v, want empty when already satisfied", unmet)
	}
}

func TestMultigoal_CloneIsIndependent(t *testing.T) {
	mg := NewMultigoal("goal")
	mg.Set("loc", "b", "room1")

	clone := mg.Clone()
	clone.Set("loc", "b", "room2")

	v, _ := mg.Get("loc", "b")
	if v != "room1" {
		t.Fatalf("original multigoal mutated by clone: loc[b] = %v, want room1", v)
	}
}

func TestMultigoal_Equal(t *testing.T) {
	a := NewMultigoal("a")
	a.Set("loc", "b", "room1")

	b := NewMultigoal("b")
	b.Set("loc", "b", "room1")

	if !a.Equal(b) {
		t.Fatal("multigoals with identical vars should be Equal")
	}
}
