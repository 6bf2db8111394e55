package result

import "testing"

func TestOk_EmptyValueIsStillSuccess(t *testing.T) {
	o := Ok([]int{})
	if !o.IsOK() {
		t.Fatal("Ok(empty slice) must be success, not failure")
	}
	if len(o.Value()) != 0 {
		t.Fatalf("Value() = %v, want empty slice", o.Value())
	}
}

func TestFail_IsNotOK(t *testing.T) {
	o := Fail[[]int]()
	if o.IsOK() {
		t.Fatal("Fail() must not report IsOK()")
	}
}

func TestOk_FailDistinguishable(t *testing.T) {
	ok := Ok([]string{})
	fail := Fail[[]string]()

	if ok.IsOK() == fail.IsOK() {
		t.Fatal("Ok(empty) and Fail() must be distinguishable via IsOK()")
	}
}

func TestMap(t *testing.T) {
	o := Ok(3)
	mapped := Map(o, func(v int) int { return v * 2 })
	if !mapped.IsOK() || mapped.Value() != 6 {
		t.Fatalf("Map() = %+v, want Ok(6)", mapped)
	}

	f := Fail[int]()
	mappedFail := Map(f, func(v int) int { return v * 2 })
	if mappedFail.IsOK() {
		t.Fatal("Map() over Fail() must stay Fail()")
	}
}
