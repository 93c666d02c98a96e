package zorder

import (
	"errors"
	"slices"
	"testing"

	"github.com/mj1618/winzorder/internal/winid"
)

func TestChainWalker_All(t *testing.T) {
	f := newDesktop(0x10, 0x20, 0x30)
	got, err := ChainWalker{Native: f}.All()
	if err != nil {
		t.Fatal(err)
	}
	want := []winid.Handle{0x10, 0x20, 0x30}
	if !slices.Equal(got, want) {
		t.Errorf("All() = %v, want %v", got, want)
	}
	if f.enumCalls != 0 {
		t.Error("chain walker must not enumerate")
	}
}

func TestChainWalker_BenignCodesEndWalk(t *testing.T) {
	for _, code := range []Code{0, 258, 259, 0x80070102} {
		f := newDesktop(0x10, 0x20, 0x30)
		f.nextFault = map[int]error{2: code}
		got, err := ChainWalker{Native: f}.All()
		if err != nil {
			t.Fatalf("code %v: %v", code, err)
		}
		want := []winid.Handle{0x10, 0x20}
		if !slices.Equal(got, want) {
			t.Errorf("code %v: All() = %v, want %v", code, got, want)
		}
	}
}

func TestChainWalker_HardCodeFails(t *testing.T) {
	f := newDesktop(0x10, 0x20)
	f.nextFault = map[int]error{1: Code(5)}
	_, err := ChainWalker{Native: f}.All()
	if err == nil {
		t.Fatal("expected hard failure")
	}
	if !errors.Is(err, Code(5)) {
		t.Errorf("error should carry the status: %v", err)
	}
}

func TestChainWalker_TopWindowFailure(t *testing.T) {
	f := newDesktop(0x10)
	f.topErr = Code(5)
	if _, err := (ChainWalker{Native: f}).All(); err == nil {
		t.Fatal("expected GetTopWindow failure")
	}

	f.topErr = Code(258)
	got, err := ChainWalker{Native: f}.All()
	if err != nil || len(got) != 0 {
		t.Errorf("benign top status: got %v, %v", got, err)
	}
}

func TestChainWalker_CycleFails(t *testing.T) {
	f := newDesktop(0x10, 0x20, 0x30)
	f.loopAt = 0x20
	_, err := ChainWalker{Native: f}.All()
	if err == nil {
		t.Fatal("a revisited handle should fail the walk")
	}
}

func TestChainWalker_Above(t *testing.T) {
	f := newDesktop(0x10, 0x20, 0x30, 0x40)
	got, err := ChainWalker{Native: f}.Above(0x30)
	if err != nil {
		t.Fatal(err)
	}
	want := []winid.Handle{0x10, 0x20}
	if !slices.Equal(got, want) {
		t.Errorf("Above() = %v, want %v (topmost first)", got, want)
	}
}

func TestChainWalker_AboveTopmost(t *testing.T) {
	f := newDesktop(0x10, 0x20)
	got, err := ChainWalker{Native: f}.Above(0x10)
	if err != nil || len(got) != 0 {
		t.Errorf("Above(topmost) = %v, %v", got, err)
	}
}

func TestChainWalker_AboveStaleTarget(t *testing.T) {
	f := newDesktop(0x10, 0x20)
	if _, err := (ChainWalker{Native: f}).Above(0x99); err == nil {
		t.Error("GW_HWNDPREV on a stale handle should fail hard")
	}
}

func TestEnumFallback_All(t *testing.T) {
	f := newDesktop(0x10, 0x20)
	f.enum = []winid.Handle{0x20, 0x10, 0x20}
	got, err := EnumFallback{Native: f}.All()
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, f.enum) {
		t.Errorf("All() = %v, want host order %v", got, f.enum)
	}
	if f.nextCalls != 0 || f.prevCalls != 0 {
		t.Error("fallback must not walk the chain")
	}
}

func TestEnumFallback_Error(t *testing.T) {
	f := newDesktop(0x10)
	f.enumErr = Code(8)
	_, err := EnumFallback{Native: f}.All()
	if err == nil || !errors.Is(err, Code(8)) {
		t.Errorf("expected wrapped enumeration error, got %v", err)
	}
}

func TestEnumFallback_Above(t *testing.T) {
	f := newDesktop(0x10, 0x20, 0x30)
	e := EnumFallback{Native: f}

	got, err := e.Above(0x30)
	if err != nil {
		t.Fatal(err)
	}
	if want := []winid.Handle{0x10, 0x20}; !slices.Equal(got, want) {
		t.Errorf("Above(0x30) = %v, want %v", got, want)
	}

	got, err = e.Above(0x99)
	if err != nil || len(got) != 0 {
		t.Errorf("unknown target: got %v, %v; want empty", got, err)
	}

	got, err = e.Above(winid.Null)
	if err != nil || len(got) != 0 {
		t.Errorf("null target: got %v, %v; want empty", got, err)
	}
}
