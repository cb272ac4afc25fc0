package sign

import "testing"

func TestSpeller_PromotesAfterHold(t *testing.T) {
	sp := NewSpeller(0.75, 15)
	res := Result{Sign: A, Confidence: 0.92}

	// 15 frames is exactly the hold count; the counter must exceed it.
	for i := 0; i < 15; i++ {
		sp.Update(res)
	}
	if _, ok := sp.Pending(); ok {
		t.Fatal("letter promoted after 15 frames; hold requires more")
	}

	sp.Update(res)
	pending, ok := sp.Pending()
	if !ok {
		t.Fatal("letter not promoted after 16 qualifying frames")
	}
	if pending != A {
		t.Errorf("pending = %v, want %v", pending, A)
	}
}

func TestSpeller_PromotesExactlyOnce(t *testing.T) {
	sp := NewSpeller(0.75, 15)
	res := Result{Sign: A, Confidence: 0.92}

	for i := 0; i < 40; i++ {
		sp.Update(res)
	}

	// Holding past promotion must not re-promote or build up drift: once A
	// is pending, seeing A resets the counter every frame.
	if sp.framesSinceChange != 0 {
		t.Errorf("counter = %d after steady pending sign, want 0", sp.framesSinceChange)
	}
	pending, ok := sp.Pending()
	if !ok || pending != A {
		t.Fatalf("pending = %v/%v, want %v", pending, ok, A)
	}
}

func TestSpeller_FourteenFramesNeverPromotes(t *testing.T) {
	sp := NewSpeller(0.75, 15)

	for i := 0; i < 14; i++ {
		sp.Update(Result{Sign: B, Confidence: 0.93})
	}
	if _, ok := sp.Pending(); ok {
		t.Error("letter promoted after only 14 frames")
	}
}

func TestSpeller_SwitchRestartsHold(t *testing.T) {
	sp := NewSpeller(0.75, 15)

	for i := 0; i < 10; i++ {
		sp.Update(Result{Sign: A, Confidence: 0.92})
	}
	// Switching signs mid-hold starts over; B may not inherit A's frames.
	for i := 0; i < 10; i++ {
		sp.Update(Result{Sign: B, Confidence: 0.93})
	}
	if _, ok := sp.Pending(); ok {
		t.Fatal("letter promoted from two partial holds")
	}

	for i := 0; i < 6; i++ {
		sp.Update(Result{Sign: B, Confidence: 0.93})
	}
	pending, ok := sp.Pending()
	if !ok || pending != B {
		t.Errorf("pending = %v/%v, want %v after a full B hold", pending, ok, B)
	}
}

func TestSpeller_IgnoresLowConfidence(t *testing.T) {
	sp := NewSpeller(0.75, 15)

	for i := 0; i < 30; i++ {
		sp.Update(Result{Sign: A, Confidence: 0.5})
	}
	if _, ok := sp.Pending(); ok {
		t.Error("low-confidence frames should never promote")
	}
}

func TestSpeller_UnknownAndSpaceNeverPending(t *testing.T) {
	sp := NewSpeller(0.75, 15)

	for i := 0; i < 30; i++ {
		sp.Update(Result{Sign: Unknown, Confidence: 0.9})
		sp.Update(Result{Sign: Space, Confidence: 0.9})
	}
	if _, ok := sp.Pending(); ok {
		t.Error("Unknown/Space should never become the pending letter")
	}
}

func TestSpeller_CommitAppendsAndClearsPending(t *testing.T) {
	sp := NewSpeller(0.75, 15)
	holdLetter(sp, A)

	if !sp.Commit() {
		t.Fatal("Commit() = false with a pending letter")
	}
	if got := sp.WordString(); got != "A" {
		t.Errorf("word = %q, want \"A\"", got)
	}
	if _, ok := sp.Pending(); ok {
		t.Error("pending letter should be cleared after commit")
	}
	if sp.Commit() {
		t.Error("Commit() = true with nothing pending")
	}
}

func TestSpeller_SpellWord(t *testing.T) {
	sp := NewSpeller(0.75, 15)

	for _, letter := range []Sign{H, I} {
		holdLetter(sp, letter)
		if !sp.Commit() {
			t.Fatalf("failed to commit %v", letter)
		}
	}

	if got := sp.WordString(); got != "HI" {
		t.Errorf("word = %q, want \"HI\"", got)
	}

	word := sp.Word()
	if len(word) != 2 || word[0] != H || word[1] != I {
		t.Errorf("Word() = %v, want [H I]", word)
	}

	// Word() must return a copy, not the internal slice.
	word[0] = X
	if sp.WordString() != "HI" {
		t.Error("mutating Word() result changed internal state")
	}
}

func TestSpeller_DeleteLast(t *testing.T) {
	sp := NewSpeller(0.75, 15)
	holdLetter(sp, C)
	sp.Commit()
	holdLetter(sp, D)
	sp.Commit()

	if !sp.DeleteLast() {
		t.Fatal("DeleteLast() = false with letters committed")
	}
	if got := sp.WordString(); got != "C" {
		t.Errorf("word after delete = %q, want \"C\"", got)
	}

	sp.DeleteLast()
	if sp.DeleteLast() {
		t.Error("DeleteLast() = true on an empty word")
	}
}

func TestSpeller_Clear(t *testing.T) {
	sp := NewSpeller(0.75, 15)
	holdLetter(sp, E)
	sp.Commit()
	holdLetter(sp, F)

	sp.Clear()

	if sp.WordString() != "" {
		t.Errorf("word after clear = %q, want empty", sp.WordString())
	}
	if _, ok := sp.Pending(); ok {
		t.Error("pending letter should be dropped by Clear")
	}
}

func TestSpeller_UnknownFlickerDoesNotResetHold(t *testing.T) {
	sp := NewSpeller(0.75, 15)

	// Ten frames of A, then a confident Unknown flicker, then six more A.
	// Unknown does not participate, so the hold completes at 16 A-frames.
	for i := 0; i < 10; i++ {
		sp.Update(Result{Sign: A, Confidence: 0.92})
	}
	sp.Update(Result{Sign: Unknown, Confidence: 0.90})
	sp.Update(Result{Sign: Space, Confidence: 0.90})
	for i := 0; i < 6; i++ {
		sp.Update(Result{Sign: A, Confidence: 0.92})
	}

	pending, ok := sp.Pending()
	if !ok {
		t.Fatal("expected the hold to survive an Unknown/Space flicker")
	}
	if pending != A {
		t.Errorf("pending = %s, want %s", pending, A)
	}
}

func TestSpeller_AppendBypassesHold(t *testing.T) {
	sp := NewSpeller(0.75, 15)

	sp.Append(Z)

	if got := sp.WordString(); got != "Z" {
		t.Errorf("word after Append = %q, want %q", got, "Z")
	}
	if _, ok := sp.Pending(); ok {
		t.Error("Append should not leave a pending letter")
	}
}

func TestSpeller_AppendDropsPendingAnchor(t *testing.T) {
	sp := NewSpeller(0.75, 15)
	holdLetter(sp, I)

	sp.Append(J)

	if got := sp.WordString(); got != "J" {
		t.Errorf("word after Append = %q, want %q", got, "J")
	}
	if _, ok := sp.Pending(); ok {
		t.Error("the anchor pose should not stay pending after its motion letter lands")
	}
}

func TestSpeller_AppendIgnoresUnknownAndSpace(t *testing.T) {
	sp := NewSpeller(0.75, 15)

	sp.Append(Unknown)
	sp.Append(Space)

	if got := sp.WordString(); got != "" {
		t.Errorf("word = %q, want empty", got)
	}
}

// holdLetter feeds enough qualifying frames for the letter to become
// pending.
func holdLetter(sp *Speller, letter Sign) {
	for i := 0; i <= sp.holdFrames+1; i++ {
		sp.Update(Result{Sign: letter, Confidence: 0.95})
	}
}
