package sign

import "strings"

// DefaultHoldFrames is how many consecutive qualifying frames a sign must
// be held before it becomes the pending letter (~0.5s at 30fps).
const DefaultHoldFrames = 15

// Speller turns a stream of stabilized signs into deliberately spelled
// words. It debounces on a longer time constant than the recognizer's
// smoothing: the smoother rejects frame noise, the speller confirms intent
// by requiring a hold before a letter becomes eligible. The caller commits
// the pending letter explicitly (a key press, not the recognizer).
type Speller struct {
	threshold  float64
	holdFrames int

	pending           Sign
	hasPending        bool
	candidate         Sign
	framesSinceChange int
	word              []Sign
}

// NewSpeller creates a Speller. holdFrames below 1 falls back to
// DefaultHoldFrames.
func NewSpeller(threshold float64, holdFrames int) *Speller {
	if holdFrames < 1 {
		holdFrames = DefaultHoldFrames
	}
	return &Speller{
		threshold:  threshold,
		holdFrames: holdFrames,
	}
}

// Update advances the state machine by one frame. Results below the
// confidence threshold and the Unknown/Space signs do not participate at
// all: they neither advance nor reset the hold, so a momentary flicker
// cannot erase progress. A new qualifying sign must hold for more than
// holdFrames consecutive frames before it is promoted. Switching to a
// different sign restarts the hold from scratch, and seeing the
// already-pending sign resets the counter so noise cannot accumulate
// toward a promotion.
func (sp *Speller) Update(res Result) {
	if res.Confidence < sp.threshold {
		return
	}
	if res.Sign == Unknown || res.Sign == Space {
		return
	}

	if res.Sign != sp.pending {
		if res.Sign != sp.candidate {
			sp.candidate = res.Sign
			sp.framesSinceChange = 0
		}
		sp.framesSinceChange++
		if sp.framesSinceChange > sp.holdFrames {
			sp.pending = res.Sign
			sp.hasPending = true
			sp.candidate = ""
			sp.framesSinceChange = 0
		}
	} else {
		sp.candidate = ""
		sp.framesSinceChange = 0
	}
}

// Pending returns the letter currently eligible for committing, if any.
func (sp *Speller) Pending() (Sign, bool) {
	return sp.pending, sp.hasPending
}

// Commit appends the pending letter to the word and clears it.
// Returns false when there is nothing pending.
func (sp *Speller) Commit() bool {
	if !sp.hasPending {
		return false
	}
	sp.word = append(sp.word, sp.pending)
	sp.pending = ""
	sp.hasPending = false
	return true
}

// Append commits a letter directly, bypassing the hold. Motion letters use
// this: the trace match already proves intent, so no hold applies. Any
// pending letter is dropped to avoid double entry from the motion's anchor
// pose.
func (sp *Speller) Append(s Sign) {
	if s == Unknown || s == Space {
		return
	}
	sp.word = append(sp.word, s)
	sp.pending = ""
	sp.hasPending = false
	sp.candidate = ""
	sp.framesSinceChange = 0
}

// DeleteLast removes the most recently committed letter.
// Returns false when the word is empty.
func (sp *Speller) DeleteLast() bool {
	if len(sp.word) == 0 {
		return false
	}
	sp.word = sp.word[:len(sp.word)-1]
	return true
}

// Clear empties the word and drops any pending letter.
func (sp *Speller) Clear() {
	sp.word = sp.word[:0]
	sp.pending = ""
	sp.hasPending = false
	sp.candidate = ""
	sp.framesSinceChange = 0
}

// Word returns a copy of the committed letters in order.
func (sp *Speller) Word() []Sign {
	out := make([]Sign, len(sp.word))
	copy(out, sp.word)
	return out
}

// WordString returns the committed letters joined into a string.
func (sp *Speller) WordString() string {
	var b strings.Builder
	for _, s := range sp.word {
		b.WriteString(string(s))
	}
	return b.String()
}
