package fgui

import (
	"unicode"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TypingEffect reveals a text one glyph at a time. Whitespace is revealed
// together with the next glyph and never counts as a step. Each step
// dispatches onChanged on the owner with the progress (0..1] as data;
// completion dispatches onEnd.
//
// Call Start, then either Print manually or PrintAll and Update each frame.
type TypingEffect struct {
	owner *Node
	text  []rune
	total int // non-whitespace runes

	printIndex int // runes revealed
	printed    int // glyphs revealed
	started    bool

	clock   *gween.Tween
	emitted int

	// OnProgress is called after each step with the progress.
	OnProgress func(float64)
	// OnComplete is called once the whole text is revealed.
	OnComplete func()
}

// NewTypingEffect creates an effect for text. Events are dispatched on owner,
// which may be nil.
func NewTypingEffect(owner *Node, text string) *TypingEffect {
	t := &TypingEffect{owner: owner, text: []rune(text)}
	for _, r := range t.text {
		if !unicode.IsSpace(r) {
			t.total++
		}
	}
	return t
}

// TotalTimes returns the number of steps: the non-whitespace rune count.
func (t *TypingEffect) TotalTimes() int {
	return t.total
}

// IsTyping reports whether the effect is running.
func (t *TypingEffect) IsTyping() bool {
	return t.started
}

// Printed returns the currently revealed text.
func (t *TypingEffect) Printed() string {
	return string(t.text[:t.printIndex])
}

// Start hides the text and arms the effect. Calling it again restarts.
func (t *TypingEffect) Start() {
	t.clock = nil
	t.printIndex = 0
	t.printed = 0
	t.started = len(t.text) > 0
	if !t.started {
		t.printIndex = len(t.text)
	}
}

// Print reveals the next glyph. When nothing is left it completes the effect
// and returns false.
func (t *TypingEffect) Print() bool {
	if !t.started {
		return false
	}
	for t.printIndex < len(t.text) {
		r := t.text[t.printIndex]
		t.printIndex++
		if unicode.IsSpace(r) {
			continue
		}
		t.printed++
		progress := float64(t.printed) / float64(t.total)
		if t.OnProgress != nil {
			t.OnProgress(progress)
		}
		if t.owner != nil {
			t.owner.DispatchEvent(EventChanged, progress)
		}
		return true
	}

	t.started = false
	t.clock = nil
	if t.OnComplete != nil {
		t.OnComplete()
	}
	if t.owner != nil {
		t.owner.DispatchEvent(EventEnd, nil)
	}
	return false
}

// PrintAll reveals the remaining text at one glyph per interval seconds,
// driven by Update. The first glyph is revealed immediately; completion
// fires one interval after the last glyph.
func (t *TypingEffect) PrintAll(interval float64) {
	if !t.started {
		t.Start()
	}
	remaining := t.total - t.printed
	if interval <= 0 || remaining <= 0 {
		for t.Print() {
		}
		return
	}
	t.clock = gween.New(0, float32(remaining), float32(interval*float64(remaining)), ease.Linear)
	t.emitted = 1
	t.Print()
}

// Update advances a PrintAll run by dt seconds.
func (t *TypingEffect) Update(dt float64) {
	if t.clock == nil {
		return
	}
	val, done := t.clock.Update(float32(dt))
	if done {
		for t.Print() {
		}
		return
	}
	target := 1 + int(val+1e-4)
	for t.emitted < target && t.started {
		t.emitted++
		t.Print()
	}
}

// Cancel stops the effect and reveals the whole text. No events fire.
func (t *TypingEffect) Cancel() {
	if !t.started {
		return
	}
	t.started = false
	t.clock = nil
	t.printIndex = len(t.text)
}
