package style

// Style is a sum-of-slots attribute value: an optional foreground colour,
// an optional background colour, and a set of boolean effects, each of
// which is either explicitly set, explicitly cleared, or left untouched.
//
// The zero Style has no colours and no effects — it is the identity
// element for Over: Style{}.Over(s) == s and s.Over(Style{}) == s.
type Style struct {
	fg      Color
	hasFg   bool
	bg      Color
	hasBg   bool
	effects Effect // bits explicitly turned on
	cleared Effect // bits explicitly turned off ("not <effect>")
}

// WithForeground returns a Style with the foreground colour set to c,
// otherwise identical to s.
func (s Style) WithForeground(c Color) Style {
	s.fg = c
	s.hasFg = true

	return s
}

// WithBackground returns a Style with the background colour set to c,
// otherwise identical to s.
func (s Style) WithBackground(c Color) Style {
	s.bg = c
	s.hasBg = true

	return s
}

// WithEffect returns a Style with e turned on, otherwise identical to s.
func (s Style) WithEffect(e Effect) Style {
	s.effects |= e
	s.cleared &^= e

	return s
}

// WithoutEffect returns a Style with e explicitly turned off ("not e"),
// otherwise identical to s.
func (s Style) WithoutEffect(e Effect) Style {
	s.cleared |= e
	s.effects &^= e

	return s
}

// Foreground returns the foreground colour and whether one is set.
func (s Style) Foreground() (Color, bool) {
	return s.fg, s.hasFg
}

// Background returns the background colour and whether one is set.
func (s Style) Background() (Color, bool) {
	return s.bg, s.hasBg
}

// Effects returns the set of effects explicitly turned on.
func (s Style) Effects() Effect {
	return s.effects
}

// HasEffect reports whether e is turned on in s.
func (s Style) HasEffect(e Effect) bool {
	return s.effects.Has(e)
}

// Over composes s and next, where next is applied on top of s: every slot
// next sets (foreground, background, or an effect, including "not
// <effect>" clears) wins over s's value in that slot; every slot next
// leaves untouched keeps s's value.
//
// Over is associative: a.Over(b).Over(c) == a.Over(b.Over(c)), so a chain
// of style tokens or a chain of "+"-composed Style values can be folded
// in any grouping without changing the result.
func (s Style) Over(next Style) Style {
	result := s

	if next.hasFg {
		result.fg = next.fg
		result.hasFg = true
	}
	if next.hasBg {
		result.bg = next.bg
		result.hasBg = true
	}

	result.effects = (result.effects &^ next.cleared) | next.effects
	result.cleared = (result.cleared &^ next.effects) | next.cleared

	return result
}

// Plus is an alias for Over matching the grammar's "a + b" composition
// notation from the external style string contract.
func (s Style) Plus(next Style) Style {
	return s.Over(next)
}
