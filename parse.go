package wordnum

import "math"

// Parse consumes a tagged token sequence and builds the structured
// expression, without computing the final value. The grammar:
//
//   - units, teens and tens accumulate additively into the open group;
//   - "hundred" scales the open accumulation by 100 (1 if none stated);
//   - magnitude words at or above "thousand" close the open group and
//     must appear in strictly descending magnitude order;
//   - "point" ends the cardinal portion; only digit words may follow;
//   - an ordinal word contributes its cardinal-equivalent value and
//     must be the final token;
//   - two adjacent unit/teen words ("three four") are rejected.
//
// Parse is pure: it never mutates its input and shares no state
// between calls.
func Parse(tokens []Token) (*Expression, error) {
	p := &parser{prevMag: math.MaxInt64}
	for i := range tokens {
		if err := p.step(&tokens[i]); err != nil {
			return nil, err
		}
	}
	p.finish()
	return &p.expr, nil
}

// parser holds the in-flight state for a single Parse call.
type parser struct {
	expr Expression

	// coeff is the sub-value accumulated since the last closed group.
	coeff int64
	// open records whether any cardinal word contributed to coeff,
	// so "thousand" (no coefficient stated) defaults to 1 while
	// "zero thousand" keeps its explicit 0.
	open bool
	// prevMag is the magnitude of the last closed group; groups must
	// close in strictly descending order.
	prevMag int64
	// small is set while the previous additive word was a unit or
	// teen, to reject juxtapositions like "three four".
	small bool
	// done is set once an ordinal marker closed the number.
	done bool
	// inTail is set after "point"; only digit words may follow.
	inTail bool
}

func (p *parser) step(tok *Token) error {
	if p.done {
		return &ParseError{Word: tok.Raw, Message: "ordinal marker must end the number"}
	}
	if p.inTail {
		return p.stepTail(tok)
	}

	switch tok.Kind {
	case KindAnd:
		// no-op conjunction, wherever it appears

	case KindUnit, KindTeen:
		if p.small {
			return &ParseError{Word: tok.Raw, Message: "invalid juxtaposition of digit words"}
		}
		p.coeff += tok.Value
		p.open = true
		p.small = true

	case KindTen:
		p.coeff += tok.Value
		p.open = true
		p.small = false

	case KindHundred:
		p.scaleHundred()

	case KindMagnitude:
		if err := p.closeGroup(tok); err != nil {
			return err
		}

	case KindOrdinalUnit:
		if p.small && tok.Value < 20 {
			return &ParseError{Word: tok.Raw, Message: "invalid juxtaposition of digit words"}
		}
		p.coeff += tok.Value
		p.open = true
		p.done = true
		p.expr.ordinal = true

	case KindOrdinalMagnitude:
		if tok.Value == 100 {
			p.scaleHundred()
		} else if err := p.closeGroup(tok); err != nil {
			return err
		}
		p.done = true
		p.expr.ordinal = true

	case KindPoint:
		p.closeCardinal()
		p.inTail = true
		p.expr.decimal = true
	}
	return nil
}

// stepTail handles tokens after "point": single digit words only.
func (p *parser) stepTail(tok *Token) error {
	switch {
	case tok.Kind == KindPoint:
		return &ParseError{Word: tok.Raw, Message: "duplicate decimal point"}
	case tok.Kind == KindUnit:
		p.expr.tail = append(p.expr.tail, int(tok.Value))
		return nil
	default:
		return &ParseError{Word: tok.Raw, Message: "only digit words may follow \"point\""}
	}
}

// scaleHundred applies "hundred" to the open accumulation.
func (p *parser) scaleHundred() {
	if !p.open {
		p.coeff = 1
	}
	p.coeff *= 100
	p.open = true
	p.small = false
}

// closeGroup closes the open group with a magnitude word ("thousand"
// and above), enforcing the strictly-descending order invariant.
func (p *parser) closeGroup(tok *Token) error {
	if tok.Value >= p.prevMag {
		return &ParseError{Word: tok.Raw, Message: "magnitude words must appear in descending order"}
	}
	coeff := p.coeff
	if !p.open {
		coeff = 1
	}
	p.expr.groups = append(p.expr.groups, Group{Coeff: coeff, Magnitude: tok.Value})
	p.prevMag = tok.Value
	p.coeff = 0
	p.open = false
	p.small = false
	return nil
}

// closeCardinal flushes any dangling accumulation as a magnitude-1 group.
func (p *parser) closeCardinal() {
	if !p.open {
		return
	}
	p.expr.groups = append(p.expr.groups, Group{Coeff: p.coeff, Magnitude: 1})
	p.coeff = 0
	p.open = false
}

// finish resolves end-of-input: bare units/tens/hundreds close with
// the implied magnitude 1.
func (p *parser) finish() {
	if !p.inTail {
		p.closeCardinal()
	}
}
