package pack

import (
	"github.com/arloliu/packbuf/cursor"
	"github.com/arloliu/packbuf/errs"
)

// Pair holds two heterogeneous slots packed back to back.
type Pair[F, S any] struct {
	First  F
	Second S
}

// PairOf returns the strategy for a two-slot value: the first slot is
// written, then the second, with no count prefix since the arity is fixed.
//
// When both slot strategies have value-independent sizes the pair does too,
// which lets enclosing containers size pairs in constant time.
func PairOf[F, S any](first Strategy[F], second Strategy[S]) Strategy[Pair[F, S]] {
	p := pairStrategy[F, S]{first: first, second: second}

	ff, firstFixed := first.(FixedSizer)
	sf, secondFixed := second.(FixedSizer)
	if firstFixed && secondFixed {
		return fixedPairStrategy[F, S]{pairStrategy: p, width: ff.FixedSize() + sf.FixedSize()}
	}

	return p
}

type pairStrategy[F, S any] struct {
	first  Strategy[F]
	second Strategy[S]
}

func (p pairStrategy[F, S]) Size(v Pair[F, S]) int {
	return p.first.Size(v.First) + p.second.Size(v.Second)
}

func (p pairStrategy[F, S]) Pack(c *cursor.Cursor, v Pair[F, S]) error {
	if p.Size(v) > c.Remaining() {
		return errs.ErrCapacityExceeded
	}

	mark := c.Offset()

	if err := p.first.Pack(c, v.First); err != nil {
		return err
	}
	if err := p.second.Pack(c, v.Second); err != nil {
		_ = c.Rewind(mark)
		return err
	}

	return nil
}

type fixedPairStrategy[F, S any] struct {
	pairStrategy[F, S]
	width int
}

func (p fixedPairStrategy[F, S]) FixedSize() int {
	return p.width
}
