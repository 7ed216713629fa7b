// SPDX-License-Identifier: MIT
package dictcalc

import (
	"context"

	"golang.org/x/exp/constraints"

	"gitlab.com/fisherprime/dictcalc/scanner"
)

// ParseEmbedded evaluates a calc entry embedded in a host document buffer.
//
// start is the rune offset of the entry's opening `{`. resume is the
// corrected cursor offset, immediately after the matched `}`, from which the
// host document parser must continue scanning; it is trustworthy only when
// err is nil. A bare (unbraced) expression expects to run to the end of the
// buffer & is not meaningful mid-document.
func ParseEmbedded[T constraints.Float](ctx context.Context, buffer string, start int, opts ...Option[T]) (val T, resume int, err error) {
	src := scanner.New(scanner.WithInput(buffer), scanner.WithStart(start))

	val, err = New(src, opts...).Parse(ctx)
	resume = src.Pos()

	return
}
