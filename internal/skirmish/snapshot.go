package skirmish

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// Snapshot strings: BoardSize rows split by '/', the first row is y=0.
// Digits compress empty cells; a letter is a unit whose kind comes from the
// catalog symbol table. Uppercase belongs to the home side, lowercase to the
// other side.

var ErrInvalidSnapshot = errors.New("invalid board snapshot")

// SymbolFunc maps a unit kind to its lowercase snapshot letter.
type SymbolFunc func(kind string) (rune, bool)

// KindFunc maps a lowercase snapshot letter to a unit kind.
type KindFunc func(sym rune) (string, bool)

// EncodeBoard writes b as a snapshot string. A unit whose kind symbolOf
// does not know is written as an empty cell, so it does not survive a
// decode; callers that care must check symbolOf themselves.
func EncodeBoard(b *Board, symbolOf SymbolFunc) string {
	var sb strings.Builder
	for y := 0; y < BoardSize; y++ {
		if y > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for x := 0; x < BoardSize; x++ {
			u := b.UnitAt(Coord{X: x, Y: y})
			sym, ok := rune(0), false
			if u != nil {
				sym, ok = symbolOf(u.Kind)
			}
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			if u.Owner.IsPrimary() {
				sym = unicode.ToUpper(sym)
			}
			sb.WriteRune(sym)
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	return sb.String()
}

func DecodeBoard(s string, kindOf KindFunc) (*Board, error) {
	rows := strings.Split(strings.TrimSpace(s), "/")
	if len(rows) != BoardSize {
		return nil, errors.Wrapf(ErrInvalidSnapshot, "want %d rows, got %d", BoardSize, len(rows))
	}
	b := NewBoard()
	for y, row := range rows {
		x := 0
		for _, ch := range row {
			if x >= BoardSize {
				return nil, errors.Wrapf(ErrInvalidSnapshot, "row %d overflows", y)
			}
			if ch >= '1' && ch <= '8' {
				x += int(ch - '0')
				continue
			}
			kind, ok := kindOf(unicode.ToLower(ch))
			if !ok {
				return nil, errors.Wrapf(ErrInvalidSnapshot, "unknown unit symbol %q", ch)
			}
			owner := OwnerSecondary
			if unicode.IsUpper(ch) {
				owner = OwnerPrimary
			}
			sq := indexOf(Coord{X: x, Y: y})
			b.Squares[sq] = &Unit{ID: fmt.Sprintf("%s-%d", kind, sq), Kind: kind, Owner: owner}
			x++
		}
		if x != BoardSize {
			return nil, errors.Wrapf(ErrInvalidSnapshot, "row %d has %d cells", y, x)
		}
	}
	return b, nil
}
