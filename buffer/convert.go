package buffer

import "unicode/utf8"

// OffsetClampMode selects how out-of-range offsets and positions are treated
// by the conversion API. A newline always counts as one byte and one rune.
type OffsetClampMode uint8

const (
	OffsetError OffsetClampMode = iota
	OffsetClamp
)

type offsetUnit func(cluster string) int

func byteUnit(cluster string) int { return len(cluster) }

func runeUnit(cluster string) int { return utf8.RuneCountInString(cluster) }

// PosFromByteOffset maps an absolute byte offset to a position. Offsets that
// fall inside a grapheme cluster are rejected.
func (b *Buffer) PosFromByteOffset(off int, mode OffsetClampMode) (Pos, bool) {
	return b.posFromOffset(off, mode, byteUnit)
}

// PosFromRuneOffset maps an absolute rune offset to a position. Offsets that
// fall inside a grapheme cluster are rejected.
func (b *Buffer) PosFromRuneOffset(off int, mode OffsetClampMode) (Pos, bool) {
	return b.posFromOffset(off, mode, runeUnit)
}

func (b *Buffer) ByteOffsetFromPos(pos Pos, mode OffsetClampMode) (int, bool) {
	return b.offsetFromPos(pos, mode, byteUnit)
}

func (b *Buffer) RuneOffsetFromPos(pos Pos, mode OffsetClampMode) (int, bool) {
	return b.offsetFromPos(pos, mode, runeUnit)
}

func (b *Buffer) posFromOffset(off int, mode OffsetClampMode, unit offsetUnit) (Pos, bool) {
	total := b.docLen(unit)
	switch mode {
	case OffsetError:
		if off < 0 || off > total {
			return Pos{}, false
		}
	case OffsetClamp:
		off = clampInt(off, 0, total)
	default:
		return Pos{}, false
	}

	cur := 0
	for row, line := range b.lines {
		if off == cur {
			return Pos{Row: row}, true
		}
		for col, cluster := range line {
			next := cur + unit(cluster)
			if off < next {
				return Pos{}, false
			}
			cur = next
			if off == cur {
				return Pos{Row: row, GraphemeCol: col + 1}, true
			}
		}
		cur++ // newline
	}
	return Pos{}, false
}

func (b *Buffer) offsetFromPos(pos Pos, mode OffsetClampMode, unit offsetUnit) (int, bool) {
	clamped := b.clampPos(pos)
	switch mode {
	case OffsetError:
		if clamped != pos {
			return 0, false
		}
	case OffsetClamp:
		pos = clamped
	default:
		return 0, false
	}

	off := 0
	for row := 0; row < pos.Row; row++ {
		for _, cluster := range b.lines[row] {
			off += unit(cluster)
		}
		off++
	}
	for _, cluster := range b.lines[pos.Row][:pos.GraphemeCol] {
		off += unit(cluster)
	}
	return off, true
}

func (b *Buffer) docLen(unit offsetUnit) int {
	total := len(b.lines) - 1
	for _, line := range b.lines {
		for _, cluster := range line {
			total += unit(cluster)
		}
	}
	return total
}
