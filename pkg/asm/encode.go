package asm

// charTable maps a 5-bit opcode field to its EDSAC teleprinter letter. The
// index of a letter in this table is also the bit pattern the machine uses
// for that letter, which lets the self-modifying sequences generated for
// indexed array access (see indexaccess.go) build opcode fields by table
// lookup instead of a second encoding scheme.
const charTable = "PQWERTYUIOJ#SZK*.F@D!HNM&LXGABCV"

// IOVersion selects which Initial Orders convention governs address bias,
// word terminators and the predefined symbol set.
type IOVersion int

const (
	IO1 IOVersion = 1
	IO2 IOVersion = 2
)

func (v IOVersion) baseAddress() int {
	if v == IO1 {
		return 31
	}
	return 44
}

func shortTerm(io IOVersion) byte {
	if io == IO1 {
		return 'S'
	}
	return 'F'
}

func longTerm(io IOVersion) byte {
	if io == IO1 {
		return 'L'
	}
	return 'D'
}

// word is the fully-resolved, pre-render form of one teleprinter word: a
// 5-bit table index, a 12-bit body and a terminator-selector bit. Keeping
// these as raw integers rather than a rendered string lets emission defer
// the Initial-Orders-dependent terminator choice to the point the IO version
// is finally known.
type word struct {
	top  int
	body int
	long bool
}

func splitShort(value int) word {
	bitS := value & 1
	value >>= 1
	return word{
		top:  (value >> 12) & 0x1F,
		body: value & 0xFFF,
		long: bitS != 0,
	}
}

// splitLong splits a two-word (34-bit) value into its high and low halves
// using the same bit layout the reference encoder uses: the terminator bit
// of each half is taken from the bit immediately below the half's own
// 17-bit field.
func splitLong(value int64) (hi, lo word) {
	bitS := value & 1
	first := value >> 17
	bitL := first & 1
	value >>= 1
	first >>= 1
	lo = word{
		top:  int(value>>12) & 0x1F,
		body: int(value) & 0xFFF,
		long: bitS != 0,
	}
	hi = word{
		top:  int(first>>12) & 0x1F,
		body: int(first) & 0xFFF,
		long: bitL != 0,
	}
	return hi, lo
}

// isLong reports whether value needs two words under the given explicit
// suffix hint ('l' forces long, 's' forces short, anything else is decided
// by magnitude).
func isLong(value int64, hint byte) bool {
	switch hint {
	case 'l', 'L':
		return true
	case 's', 'S':
		return false
	}
	av := value
	if av < 0 {
		av = -av
	}
	return av>>17 != 0
}

func (w word) render(io IOVersion) string {
	term := shortTerm(io)
	if w.long {
		term = longTerm(io)
	}
	return renderWord(w.top, w.body, term)
}

func renderWord(top, body int, term byte) string {
	if top < 0 || top >= len(charTable) {
		top = 0
	}
	buf := make([]byte, 0, 8)
	buf = append(buf, charTable[top])
	buf = appendInt(buf, body)
	buf = append(buf, term)
	return string(buf)
}

func appendInt(buf []byte, n int) []byte {
	if n == 0 {
		return append(buf, '0')
	}
	neg := n < 0
	if neg {
		n = -n
	}
	start := len(buf)
	for n > 0 {
		buf = append(buf, byte('0'+n%10))
		n /= 10
	}
	if neg {
		buf = append(buf, '-')
	}
	// reverse the digits just appended
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}

func opcodeIndex(letter byte) int {
	for i := 0; i < len(charTable); i++ {
		if charTable[i] == letter {
			return i
		}
	}
	return 0
}
