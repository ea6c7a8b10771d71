package layout

import "github.com/ardnew/softkbd/hid"

const (
	shift      = hid.ModLeftShift
	altGr      = hid.ModAltGr
	shiftAltGr = hid.ModLeftShift | hid.ModAltGr
)

// special holds the characters Swiss QWERTZ places behind AltGr, including
// the two-step acute sequences. The key positions are physical: 0x34, 0x33
// and 0x2F are where the Swiss keyboard prints ä, ö and ü.
var special = map[rune]Sequence{
	'ä': {{altGr, hid.KeyQuote}},
	'ö': {{altGr, hid.KeySemicolon}},
	'ü': {{altGr, hid.KeyLeftBrace}},
	'Ä': {{shiftAltGr, hid.KeyQuote}},
	'Ö': {{shiftAltGr, hid.KeySemicolon}},
	'Ü': {{shiftAltGr, hid.KeyLeftBrace}},
	'€': {{altGr, hid.KeyE}},
	'@': {{altGr, hid.Key2}},
	'§': {{altGr, hid.Key3}},
	'|': {{altGr, hid.Key7}},
	'é': {{altGr, hid.KeyE}, {hid.ModNone, hid.Key2}},
	'è': {{altGr, hid.KeyGrave}},
	'à': {{altGr, hid.KeyA}},
	'É': {{shiftAltGr, hid.KeyE}, {shift, hid.Key2}},
	'È': {{shiftAltGr, hid.KeyGrave}},
	'À': {{shiftAltGr, hid.KeyA}},
	'Ç': {{shiftAltGr, hid.KeyC}},
}

// specialOrder lists the special characters in table order, for callers
// that need a deterministic iteration.
const specialOrder = "äöüÄÖÜ€@§|éèàÉÈÀÇ"

// punctuation is the literal Swiss punctuation table. Entries reproduce the
// physical key that prints the character, so several characters share a
// key and differ only by Shift.
var punctuation = map[rune]hid.Usage{
	' ':  hid.KeySpace,
	'\n': hid.KeyEnter,
	'\t': hid.KeyTab,
	'!':  hid.Key1,
	'"':  hid.Key2,
	'*':  hid.Key3,
	'ç':  hid.Key4,
	'%':  hid.Key5,
	'&':  hid.Key6,
	'/':  hid.Key7,
	'(':  hid.Key8,
	')':  hid.Key9,
	'=':  hid.Key0,
	'?':  hid.KeyMinus,
	'_':  hid.KeyEqual,
	'-':  hid.KeyMinus,
	'+':  hid.KeyEqual,
	',':  hid.KeyComma,
	'.':  hid.KeyDot,
	':':  hid.KeyComma,
	';':  hid.KeySemicolon,
	'<':  hid.KeyComma,
	'>':  hid.KeyDot,
}

// punctuationOrder lists the punctuation keys in table order. Where two
// characters share a key and modifier the earlier one wins when decoding.
const punctuationOrder = " \n\t!\"*ç%&/()=?_-+,.:;<>"

// shifted is the set of punctuation characters typed with Shift held.
var shifted = map[rune]bool{
	'!': true, '"': true, '*': true, 'ç': true, '%': true,
	'&': true, '/': true, '(': true, ')': true, '=': true,
	'?': true, '_': true, ':': true, '<': true, '>': true,
}
