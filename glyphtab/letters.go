package glyphtab

type letter struct {
	common   rune
	isolated rune
	final    rune
	initial  rune
	medial   rune
	connects bool
}

// Letters of the Arabic block. Presentation forms are from Arabic Presentation
// Forms-B. Non-connecting letters repeat isolated/final for initial/medial.
var letters = [...]letter{
	{'\u0627', '\uFE8D', '\uFE8E', '\uFE8D', '\uFE8E', false}, // Alef
	{'\u0628', '\uFE8F', '\uFE90', '\uFE91', '\uFE92', true},  // Beh
	{'\u062A', '\uFE95', '\uFE96', '\uFE97', '\uFE98', true},  // Teh
	{'\u062B', '\uFE99', '\uFE9A', '\uFE9B', '\uFE9C', true},  // Theh
	{'\u062C', '\uFE9D', '\uFE9E', '\uFE9F', '\uFEA0', true},  // Jeem
	{'\u062D', '\uFEA1', '\uFEA2', '\uFEA3', '\uFEA4', true},  // Hah
	{'\u062E', '\uFEA5', '\uFEA6', '\uFEA7', '\uFEA8', true},  // Khah
	{'\u062F', '\uFEA9', '\uFEAA', '\uFEA9', '\uFEAA', false}, // Dal
	{'\u0630', '\uFEAB', '\uFEAC', '\uFEAB', '\uFEAC', false}, // Thal
	{'\u0631', '\uFEAD', '\uFEAE', '\uFEAD', '\uFEAE', false}, // Reh
	{'\u0632', '\uFEAF', '\uFEB0', '\uFEAF', '\uFEB0', false}, // Zain
	{'\u0633', '\uFEB1', '\uFEB2', '\uFEB3', '\uFEB4', true},  // Seen
	{'\u0634', '\uFEB5', '\uFEB6', '\uFEB7', '\uFEB8', true},  // Sheen
	{'\u0635', '\uFEB9', '\uFEBA', '\uFEBB', '\uFEBC', true},  // Sad
	{'\u0636', '\uFEBD', '\uFEBE', '\uFEBF', '\uFEC0', true},  // Dad
	{'\u0637', '\uFEC1', '\uFEC2', '\uFEC3', '\uFEC4', true},  // Tah
	{'\u0638', '\uFEC5', '\uFEC6', '\uFEC7', '\uFEC8', true},  // Zah
	{'\u0639', '\uFEC9', '\uFECA', '\uFECB', '\uFECC', true},  // Ain
	{'\u063A', '\uFECD', '\uFECE', '\uFECF', '\uFED0', true},  // Ghain
	{'\u0641', '\uFED1', '\uFED2', '\uFED3', '\uFED4', true},  // Feh
	{'\u0642', '\uFED5', '\uFED6', '\uFED7', '\uFED8', true},  // Qaf
	{'\u0643', '\uFED9', '\uFEDA', '\uFEDB', '\uFEDC', true},  // Kaf
	{'\u0644', '\uFEDD', '\uFEDE', '\uFEDF', '\uFEE0', true},  // Lam
	{'\u0645', '\uFEE1', '\uFEE2', '\uFEE3', '\uFEE4', true},  // Meem
	{'\u0646', '\uFEE5', '\uFEE6', '\uFEE7', '\uFEE8', true},  // Noon
	{'\u0647', '\uFEE9', '\uFEEA', '\uFEEB', '\uFEEC', true},  // Heh
	{'\u0648', '\uFEED', '\uFEEE', '\uFEED', '\uFEEE', false}, // Waw
	{'\u064A', '\uFEF1', '\uFEF2', '\uFEF3', '\uFEF4', true},  // Yeh
	{'\u0621', '\uFE80', '\uFE80', '\uFE80', '\uFE80', false}, // Hamza
	{'\u0622', '\uFE81', '\uFE82', '\uFE81', '\uFE82', false}, // Alef with Madda above
	{'\u0623', '\uFE83', '\uFE84', '\uFE83', '\uFE84', false}, // Alef with Hamza above
	{'\u0624', '\uFE85', '\uFE86', '\uFE85', '\uFE86', false}, // Waw with Hamza above
	{'\u0625', '\uFE87', '\uFE88', '\uFE87', '\uFE88', false}, // Alef with Hamza below
	{'\u0626', '\uFE89', '\uFE8A', '\uFE8B', '\uFE8C', true},  // Yeh with Hamza above
	{'\u0629', '\uFE93', '\uFE94', '\uFE93', '\uFE94', false}, // Teh Marbuta
	{'\u0640', '\u0640', '\u0640', '\u0640', '\u0640', true},  // Tatweel
	{'\u0649', '\uFEEF', '\uFEF0', '\uFEEF', '\uFEF0', false}, // Alef Maksura
}

// Tashkil from ISO 8859-6. Diacritics map to themselves and count as
// connecting, so a word does not break at a diacritic.
var tashkil = [...]rune{
	'\u064B', // Fathatan
	'\u064C', // Dammatan
	'\u064D', // Kasratan
	'\u064E', // Fatha
	'\u064F', // Damma
	'\u0650', // Kasra
	'\u0651', // Shadda
	'\u0652', // Sukun
}

// The common codes of the Lam-Alef ligatures live in Presentation Forms-B, as
// they are introduced by ligature folding and never occur in regular input.
var lamAlefLigatures = [...]letter{
	{'\uFEF5', '\uFEF5', '\uFEF6', '\uFEF5', '\uFEF6', false}, // Lam with Alef with Madda above
	{'\uFEF7', '\uFEF7', '\uFEF8', '\uFEF7', '\uFEF8', false}, // Lam with Alef with Hamza above
	{'\uFEF9', '\uFEF9', '\uFEFA', '\uFEF9', '\uFEFA', false}, // Lam with Alef with Hamza below
	{'\uFEFB', '\uFEFB', '\uFEFC', '\uFEFB', '\uFEFC', false}, // Lam with Alef
}
