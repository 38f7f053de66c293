package arabic

// Joining behaviour of an Arabic letter.
type joining uint8

const (
	joinNone  joining = iota // never connects (hamza)
	joinRight                // connects to the preceding letter only
	joinDual                 // connects on both sides
)

// shapeEntry maps one logical letter to its positional presentation forms.
type shapeEntry struct {
	class    joining
	isolated rune
	final    rune
	initial  rune
	medial   rune
}

func (e shapeEntry) pick(prevConnects, nextConnects bool) rune {
	switch {
	case prevConnects && nextConnects:
		return e.medial
	case prevConnects:
		return e.final
	case nextConnects:
		return e.initial
	default:
		return e.isolated
	}
}

const lam = 'ل'

// letters covers the Arabic block plus the Persian/Urdu letters the
// shaping stack of the original supports. Right-joining letters repeat
// their isolated/final forms in the initial/medial slots; those slots
// are never picked for them.
var letters = map[rune]shapeEntry{
	'ء': {joinNone, 'ﺀ', 'ﺀ', 'ﺀ', 'ﺀ'},  // ء
	'آ': {joinRight, 'ﺁ', 'ﺂ', 'ﺁ', 'ﺂ'}, // آ
	'أ': {joinRight, 'ﺃ', 'ﺄ', 'ﺃ', 'ﺄ'}, // أ
	'ؤ': {joinRight, 'ﺅ', 'ﺆ', 'ﺅ', 'ﺆ'}, // ؤ
	'إ': {joinRight, 'ﺇ', 'ﺈ', 'ﺇ', 'ﺈ'}, // إ
	'ئ': {joinDual, 'ﺉ', 'ﺊ', 'ﺋ', 'ﺌ'},  // ئ
	'ا': {joinRight, 'ﺍ', 'ﺎ', 'ﺍ', 'ﺎ'}, // ا
	'ب': {joinDual, 'ﺏ', 'ﺐ', 'ﺑ', 'ﺒ'},  // ب
	'ة': {joinRight, 'ﺓ', 'ﺔ', 'ﺓ', 'ﺔ'}, // ة
	'ت': {joinDual, 'ﺕ', 'ﺖ', 'ﺗ', 'ﺘ'},  // ت
	'ث': {joinDual, 'ﺙ', 'ﺚ', 'ﺛ', 'ﺜ'},  // ث
	'ج': {joinDual, 'ﺝ', 'ﺞ', 'ﺟ', 'ﺠ'},  // ج
	'ح': {joinDual, 'ﺡ', 'ﺢ', 'ﺣ', 'ﺤ'},  // ح
	'خ': {joinDual, 'ﺥ', 'ﺦ', 'ﺧ', 'ﺨ'},  // خ
	'د': {joinRight, 'ﺩ', 'ﺪ', 'ﺩ', 'ﺪ'}, // د
	'ذ': {joinRight, 'ﺫ', 'ﺬ', 'ﺫ', 'ﺬ'}, // ذ
	'ر': {joinRight, 'ﺭ', 'ﺮ', 'ﺭ', 'ﺮ'}, // ر
	'ز': {joinRight, 'ﺯ', 'ﺰ', 'ﺯ', 'ﺰ'}, // ز
	'س': {joinDual, 'ﺱ', 'ﺲ', 'ﺳ', 'ﺴ'},  // س
	'ش': {joinDual, 'ﺵ', 'ﺶ', 'ﺷ', 'ﺸ'},  // ش
	'ص': {joinDual, 'ﺹ', 'ﺺ', 'ﺻ', 'ﺼ'},  // ص
	'ض': {joinDual, 'ﺽ', 'ﺾ', 'ﺿ', 'ﻀ'},  // ض
	'ط': {joinDual, 'ﻁ', 'ﻂ', 'ﻃ', 'ﻄ'},  // ط
	'ظ': {joinDual, 'ﻅ', 'ﻆ', 'ﻇ', 'ﻈ'},  // ظ
	'ع': {joinDual, 'ﻉ', 'ﻊ', 'ﻋ', 'ﻌ'},  // ع
	'غ': {joinDual, 'ﻍ', 'ﻎ', 'ﻏ', 'ﻐ'},  // غ
	'ـ': {joinDual, 'ـ', 'ـ', 'ـ', 'ـ'},  // ـ tatweel
	'ف': {joinDual, 'ﻑ', 'ﻒ', 'ﻓ', 'ﻔ'},  // ف
	'ق': {joinDual, 'ﻕ', 'ﻖ', 'ﻗ', 'ﻘ'},  // ق
	'ك': {joinDual, 'ﻙ', 'ﻚ', 'ﻛ', 'ﻜ'},  // ك
	'ل': {joinDual, 'ﻝ', 'ﻞ', 'ﻟ', 'ﻠ'},  // ل
	'م': {joinDual, 'ﻡ', 'ﻢ', 'ﻣ', 'ﻤ'},  // م
	'ن': {joinDual, 'ﻥ', 'ﻦ', 'ﻧ', 'ﻨ'},  // ن
	'ه': {joinDual, 'ﻩ', 'ﻪ', 'ﻫ', 'ﻬ'},  // ه
	'و': {joinRight, 'ﻭ', 'ﻮ', 'ﻭ', 'ﻮ'}, // و
	'ى': {joinRight, 'ﻯ', 'ﻰ', 'ﻯ', 'ﻰ'}, // ى
	'ي': {joinDual, 'ﻱ', 'ﻲ', 'ﻳ', 'ﻴ'},  // ي
	'ٱ': {joinRight, 'ﭐ', 'ﭑ', 'ﭐ', 'ﭑ'}, // ٱ
	'پ': {joinDual, 'ﭖ', 'ﭗ', 'ﭘ', 'ﭙ'},  // پ
	'چ': {joinDual, 'ﭺ', 'ﭻ', 'ﭼ', 'ﭽ'},  // چ
	'ژ': {joinRight, 'ﮊ', 'ﮋ', 'ﮊ', 'ﮋ'}, // ژ
	'ک': {joinDual, 'ﮎ', 'ﮏ', 'ﮐ', 'ﮑ'},  // ک
	'گ': {joinDual, 'ﮒ', 'ﮓ', 'ﮔ', 'ﮕ'},  // گ
	'ہ': {joinDual, 'ﮦ', 'ﮧ', 'ﮨ', 'ﮩ'},  // ہ
	'ی': {joinDual, 'ﯼ', 'ﯽ', 'ﯾ', 'ﯿ'},  // ی
	'ے': {joinRight, 'ﮮ', 'ﮯ', 'ﮮ', 'ﮯ'}, // ے
}

// lamAlef maps the alef variants that fuse with a preceding lam into
// their {isolated, final} ligatures.
var lamAlef = map[rune]struct{ isolated, final rune }{
	'آ': {'ﻵ', 'ﻶ'}, // لآ
	'أ': {'ﻷ', 'ﻸ'}, // لأ
	'إ': {'ﻹ', 'ﻺ'}, // لإ
	'ا': {'ﻻ', 'ﻼ'}, // لا
}

// isTransparent reports whether r is invisible to joining (harakat and
// other combining marks of the Arabic block).
func isTransparent(r rune) bool {
	switch {
	case r >= 'ؐ' && r <= 'ؚ':
		return true
	case r >= 'ً' && r <= 'ٟ':
		return true
	case r == 'ٰ':
		return true
	case r >= 'ۖ' && r <= 'ۜ':
		return true
	case r >= '۟' && r <= 'ۤ':
		return true
	case r == 'ۧ' || r == 'ۨ':
		return true
	case r >= '۪' && r <= 'ۭ':
		return true
	}
	return false
}
