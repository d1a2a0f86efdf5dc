package receipt

import "strings"

// The core PDF fonts only cover Latin-1, so Cyrillic names are transliterated.
var cyrillic = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "yo", 'ж': "zh",
	'з': "z", 'и': "i", 'й': "y", 'к': "k", 'л': "l", 'м': "m", 'н': "n", 'о': "o",
	'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u", 'ф': "f", 'х': "kh", 'ц': "ts",
	'ч': "ch", 'ш': "sh", 'щ': "shch", 'ъ': "", 'ы': "y", 'ь': "", 'э': "e", 'ю': "yu",
	'я': "ya", 'ә': "a", 'ғ': "g", 'қ': "q", 'ң': "n", 'ө': "o", 'ұ': "u", 'ү': "u",
	'һ': "h", 'і': "i",
}

func transliterate(s string) string {
	var b strings.Builder
	for _, r := range s {
		lower := []rune(strings.ToLower(string(r)))[0]
		lat, ok := cyrillic[lower]
		switch {
		case !ok && r < 0x80:
			b.WriteRune(r)
		case !ok:
			// quotes and other symbols outside ASCII
			switch r {
			case '«', '»':
				b.WriteByte('"')
			default:
				b.WriteByte('?')
			}
		case lower != r && lat != "":
			b.WriteString(strings.ToUpper(lat[:1]) + lat[1:])
		default:
			b.WriteString(lat)
		}
	}
	return b.String()
}

// latin prefers the transliterated name and falls back to the id.
func latin(name, id string) string {
	if strings.TrimSpace(name) == "" {
		return id
	}
	return transliterate(name)
}
