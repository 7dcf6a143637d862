package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/josephlewis42/minish/core/vos"
)

var unescapeSimple = map[byte]byte{
	'n':  '\n', // newline
	'r':  '\r', // carriage return
	't':  '\t', // horizontal tab
	'\\': '\\', // backslash literal
	'b':  '\b', // backspace
	'a':  '\a', // alert
	'f':  '\f', // form feed
	'v':  '\v', // vertical tab
	'e':  0x1b, // escape
}

// unescape interprets backslash escapes in a single left to right pass.
// \0NNN and \xHH produce raw bytes, unknown escapes are kept as is.
func unescape(s string) string {
	var out strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			out.WriteByte(s[i])
			continue
		}

		next := s[i+1]
		if b, ok := unescapeSimple[next]; ok {
			out.WriteByte(b)
			i++
			continue
		}

		var digits string
		var base int
		switch next {
		case '0':
			digits, base = leadingDigits(s[i+2:], 3, "01234567"), 8
		case 'x':
			digits, base = leadingDigits(s[i+2:], 2, "0123456789abcdefABCDEF"), 16
		}

		switch {
		case base == 8 || (base == 16 && digits != ""):
			val, _ := strconv.ParseUint("0"+digits, base, 16)
			out.WriteByte(byte(val))
			i += 1 + len(digits)
		default:
			out.WriteByte(s[i])
		}
	}
	return out.String()
}

// leadingDigits returns up to limit leading characters of s found in digits.
func leadingDigits(s string, limit int, digits string) string {
	n := 0
	for n < len(s) && n < limit && strings.IndexByte(digits, s[n]) >= 0 {
		n++
	}
	return s[:n]
}

// Echo writes its arguments separated by spaces. Leading -n and -e flags
// suppress the newline and interpret backslash escapes, any other word is
// printed as is.
type Echo struct{}

var _ Builtin = Echo{}

func (Echo) Name() string { return "echo" }

func (Echo) Run(s *Shell, stdio vos.VIO, args []string) int {
	words := args[1:]
	newline, escaped := true, false

flags:
	for len(words) > 0 {
		switch words[0] {
		case "-n":
			newline = false
		case "-e":
			escaped = true
		default:
			break flags
		}
		words = words[1:]
	}

	w := stdio.Stdout()
	for i, word := range words {
		if i > 0 {
			fmt.Fprint(w, " ")
		}
		if escaped {
			word = unescape(word)
		}
		fmt.Fprint(w, word)
	}

	if newline {
		fmt.Fprintln(w)
	}
	return 0
}

func init() {
	mustAddBuiltin(Echo{})
}
