// Package shell turns raw input lines into command words.
//
// Lexing follows a reduced form of the POSIX token recognition rules
// (https://pubs.opengroup.org/onlinepubs/9699919799/utilities/V3_chap02.html):
// words are split on unquoted spaces, single quotes preserve everything,
// double quotes honor backslash only before \, $ and ", and a backslash
// outside quotes escapes the next character. Malformed input is never an
// error, an unterminated quote runs to the end of the line.
package shell
