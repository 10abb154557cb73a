// Package decoder turns the obfuscated provider paths returned by the catalog into embed paths.
package decoder

import (
	"strconv"
	"strings"
)

const (
	prefix    = "--"
	clock     = "/clock"
	clockJSON = "/clock.json"
)

// Decode maps each hex pair of token through the substitution table.
//
// A leading "--" is stripped and a trailing odd character is dropped. Pairs missing from the
// table decode as their hex value, and pairs that are not hex at all are copied through.
// The first "/clock" segment is rewritten to "/clock.json" unless it already is one.
func Decode(token string) string {
	token = strings.TrimPrefix(token, prefix)

	var b strings.Builder
	b.Grow(len(token) / 2)

	for i := 0; i+2 <= len(token); i += 2 {
		pair := token[i : i+2]

		if c, ok := table[pair]; ok {
			b.WriteByte(c)
			continue
		}

		if n, err := strconv.ParseUint(pair, 16, 8); err == nil {
			b.WriteByte(byte(n))
			continue
		}

		b.WriteString(pair)
	}

	return withClockJSON(b.String())
}

func withClockJSON(path string) string {
	i := strings.Index(path, clock)
	if i < 0 || strings.HasPrefix(path[i+len(clock):], ".json") {
		return path
	}
	return path[:i] + clockJSON + path[i+len(clock):]
}
