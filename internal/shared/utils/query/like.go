package query

import "strings"

// NameContains matches a lowercased column against a literal substring.
// The ESCAPE clause is required by SQLite; PostgreSQL already defaults to it.
const NameContains = `LOWER(name) LIKE ? ESCAPE '\'`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern lowercases term, escapes the LIKE metacharacters in it and
// wraps it in wildcards, so the term only ever matches as a literal.
func ContainsPattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}
