// Package rewrite injects a pagination clause into arbitrary SELECT
// statements. It decides lexically whether LIMIT/OFFSET can be appended
// directly or whether the statement must be wrapped in a subquery so the
// new clause governs the full original result set.
package rewrite

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/queryboard/internal/lexer"
)

// SubqueryAlias is the alias used on the wrap path. It is reserved: callers
// must not use it as a table alias inside their own queries.
const SubqueryAlias = "paginated_subquery"

// RewriteError reports SQL that could not be tokenized (unbalanced quotes,
// unterminated comment). The query is rejected outright; falling back to
// naive string matching would reintroduce the keyword false positives the
// tokenizer exists to prevent.
type RewriteError struct {
	Err error
}

func (e *RewriteError) Error() string {
	return fmt.Sprintf("cannot paginate query: %v", e.Err)
}

func (e *RewriteError) Unwrap() error { return e.Err }

// Rewrite returns a statement equivalent to query restricted to limit rows
// starting at offset. The caller supplies limit > 0 and offset >= 0.
//
// A query with no LIMIT/OFFSET keyword gets the clause appended directly.
// If such a keyword appears anywhere in the statement, including inside a
// nested subquery, the query is conservatively wrapped:
//
//	SELECT * FROM (query) AS paginated_subquery LIMIT n OFFSET m
//
// so the new clause applies to the full original result set. Keyword text
// inside string literals, comments, and quoted identifiers never counts,
// nor do identifiers that merely share the spelling.
func Rewrite(query string, limit, offset int) (string, error) {
	trimmed := strings.TrimSpace(query)
	trimmed = strings.TrimSpace(strings.TrimSuffix(trimmed, ";"))

	tokens, err := lexer.Tokenize(trimmed)
	if err != nil {
		return "", &RewriteError{Err: err}
	}

	if hasPaginationKeyword(tokens) {
		return fmt.Sprintf("SELECT * FROM (%s) AS %s LIMIT %d OFFSET %d",
			trimmed, SubqueryAlias, limit, offset), nil
	}
	return fmt.Sprintf("%s LIMIT %d OFFSET %d", trimmed, limit, offset), nil
}

func hasPaginationKeyword(tokens []lexer.Token) bool {
	for _, tok := range tokens {
		if tok.IsKeyword("LIMIT") || tok.IsKeyword("OFFSET") {
			return true
		}
	}
	return false
}
