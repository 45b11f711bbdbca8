package main

import (
	"fmt"
	"regexp"
)

// Default namespace prefixes whose crefs docfx cannot resolve. Tags pointing
// anywhere else (System, the library's own namespaces) resolve fine and are
// left alone.
var defaultPrefixes = []string{"SadRogue", "Troschuetz"}

// rule matches one allow-listed family of self-closing <see cref="..."/>
// tags; the quoted identifier is captured so the whole tag can collapse to
// it.
type rule struct {
	pattern *regexp.Regexp
}

// ruleForPrefix compiles the matcher for a single namespace prefix. The
// pattern tolerates whitespace around the tag's internal punctuation, so
// `< see cref = "SadRogue.Foo" / >` is stripped the same as the canonical
// form. Only self-closing tags match; `<see cref="...">text</see>` carries
// display text the generator keeps anyway.
func ruleForPrefix(prefix string) rule {
	expr := fmt.Sprintf(`<\s*see\s+cref\s*=\s*"(%s\..+?)"\s*/\s*>`, regexp.QuoteMeta(prefix))
	return rule{pattern: regexp.MustCompile(expr)}
}

func rulesForPrefixes(prefixes []string) []rule {
	rules := make([]rule, 0, len(prefixes))
	for _, prefix := range prefixes {
		rules = append(rules, ruleForPrefix(prefix))
	}
	return rules
}

// rewrite applies each rule as a full pass over the current buffer, in order,
// replacing every match with its captured identifier. Text that matches no
// rule comes back byte-for-byte unchanged, and the output never matches
// again, so rewriting is idempotent.
func rewrite(text string, rules []rule) string {
	for _, r := range rules {
		text = r.pattern.ReplaceAllString(text, "${1}")
	}
	return text
}
