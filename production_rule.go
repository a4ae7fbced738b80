package lsystem

import (
	"sort"
	"strings"
)

type ProductionRule struct {
	Predecessor Token
	Successor   string
}

func (r ProductionRule) String() string {
	var sb strings.Builder
	sb.WriteRune('"')
	sb.WriteByte(byte(r.Predecessor))
	sb.WriteRune('"')
	sb.WriteString(": `")
	sb.WriteString(r.Successor)
	sb.WriteString("`")
	return sb.String()
}

// Rules maps a predecessor symbol to its replacement string.
type Rules map[Token]string

func NewRules(rules ...ProductionRule) Rules {
	rs := make(Rules, len(rules))
	for _, r := range rules {
		rs[r.Predecessor] = r.Successor
	}
	return rs
}

// Productions returns the rules ordered by predecessor.
func (rs Rules) Productions() []ProductionRule {
	out := make([]ProductionRule, 0, len(rs))
	for k, v := range rs {
		out = append(out, ProductionRule{Predecessor: k, Successor: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Predecessor < out[j].Predecessor })
	return out
}

// Variables returns every symbol that has a rule of its own.
func (rs Rules) Variables() TokenSet {
	vars := make(TokenSet, len(rs))
	for k := range rs {
		vars.Add(k)
	}
	return vars
}

func (rs Rules) String() string {
	prods := rs.Productions()
	parts := make([]string, len(prods))
	for i, p := range prods {
		parts[i] = p.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
