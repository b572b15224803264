package store

import "strings"

// substitution is one literal find/replace step of an entity pass.
type substitution struct {
	from string
	to   string
}

// toXMLTable makes raw "&&" parseable as two literal ampersands.
var toXMLTable = []substitution{
	{from: "&&", to: "&#038;&#038;"},
}

// fromXMLTable restores the literal characters EmulationStation expects.
var fromXMLTable = []substitution{
	{from: "&amp;&amp;", to: "&&"},
	{from: "&#038;&#038;", to: "&&"},
	{from: "&quot;", to: `"`},
}

// ToXML prepares raw system list text for an XML parser.
func ToXML(s string) string {
	return applySubstitutions(s, toXMLTable)
}

// FromXML undoes selected XML escaping in rendered system list text.
func FromXML(s string) string {
	return applySubstitutions(s, fromXMLTable)
}

func applySubstitutions(s string, table []substitution) string {
	for _, sub := range table {
		s = strings.ReplaceAll(s, sub.from, sub.to)
	}
	return s
}
