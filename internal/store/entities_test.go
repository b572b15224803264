package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToXML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"double ampersand", "a && b", "a &#038;&#038; b"},
		{"single ampersand untouched", "a & b", "a & b"},
		{"entity untouched", "a &amp; b", "a &amp; b"},
		{"quote untouched", `say "hi"`, `say "hi"`},
		{"no special characters", "retroarch %ROM%", "retroarch %ROM%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToXML(tt.in))
		})
	}
}

func TestFromXML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"named entity pair", "a &amp;&amp; b", "a && b"},
		{"numeric entity pair", "a &#038;&#038; b", "a && b"},
		{"quote", "say &quot;hi&quot;", `say "hi"`},
		{"single ampersand stays escaped", "a &amp; b", "a &amp; b"},
		{"less-than stays escaped", "a &lt; b", "a &lt; b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromXML(tt.in))
		})
	}
}

func TestEntityPasses_IdempotentWithoutSpecials(t *testing.T) {
	s := "<command>retroarch -L core %ROM%</command>"

	assert.Equal(t, s, ToXML(s))
	assert.Equal(t, s, FromXML(s))
}
