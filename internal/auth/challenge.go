// Package auth implements the HTTP proxy authentication helpers: parsing of
// RFC 7235 Proxy-Authenticate challenges and generation of Basic
// Proxy-Authorization values.
package auth

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	challengePattern = regexp.MustCompile(`^(\S+)(?:\s+(.*))?$`)
	paramPattern     = regexp.MustCompile(`([^=\s,]+)=(?:"([^"]*)"?|([^\s,"]+))`)
)

// Param is one name=value authentication parameter.
type Param struct {
	Name  string
	Value string
}

// Challenge is an authentication scheme offered by a proxy along with its
// parameters, in the order they were sent.
type Challenge struct {
	Scheme string
	Params []Param
}

// Param returns the value of the first parameter called name, compared
// case-insensitively.
func (c Challenge) Param(name string) (string, bool) {
	for _, p := range c.Params {
		if strings.EqualFold(p.Name, name) {
			return p.Value, true
		}
	}
	return "", false
}

func (c Challenge) String() string {
	if len(c.Params) == 0 {
		return c.Scheme
	}
	var b strings.Builder
	b.WriteString(c.Scheme)
	for i, p := range c.Params {
		if i == 0 {
			b.WriteByte(' ')
		} else {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
		b.WriteByte('=')
		b.WriteString(strconv.Quote(p.Value))
	}
	return b.String()
}

// ParseChallenge parses one Proxy-Authenticate header value of the form
// "scheme [parameters]". It returns false when value has no scheme.
// Parameter text that is not a name=value or name="value" pair is ignored.
func ParseChallenge(value string) (Challenge, bool) {
	m := challengePattern.FindStringSubmatch(value)
	if m == nil {
		return Challenge{}, false
	}

	c := Challenge{Scheme: m[1]}
	for _, pm := range paramPattern.FindAllStringSubmatch(m[2], -1) {
		v := pm[2]
		if v == "" {
			v = pm[3]
		}
		c.Params = append(c.Params, Param{Name: pm[1], Value: v})
	}
	return c, true
}

// ParseChallenges parses each value, silently dropping those that are not
// challenges.
func ParseChallenges(values []string) []Challenge {
	var out []Challenge
	for _, v := range values {
		if c, ok := ParseChallenge(v); ok {
			out = append(out, c)
		}
	}
	return out
}
