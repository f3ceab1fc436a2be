package dom

import (
	"strings"
)

// ClassList edits the class attribute of an element as a token set.
type ClassList struct {
	el *Element
}

func (c *ClassList) Values() []string {
	v, _ := c.el.GetAttribute("class")
	return strings.Fields(v)
}

func (c *ClassList) Contains(token string) bool {
	for _, v := range c.Values() {
		if v == token {
			return true
		}
	}
	return false
}

func (c *ClassList) Add(tokens ...string) {
	values := c.Values()
	for _, t := range tokens {
		if t == "" || contains(values, t) {
			continue
		}
		values = append(values, t)
	}
	c.el.SetAttribute("class", strings.Join(values, " "))
}

func (c *ClassList) Remove(tokens ...string) {
	values := c.Values()
	kept := values[:0]
	for _, v := range values {
		if !contains(tokens, v) {
			kept = append(kept, v)
		}
	}
	c.el.SetAttribute("class", strings.Join(kept, " "))
}

// Toggle removes token if present, adds it otherwise, and reports whether it is present now.
func (c *ClassList) Toggle(token string) bool {
	if c.Contains(token) {
		c.Remove(token)
		return false
	}
	c.Add(token)
	return true
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
