package palette

import "github.com/jsvensson/colorname/internal/color"

// buildWeb returns the CSS color keywords as a palette. Keywords sharing
// a value collapse onto the alphabetically last name, e.g. "cyan" and
// "grey".
func buildWeb() *Palette {
	p := New(Web, "CSS color keywords")
	for _, name := range color.KeywordNames() {
		c, err := color.Parse(name)
		if err != nil {
			panic(err)
		}
		key, err := c.Key()
		if err != nil {
			panic(err)
		}
		p.set(Entry{Key: key, Name: name, Color: c})
	}
	return p
}
