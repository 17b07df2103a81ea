package species

import (
	"fmt"
	"strings"
)

// Context identifies the game era whose sprite naming rules apply.
type Context uint8

const (
	ContextNone Context = iota
	Gen1
	Gen2
	Gen3
	Gen4
	Gen5
	Gen6
	Gen7
	Gen8
	Gen9
	Gen7b // Let's Go
	Gen8a // Legends: Arceus
	Gen8b // BDSP
)

var contextNames = [...]string{
	ContextNone: "none",
	Gen1:        "gen1",
	Gen2:        "gen2",
	Gen3:        "gen3",
	Gen4:        "gen4",
	Gen5:        "gen5",
	Gen6:        "gen6",
	Gen7:        "gen7",
	Gen8:        "gen8",
	Gen9:        "gen9",
	Gen7b:       "gen7b",
	Gen8a:       "gen8a",
	Gen8b:       "gen8b",
}

func (c Context) String() string {
	if int(c) < len(contextNames) {
		return contextNames[c]
	}
	return fmt.Sprintf("context(%d)", uint8(c))
}

// ParseContext maps "gen7", "Gen7" or "7" to a Context.
func ParseContext(s string) (Context, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ContextNone, nil
	}
	if !strings.HasPrefix(s, "gen") && s != "none" {
		s = "gen" + s
	}
	for i, name := range contextNames {
		if name == s {
			return Context(i), nil
		}
	}
	return ContextNone, fmt.Errorf("species: unknown context %q", s)
}

// UnmarshalText lets Context be decoded from TOML, YAML and env values.
func (c *Context) UnmarshalText(text []byte) error {
	v, err := ParseContext(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (c Context) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
