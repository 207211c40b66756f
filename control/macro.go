package control

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/platformer/common"
)

// MacroStep holds Key down for Ticks simulation ticks.
type MacroStep struct {
	Key   Direction
	Ticks int
}

// LoadMacros replaces any running macro. Steps run one after another; the
// first key goes down immediately.
func (c *Controls) LoadMacros(steps []MacroStep) {
	c.mu.Lock()
	if len(c.macro) > 0 {
		c.releaseLocked(c.macro[0].Key)
	}
	c.macro = nil
	for _, s := range steps {
		if s.Key != None && s.Ticks > 0 {
			c.macro = append(c.macro, s)
		}
	}
	c.startLocked()
	c.mu.Unlock()
}

// Tick advances macro playback by one simulation tick.
func (c *Controls) Tick() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.macro) == 0 {
		return
	}
	c.remaining--
	if c.remaining > 0 {
		return
	}
	c.releaseLocked(c.macro[0].Key)
	c.macro = c.macro[1:]
	c.startLocked()
}

// Playing reports whether a macro is still running.
func (c *Controls) Playing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.macro) > 0
}

func (c *Controls) startLocked() {
	if len(c.macro) == 0 {
		c.macro = nil
		return
	}
	s := c.macro[0]
	c.remaining = s.Ticks
	if s.Key.Horizontal() {
		c.horizontal = s.Key
	}
	for _, k := range c.keys {
		if k == s.Key {
			return
		}
	}
	c.keys = append(c.keys, s.Key)
}

func (c *Controls) releaseLocked(d Direction) {
	for i, k := range c.keys {
		if k == d {
			c.keys = append(c.keys[:i], c.keys[i+1:]...)
			return
		}
	}
}

// CompileMacro runs a tengo script and reads its global `macro`, an array of
// {key: "right", ticks: 60} maps. The script can use `tps` and the tengo
// standard modules.
func CompileMacro(src []byte) ([]MacroStep, error) {
	script := tengo.NewScript(src)
	_ = script.Add("tps", common.TPS)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Run()
	if err != nil {
		return nil, fmt.Errorf("macro: %w", err)
	}
	if !compiled.IsDefined("macro") {
		return nil, fmt.Errorf("macro: script does not define `macro`")
	}

	var steps []MacroStep
	for i, raw := range compiled.Get("macro").Array() {
		m, ok := raw.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("macro: step %d is not a map", i)
		}
		name, _ := m["key"].(string)
		key, ok := ParseDirection(name)
		if !ok {
			return nil, fmt.Errorf("macro: step %d: unknown key %q", i, name)
		}
		ticks, err := toInt(m["ticks"])
		if err != nil {
			return nil, fmt.Errorf("macro: step %d: %w", i, err)
		}
		steps = append(steps, MacroStep{Key: key, Ticks: ticks})
	}
	return steps, nil
}

func toInt(v interface{}) (int, error) {
	switch n := v.(type) {
	case int64:
		return int(n), nil
	case int:
		return n, nil
	case float64:
		return int(n), nil
	}
	return 0, fmt.Errorf("ticks must be a number, got %T", v)
}
