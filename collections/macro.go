package collections

import (
	"fmt"
	"slices"
	"sync"

	"github.com/spf13/cast"

	"github.com/romkatsu/collection/arr"
)

// Macro is a named collection transform. args are whatever the caller
// passes to [Collection.Apply] or lists in a [Stage].
type Macro func(c *Collection, args ...any) (*Collection, error)

// Stage is one step of a [Collection.Pipe] chain. Stages decode from JSON or
// YAML, so a pipeline can live in configuration:
//
//	- macro: index
//	  args: [id]
//	- macro: slice
//	  args: [0, 10]
type Stage struct {
	Macro string `json:"macro" yaml:"macro"`
	Args  []any  `json:"args,omitempty" yaml:"args,omitempty"`
}

var macros = struct {
	mu     sync.RWMutex
	byName map[string]Macro
}{byName: builtinMacros()}

// builtinMacros exposes the argument-driven operations under stable names.
func builtinMacros() map[string]Macro {
	return map[string]Macro{
		"values":   func(c *Collection, _ ...any) (*Collection, error) { return c.Values(), nil },
		"keys":     func(c *Collection, _ ...any) (*Collection, error) { return c.Keys(), nil },
		"reverse":  func(c *Collection, _ ...any) (*Collection, error) { return c.Reverse(), nil },
		"collapse": func(c *Collection, _ ...any) (*Collection, error) { return c.Collapse() },
		"flip":     func(c *Collection, _ ...any) (*Collection, error) { return c.Flip() },
		"merge": func(c *Collection, args ...any) (*Collection, error) {
			for _, other := range args {
				var err error
				if c, err = c.Merge(other); err != nil {
					return nil, err
				}
			}
			return c, nil
		},
		"slice": func(c *Collection, args ...any) (*Collection, error) {
			offset, err := intArg(args, 0, 0)
			if err != nil {
				return nil, err
			}
			limit, err := intArg(args, 1, arr.NoLimit)
			if err != nil {
				return nil, err
			}
			preserve, err := boolArg(args, 2)
			if err != nil {
				return nil, err
			}
			return c.Slice(offset, limit, preserve), nil
		},
		"sort": func(c *Collection, args ...any) (*Collection, error) {
			dir := Ascending
			if len(args) > 0 {
				switch s := cast.ToString(args[0]); s {
				case "asc":
				case "desc":
					dir = Descending
				default:
					return nil, fmt.Errorf("%w: sort direction %q", ErrTypeMismatch, s)
				}
			}
			return c.Sort(dir, arr.SortRegular), nil
		},
		"index": func(c *Collection, args ...any) (*Collection, error) {
			path, err := pathArg(args)
			if err != nil {
				return nil, err
			}
			return c.IndexBy(path)
		},
		"group": func(c *Collection, args ...any) (*Collection, error) {
			path, err := pathArg(args)
			if err != nil {
				return nil, err
			}
			preserve, err := boolArg(args, 1)
			if err != nil {
				return nil, err
			}
			return c.GroupBy(path, preserve)
		},
	}
}

func intArg(args []any, i, def int) (int, error) {
	if i >= len(args) || args[i] == nil {
		return def, nil
	}
	n, err := cast.ToIntE(args[i])
	if err != nil {
		return 0, fmt.Errorf("%w: argument %d: %v", ErrTypeMismatch, i, err)
	}
	return n, nil
}

func boolArg(args []any, i int) (bool, error) {
	if i >= len(args) || args[i] == nil {
		return false, nil
	}
	b, err := cast.ToBoolE(args[i])
	if err != nil {
		return false, fmt.Errorf("%w: argument %d: %v", ErrTypeMismatch, i, err)
	}
	return b, nil
}

func pathArg(args []any) (arr.Field, error) {
	if len(args) == 0 {
		return arr.Field{}, fmt.Errorf("%w: missing field path", ErrTypeMismatch)
	}
	if f, ok := args[0].(arr.Field); ok {
		return f, nil
	}
	s, err := cast.ToStringE(args[0])
	if err != nil {
		return arr.Field{}, fmt.Errorf("%w: field path: %v", ErrTypeMismatch, err)
	}
	return arr.Path(s), nil
}

// RegisterMacro stores fn under name, replacing any macro already there,
// built-in ones included. Safe for concurrent use.
//
//	collections.RegisterMacro("top", func(c *collections.Collection, args ...any) (*collections.Collection, error) {
//	    return c.Sort(collections.Descending, arr.SortNumeric).Slice(0, args[0].(int), false), nil
//	})
func RegisterMacro(name string, fn Macro) {
	macros.mu.Lock()
	defer macros.mu.Unlock()
	macros.byName[name] = fn
}

// UnregisterMacro removes name. Built-in macros come back only when
// registered again.
func UnregisterMacro(name string) {
	macros.mu.Lock()
	defer macros.mu.Unlock()
	delete(macros.byName, name)
}

// HasMacro reports whether a macro with the given name is registered.
func HasMacro(name string) bool {
	_, ok := lookupMacro(name)
	return ok
}

// MacroNames returns the registered names in sorted order.
func MacroNames() []string {
	macros.mu.RLock()
	defer macros.mu.RUnlock()
	names := make([]string, 0, len(macros.byName))
	for name := range macros.byName {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func lookupMacro(name string) (Macro, bool) {
	macros.mu.RLock()
	defer macros.mu.RUnlock()
	fn, ok := macros.byName[name]
	return fn, ok
}

// Apply runs the macro registered under name on c. An unknown name yields
// [ErrMacroNotFound]; a macro returning a nil collection yields an empty one.
func (c *Collection) Apply(name string, args ...any) (*Collection, error) {
	fn, ok := lookupMacro(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMacroNotFound, name)
	}
	out, err := fn(c, args...)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return Empty(), nil
	}
	return out, nil
}

// Pipe feeds c through stages in order and returns the last result. The
// first failing stage stops the chain; its error names the stage.
func (c *Collection) Pipe(stages ...Stage) (*Collection, error) {
	out := c
	for i, s := range stages {
		next, err := out.Apply(s.Macro, s.Args...)
		if err != nil {
			return nil, fmt.Errorf("collections: stage %d (%s): %w", i, s.Macro, err)
		}
		out = next
	}
	return out, nil
}
