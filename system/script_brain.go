package system

import (
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/delve/obj"
	"github.com/milk9111/delve/prefabs"
)

// brainDispatchScript is appended to every brain script. The script must
// define decide(view) returning an action name.
const brainDispatchScript = `
__action = decide(__view)
`

// ScriptBrain runs a tengo script to pick each kobold action. Script errors
// are logged and the fallback brain answers instead.
type ScriptBrain struct {
	Path     string
	Fallback obj.Brain

	compiled *tengo.Compiled
}

// NewScriptBrain loads and compiles the script at path, resolved through
// prefabs.LoadScript.
func NewScriptBrain(path string) (*ScriptBrain, error) {
	b := &ScriptBrain{Path: path, Fallback: obj.GreedyBrain{}}
	if err := b.Reload(); err != nil {
		return nil, err
	}
	return b, nil
}

// Reload recompiles the script. On failure the previous program stays active.
func (b *ScriptBrain) Reload() error {
	src, err := prefabs.LoadScript(b.Path)
	if err != nil {
		return fmt.Errorf("system: load brain %s: %w", b.Path, err)
	}
	compiled, err := compileBrain(src)
	if err != nil {
		return fmt.Errorf("system: compile brain %s: %w", b.Path, err)
	}
	b.compiled = compiled
	return nil
}

func compileBrain(src []byte) (*tengo.Compiled, error) {
	script := tengo.NewScript([]byte(string(src) + "\n" + brainDispatchScript))
	_ = script.Add("__view", map[string]any{})
	_ = script.Add("__action", "")
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	return script.Compile()
}

func (b *ScriptBrain) Decide(v obj.BrainView) obj.Action {
	action, err := b.decide(v)
	if err != nil {
		log.Printf("brain %s: %v", b.Path, err)
		return b.fallback().Decide(v)
	}
	return action
}

func (b *ScriptBrain) decide(v obj.BrainView) (obj.Action, error) {
	if b == nil || b.compiled == nil {
		return obj.ActionWait, fmt.Errorf("not compiled")
	}
	view := map[string]any{
		"has_target": v.HasTarget,
		"distance":   v.Distance,
		"adjacent":   v.Adjacent,
		"has_path":   v.HasPath,
		"hp":         float64(v.HP),
		"max_hp":     float64(v.MaxHP),
	}
	if err := b.compiled.Set("__view", view); err != nil {
		return obj.ActionWait, err
	}
	if err := b.compiled.Set("__action", ""); err != nil {
		return obj.ActionWait, err
	}
	if err := b.compiled.Run(); err != nil {
		return obj.ActionWait, err
	}

	name := strings.TrimSpace(b.compiled.Get("__action").String())
	action, ok := obj.ParseAction(name)
	if !ok {
		return obj.ActionWait, fmt.Errorf("unknown action %q", name)
	}
	return action, nil
}

func (b *ScriptBrain) fallback() obj.Brain {
	if b == nil || b.Fallback == nil {
		return obj.GreedyBrain{}
	}
	return b.Fallback
}
