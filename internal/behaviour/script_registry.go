package behaviour

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownScript = errors.New("unknown script")

type ScriptConstructor func() Component

var scriptRegistry = make(map[string]ScriptConstructor)

func RegisterScript(name string, constructor ScriptConstructor) {
	scriptRegistry[name] = constructor
}

func GetAvailableScripts() []string {
	names := make([]string, 0, len(scriptRegistry))
	for name := range scriptRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateScript returns a new instance of the named script, or nil when no
// script is registered under that name.
func CreateScript(name string) Component {
	if constructor, exists := scriptRegistry[name]; exists {
		return constructor()
	}
	return nil
}

// AttachScript creates the named script and adds it to obj.
func AttachScript(obj *GameObject, name string) (Component, error) {
	script := CreateScript(name)
	if script == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScript, name)
	}
	obj.AddComponent(script)
	return script, nil
}
