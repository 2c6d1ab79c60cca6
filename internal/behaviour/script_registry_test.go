package behaviour

import (
	"errors"
	"testing"
)

// isolateRegistry gives the test an empty registry and restores the real one,
// with the scripts registered at init, afterwards.
func isolateRegistry(t *testing.T) {
	t.Helper()
	saved := scriptRegistry
	scriptRegistry = make(map[string]ScriptConstructor)
	t.Cleanup(func() { scriptRegistry = saved })
}

func TestCreateScriptReturnsFreshInstances(t *testing.T) {
	isolateRegistry(t)

	RegisterScript("TypedMock", func() Component {
		return &typedMock{}
	})

	first := CreateScript("TypedMock")
	second := CreateScript("TypedMock")

	if first == nil || second == nil {
		t.Fatal("CreateScript returned nil")
	}
	if first == second {
		t.Error("Expected a new instance per call")
	}
	if typed, ok := first.(TypedComponent); !ok || typed.GetTypeName() != "TypedMock" {
		t.Errorf("Expected a TypedMock, got %T", first)
	}
}

func TestCreateScriptNotFound(t *testing.T) {
	isolateRegistry(t)

	if comp := CreateScript("NonExistent"); comp != nil {
		t.Error("CreateScript should return nil for non-existent script")
	}
}

func TestGetAvailableScriptsSorted(t *testing.T) {
	isolateRegistry(t)

	RegisterScript("RotateScript", func() Component { return &MockComponent{} })
	RegisterScript("OrbitScript", func() Component { return &MockComponent{} })
	RegisterScript("Grabber", func() Component { return &MockComponent{} })

	scripts := GetAvailableScripts()

	want := []string{"Grabber", "OrbitScript", "RotateScript"}
	if len(scripts) != len(want) {
		t.Fatalf("Expected %d scripts, got %d", len(want), len(scripts))
	}
	for i := range want {
		if scripts[i] != want[i] {
			t.Errorf("Expected script %d to be '%s', got '%s'", i, want[i], scripts[i])
		}
	}
}

func TestAttachScriptAddsToGameObject(t *testing.T) {
	isolateRegistry(t)

	RegisterScript("TypedMock", func() Component { return &typedMock{} })
	obj := NewGameObject("Crate")

	comp, err := AttachScript(obj, "TypedMock")
	if err != nil {
		t.Fatalf("AttachScript failed: %v", err)
	}
	if obj.GetComponent("TypedMock") != comp {
		t.Error("Expected the script to be attached to the object")
	}
	if comp.GetGameObject() != obj {
		t.Error("Expected the script to know its object")
	}
}

func TestAttachScriptUnknownName(t *testing.T) {
	isolateRegistry(t)
	obj := NewGameObject("Crate")

	comp, err := AttachScript(obj, "Missing")

	if !errors.Is(err, ErrUnknownScript) {
		t.Errorf("Expected ErrUnknownScript, got %v", err)
	}
	if comp != nil || len(obj.Components) != 0 {
		t.Error("Expected nothing attached for an unknown script")
	}
}
