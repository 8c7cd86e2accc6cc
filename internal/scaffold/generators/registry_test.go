package generators

import (
	"testing"

	"github.com/quillforge/quill/internal/scaffold/model"
)

// testGenerator builds a minimal generator for registry tests.
func testGenerator(id string, fw model.Framework) *Base {
	return New(model.Descriptor{
		ID:                   id,
		Framework:            fw,
		Name:                 id,
		Version:              "0.0.1",
		PackageTypes:         []model.PackageType{model.PackageTypeLibrary},
		RuntimeTargets:       []model.RuntimeTarget{model.TargetNode},
		RecommendedBuildTool: model.BuildToolTsup,
	}, Hooks{})
}

// TestRegistry_RegisterAndGet tests basic registration and lookup
func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()

	if replaced := r.Register(testGenerator("alpha", model.FrameworkNode)); replaced {
		t.Error("first registration must not report replaced")
	}

	g, ok := r.Get("alpha")
	if !ok {
		t.Fatal("expected generator alpha to be registered")
	}
	if g.Descriptor().ID != "alpha" {
		t.Errorf("Get returned generator %q", g.Descriptor().ID)
	}

	if _, ok := r.Get("missing"); ok {
		t.Error("expected lookup miss for unregistered id")
	}
}

// TestRegistry_ReplaceKeepsLastRegistration verifies last-wins semantics
func TestRegistry_ReplaceKeepsLastRegistration(t *testing.T) {
	r := NewRegistry()
	first := testGenerator("alpha", model.FrameworkNode)
	second := testGenerator("alpha", model.FrameworkNode)

	r.Register(first)
	if replaced := r.Register(second); !replaced {
		t.Error("re-registration must report replaced")
	}

	g, _ := r.Get("alpha")
	if g != Generator(second) {
		t.Error("expected the second registration to win")
	}
	if got := len(r.GetAll()); got != 1 {
		t.Errorf("expected 1 registered generator after replacement, got %d", got)
	}
}

// TestRegistry_PrimaryIsFirstRegistered verifies primary selection
func TestRegistry_PrimaryIsFirstRegistered(t *testing.T) {
	r := NewRegistry()
	first := testGenerator("node-main", model.FrameworkNode)
	second := testGenerator("node-alt", model.FrameworkNode)
	r.Register(first)
	r.Register(second)

	primary, ok := r.GetPrimary(model.FrameworkNode)
	if !ok {
		t.Fatal("expected a primary generator for node")
	}
	if primary.Descriptor().ID != "node-main" {
		t.Errorf("primary = %q, want node-main", primary.Descriptor().ID)
	}

	bucket := r.GetByFramework(model.FrameworkNode)
	if len(bucket) != 2 {
		t.Fatalf("expected 2 generators for node, got %d", len(bucket))
	}
	if bucket[0].Descriptor().ID != "node-main" || bucket[1].Descriptor().ID != "node-alt" {
		t.Errorf("framework bucket out of registration order: %q, %q",
			bucket[0].Descriptor().ID, bucket[1].Descriptor().ID)
	}
}

// TestRegistry_Unregister tests removal from both lookup structures
func TestRegistry_Unregister(t *testing.T) {
	r := NewRegistry()
	r.Register(testGenerator("alpha", model.FrameworkVue))

	if !r.Unregister("alpha") {
		t.Error("expected Unregister to report removal")
	}
	if r.Unregister("alpha") {
		t.Error("expected second Unregister to report nothing removed")
	}
	if _, ok := r.Get("alpha"); ok {
		t.Error("generator still resolvable by id after Unregister")
	}
	if _, ok := r.GetPrimary(model.FrameworkVue); ok {
		t.Error("generator still resolvable by framework after Unregister")
	}
	if fws := r.SupportedFrameworks(); len(fws) != 0 {
		t.Errorf("SupportedFrameworks after Unregister = %v, want empty", fws)
	}
}

func TestRegistry_Clear(t *testing.T) {
	r := NewRegistry()
	r.Register(testGenerator("alpha", model.FrameworkVue))
	r.Register(testGenerator("beta", model.FrameworkNode))

	r.Clear()

	if got := len(r.GetAll()); got != 0 {
		t.Errorf("GetAll after Clear returned %d generators, want 0", got)
	}
	if fws := r.SupportedFrameworks(); len(fws) != 0 {
		t.Errorf("SupportedFrameworks after Clear = %v, want empty", fws)
	}

	// the registry stays usable after a reset
	r.Register(testGenerator("gamma", model.FrameworkReact))
	if _, ok := r.Get("gamma"); !ok {
		t.Error("Register after Clear did not take")
	}
}

// TestRegistry_GetAllOrder verifies registration-order iteration
func TestRegistry_GetAllOrder(t *testing.T) {
	r := NewRegistry()
	r.Register(testGenerator("c", model.FrameworkVue))
	r.Register(testGenerator("a", model.FrameworkNode))
	r.Register(testGenerator("b", model.FrameworkReact))

	want := []string{"c", "a", "b"}
	descs := r.GetAllMetadata()
	if len(descs) != len(want) {
		t.Fatalf("GetAllMetadata returned %d entries, want %d", len(descs), len(want))
	}
	for i, id := range want {
		if descs[i].ID != id {
			t.Errorf("GetAllMetadata[%d].ID = %q, want %q", i, descs[i].ID, id)
		}
	}
}

// TestRegistry_SupportedFrameworksCanonicalOrder verifies canonical ordering
// regardless of registration order
func TestRegistry_SupportedFrameworksCanonicalOrder(t *testing.T) {
	r := NewRegistry()
	r.Register(testGenerator("node", model.FrameworkNode))
	r.Register(testGenerator("react", model.FrameworkReact))

	got := r.SupportedFrameworks()
	want := []model.Framework{model.FrameworkReact, model.FrameworkNode}
	if len(got) != len(want) {
		t.Fatalf("SupportedFrameworks = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SupportedFrameworks[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

// TestRegisterDefaults wires the five built-in generators
func TestRegisterDefaults(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	if got := len(r.GetAll()); got != 5 {
		t.Fatalf("expected 5 built-in generators, got %d", got)
	}
	for _, fw := range model.Frameworks() {
		if _, ok := r.GetPrimary(fw); !ok {
			t.Errorf("no primary generator for framework %s", fw)
		}
	}
}
