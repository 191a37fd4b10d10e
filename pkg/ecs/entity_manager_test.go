package ecs

import (
	"reflect"
	"testing"
)

type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testPositionComponent{X: 100, Y: 200})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testPositionComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}
	retrieved := comp.(*testPositionComponent)
	if retrieved.X != 100 || retrieved.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", retrieved.X, retrieved.Y)
	}
}

func TestGenericGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testVelocityComponent{VX: 3, VY: -1})

	vel, ok := GetComponent[*testVelocityComponent](em, id)
	if !ok {
		t.Fatal("expected velocity component")
	}
	if vel.VX != 3 || vel.VY != -1 {
		t.Errorf("unexpected velocity %+v", vel)
	}

	if _, ok := GetComponent[*testPositionComponent](em, id); ok {
		t.Error("position component should not be found")
	}
	if !HasComponent[*testVelocityComponent](em, id) {
		t.Error("HasComponent should report the velocity component")
	}
}

func TestDestroyEntityIsDeferred(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{})

	em.DestroyEntity(id)

	if !em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Entity should still exist before cleanup")
	}
	if !em.IsMarked(id) {
		t.Error("Entity should be marked")
	}
	if em.IsAlive(id) {
		t.Error("Marked entity should not be alive")
	}

	em.RemoveMarkedEntities()
	if em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Entity should be removed after cleanup")
	}
	if em.IsMarked(id) {
		t.Error("Removed entity should no longer be marked")
	}
}

func TestDestroyEntityTwiceIsNoop(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.DestroyEntity(id)
	em.DestroyEntity(id)
	if len(em.entitiesToDestroy) != 1 {
		t.Errorf("expected a single pending removal, got %d", len(em.entitiesToDestroy))
	}

	em.RemoveMarkedEntities()
	em.DestroyEntity(id)
	if len(em.entitiesToDestroy) != 0 {
		t.Error("destroying a removed entity should be ignored")
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	em.AddComponent(id1, &testPositionComponent{})
	em.AddComponent(id1, &testVelocityComponent{})

	id2 := em.CreateEntity()
	em.AddComponent(id2, &testPositionComponent{})

	id3 := em.CreateEntity()
	em.AddComponent(id3, &testVelocityComponent{})

	entities := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	if len(entities) != 1 || entities[0] != id1 {
		t.Errorf("Expected only id1, got %v", entities)
	}

	posEntities := GetEntitiesWith1[*testPositionComponent](em)
	if len(posEntities) != 2 {
		t.Errorf("Expected 2 entities with Position component, got %d", len(posEntities))
	}
}

func TestGetEntitiesWithCreationOrder(t *testing.T) {
	em := NewEntityManager()
	want := make([]EntityID, 0, 50)
	for i := 0; i < 50; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testPositionComponent{X: float64(i)})
		want = append(want, id)
	}

	got := GetEntitiesWith1[*testPositionComponent](em)
	if len(got) != len(want) {
		t.Fatalf("expected %d entities, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestFirstWithSkipsMarked(t *testing.T) {
	em := NewEntityManager()
	if FirstWith[*testPositionComponent](em) != 0 {
		t.Error("empty manager should return 0")
	}

	id1 := em.CreateEntity()
	em.AddComponent(id1, &testPositionComponent{})
	id2 := em.CreateEntity()
	em.AddComponent(id2, &testPositionComponent{})

	em.DestroyEntity(id1)
	if got := FirstWith[*testPositionComponent](em); got != id2 {
		t.Errorf("expected %d, got %d", id2, got)
	}
}

func TestClearKeepsIDsMonotonic(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	em.DestroyEntity(id1)
	em.Clear()

	if em.Count() != 0 {
		t.Errorf("expected empty store, got %d", em.Count())
	}
	if em.IsMarked(id1) {
		t.Error("Clear should drop pending removals")
	}
	if id2 := em.CreateEntity(); id2 <= id1 {
		t.Errorf("IDs should keep increasing after Clear, got %d after %d", id2, id1)
	}
}

func TestDestroyMultipleEntities(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	id2 := em.CreateEntity()
	id3 := em.CreateEntity()

	em.AddComponent(id1, &testPositionComponent{})
	em.AddComponent(id2, &testPositionComponent{})
	em.AddComponent(id3, &testPositionComponent{})

	em.DestroyEntity(id1)
	em.DestroyEntity(id3)
	em.RemoveMarkedEntities()

	if em.HasComponent(id1, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("id1 should be removed")
	}
	if !em.HasComponent(id2, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("id2 should still exist")
	}
	if em.HasComponent(id3, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("id3 should be removed")
	}
}

func BenchmarkGetEntitiesWith2(b *testing.B) {
	em := NewEntityManager()
	for i := 0; i < 500; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testPositionComponent{})
		if i%2 == 0 {
			em.AddComponent(id, &testVelocityComponent{})
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em)
	}
}
