package ecs

import (
	"reflect"
	"sort"
)

// EntityID is the unique identifier of an entity. IDs increase monotonically,
// so sorting them yields creation order.
type EntityID uint64

// EntityManager owns every entity and its components for one level.
//
// Removal is deferred: DestroyEntity only marks an entity, and the entity
// stays readable until RemoveMarkedEntities compacts the store at the end of
// the frame. Systems that iterate while others destroy should skip entities
// for which IsMarked reports true.
type EntityManager struct {
	nextID uint64
	// EntityID -> component type -> component instance
	components map[EntityID]map[reflect.Type]interface{}
	// entities marked for removal, in marking order
	entitiesToDestroy []EntityID
	marked            map[EntityID]struct{}
}

// NewEntityManager creates an empty EntityManager.
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1, // 0 is reserved as the invalid ID
		components:        make(map[EntityID]map[reflect.Type]interface{}),
		entitiesToDestroy: make([]EntityID, 0),
		marked:            make(map[EntityID]struct{}),
	}
}

// CreateEntity creates a new entity and returns its ID.
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]interface{})
	return id
}

// DestroyEntity marks an entity for removal. Marking an entity twice, or
// marking one that no longer exists, is a no-op.
func (em *EntityManager) DestroyEntity(id EntityID) {
	if _, exists := em.components[id]; !exists {
		return
	}
	if _, already := em.marked[id]; already {
		return
	}
	em.marked[id] = struct{}{}
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// IsMarked reports whether the entity is pending removal.
func (em *EntityManager) IsMarked(id EntityID) bool {
	_, ok := em.marked[id]
	return ok
}

// IsAlive reports whether the entity exists and is not pending removal.
func (em *EntityManager) IsAlive(id EntityID) bool {
	if _, exists := em.components[id]; !exists {
		return false
	}
	return !em.IsMarked(id)
}

// AddComponent attaches a component to an entity, replacing any component of
// the same type.
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	componentType := reflect.TypeOf(component)
	if compMap, exists := em.components[id]; exists {
		compMap[componentType] = component
	}
}

// RemoveComponent detaches the component of the given type.
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if compMap, exists := em.components[id]; exists {
		delete(compMap, componentType)
	}
}

// GetComponent returns the component of the given type.
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (interface{}, bool) {
	if compMap, exists := em.components[id]; exists {
		if comp, found := compMap[componentType]; found {
			return comp, true
		}
	}
	return nil, false
}

// HasComponent reports whether the entity carries a component of the given type.
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	if compMap, exists := em.components[id]; exists {
		_, found := compMap[componentType]
		return found
	}
	return false
}

// RemoveMarkedEntities compacts the store by deleting every marked entity.
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.entitiesToDestroy {
		delete(em.components, id)
		delete(em.marked, id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0]
}

// Clear removes every entity at once. IDs keep increasing across clears so a
// stale ID held by a caller never aliases a new entity.
func (em *EntityManager) Clear() {
	em.components = make(map[EntityID]map[reflect.Type]interface{})
	em.marked = make(map[EntityID]struct{})
	em.entitiesToDestroy = em.entitiesToDestroy[:0]
}

// Count returns the number of stored entities, including marked ones.
func (em *EntityManager) Count() int {
	return len(em.components)
}

// GetEntitiesWith returns, in creation order, every entity that carries all
// of the given component types. Marked entities are included; the result is a
// snapshot, so destroying entities while ranging over it is safe.
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for id, compMap := range em.components {
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}
