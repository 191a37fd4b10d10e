package ecs

import "reflect"

// typeOf returns the reflect.Type of T without needing a value.
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// GetComponent returns the component of type T attached to the entity.
//
// T is normally a pointer type, e.g. ecs.GetComponent[*components.HealthComponent](em, id).
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, ok := em.GetComponent(id, typeOf[T]())
	if !ok {
		return zero, false
	}
	typed, ok := comp.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// HasComponent reports whether the entity carries a component of type T.
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	return em.HasComponent(id, typeOf[T]())
}

// GetEntitiesWith1 returns entities carrying T1, in creation order.
func GetEntitiesWith1[T1 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1]())
}

// GetEntitiesWith2 returns entities carrying T1 and T2, in creation order.
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1](), typeOf[T2]())
}

// GetEntitiesWith3 returns entities carrying T1, T2 and T3, in creation order.
func GetEntitiesWith3[T1, T2, T3 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1](), typeOf[T2](), typeOf[T3]())
}

// FirstWith returns the oldest live entity carrying T, or 0 when none exists.
// Useful for singletons such as the player ship and the boss.
func FirstWith[T any](em *EntityManager) EntityID {
	for _, id := range GetEntitiesWith1[T](em) {
		if !em.IsMarked(id) {
			return id
		}
	}
	return 0
}
