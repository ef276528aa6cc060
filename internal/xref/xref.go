// Package xref resolves derived relationships between registry objects
// into identifiers of other registries.
package xref

import "github.com/mvp-joe/datagen/internal/model"

// Relation derives the related object of a source. ok is false when the
// source has no such relation.
type Relation[S, T any] func(src S) (T, bool)

// Resolve returns the identifier, in target, of the object rel derives
// from src. The result is absent when the relation yields nothing, when it
// yields target's "none" sentinel, or when target does not contain it.
func Resolve[S any, T comparable](src S, rel Relation[S, T], target *model.Registry[T]) (model.Identifier, bool) {
	v, ok := rel(src)
	if !ok || target.IsDefault(v) {
		return model.Identifier{}, false
	}
	return target.Key(v)
}

// ResolveString is Resolve rendered in canonical string form.
func ResolveString[S any, T comparable](src S, rel Relation[S, T], target *model.Registry[T]) (string, bool) {
	id, ok := Resolve(src, rel, target)
	if !ok {
		return "", false
	}
	return id.String(), true
}

func present[T any](v *T) (*T, bool) {
	return v, v != nil
}

// ItemForBlock relates a block to the item that places it.
func ItemForBlock(m *model.Model) Relation[*model.Block, *model.Item] {
	return func(b *model.Block) (*model.Item, bool) {
		return present(m.ItemForBlock(b))
	}
}

// BlockForItem relates an item to the block it places.
func BlockForItem(m *model.Model) Relation[*model.Item, *model.Block] {
	return func(it *model.Item) (*model.Block, bool) {
		return present(m.BlockForItem(it))
	}
}

// FluidBucket relates a fluid to its bucket item.
func FluidBucket(f *model.Fluid) (*model.Item, bool) {
	return present(f.Bucket)
}

// SpawnEggType relates a spawn egg item to the entity type it spawns.
func SpawnEggType(it *model.Item) (*model.EntityType, bool) {
	return present(it.SpawnEgg)
}

// EatingSound relates an item to the sound played while eating it.
func EatingSound(it *model.Item) (*model.SoundEvent, bool) {
	return present(it.EatingSound)
}

// DrinkingSound relates an item to the sound played while drinking it.
func DrinkingSound(it *model.Item) (*model.SoundEvent, bool) {
	return present(it.DrinkingSound)
}

// WorkSound relates a villager profession to its work station sound.
func WorkSound(p *model.VillagerProfession) (*model.SoundEvent, bool) {
	return present(p.WorkSound)
}

// EffectOf relates an applied effect to its effect type.
func EffectOf(e model.MobEffectInstance) (*model.MobEffect, bool) {
	return present(e.Effect)
}
