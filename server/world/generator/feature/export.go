package feature

import (
	"encoding/json"

	"github.com/cespare/xxhash/v2"
)

// Document is a serialisable snapshot of a Registry.
type Document struct {
	Namespace  string         `json:"namespace" yaml:"namespace"`
	Archetypes []ArchetypeDoc `json:"archetypes" yaml:"archetypes"`
	Features   []FeatureDoc   `json:"host_features" yaml:"host_features"`
	Tables     []TableDoc     `json:"tables" yaml:"tables"`
}

// ArchetypeDoc describes a registered archetype.
type ArchetypeDoc struct {
	ID   string `json:"id" yaml:"id"`
	UUID string `json:"uuid" yaml:"uuid"`
	Spec Spec   `json:"spec" yaml:"spec"`
}

// FeatureDoc describes a registered host feature.
type FeatureDoc struct {
	ID   string `json:"id" yaml:"id"`
	UUID string `json:"uuid" yaml:"uuid"`
}

// TableDoc describes a registered vegetation table.
type TableDoc struct {
	Slot     string     `json:"slot" yaml:"slot"`
	UUID     string     `json:"uuid" yaml:"uuid"`
	Entries  []EntryDoc `json:"entries" yaml:"entries"`
	Fallback string     `json:"fallback" yaml:"fallback"`
}

// EntryDoc describes a single entry of a vegetation table.
type EntryDoc struct {
	Feature string  `json:"feature" yaml:"feature"`
	Chance  float64 `json:"chance" yaml:"chance"`
}

// Export returns a Document describing every registration, sorted by
// identifier.
func (reg *Registry) Export() Document {
	doc := Document{
		Namespace:  reg.conf.Namespace,
		Archetypes: []ArchetypeDoc{},
		Features:   []FeatureDoc{},
		Tables:     []TableDoc{},
	}
	for _, ref := range reg.Features() {
		if a, ok := reg.archetypes[ref.ID]; ok {
			doc.Archetypes = append(doc.Archetypes, ArchetypeDoc{ID: ref.ID.String(), UUID: ref.UUID.String(), Spec: a.Spec()})
			continue
		}
		doc.Features = append(doc.Features, FeatureDoc{ID: ref.ID.String(), UUID: ref.UUID.String()})
	}
	for _, ref := range reg.Tables() {
		t := reg.tables[ref.ID].table
		td := TableDoc{Slot: ref.ID.String(), UUID: ref.UUID.String(), Entries: []EntryDoc{}, Fallback: t.fallback.ID.String()}
		for _, e := range t.entries {
			td.Entries = append(td.Entries, EntryDoc{Feature: e.Feature.ID.String(), Chance: e.Chance})
		}
		doc.Tables = append(doc.Tables, td)
	}
	return doc
}

// Digest returns a hash of the exported registry. Two registries with the same
// registrations have the same digest.
func (reg *Registry) Digest() uint64 {
	b, err := json.Marshal(reg.Export())
	if err != nil {
		panic("feature: marshal export: " + err.Error())
	}
	return xxhash.Sum64(b)
}
