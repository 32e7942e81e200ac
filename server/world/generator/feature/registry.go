package feature

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/df-mc/spaghettitrees/server/world/generator/rand"
	"github.com/google/uuid"
)

var (
	// ErrFrozen is returned when registering into a Registry that was frozen.
	ErrFrozen = errors.New("registry is frozen")
	// ErrDuplicate is returned when an identifier is registered twice.
	ErrDuplicate = errors.New("identifier already registered")
	// ErrUnknownFeature is returned when a reference does not point to a
	// feature of the registry.
	ErrUnknownFeature = errors.New("unknown feature")
	// ErrUnknownTable is returned when resolving a slot without a table.
	ErrUnknownTable = errors.New("unknown vegetation table")
)

// refNamespace is the namespace of the name based UUIDs of references.
var refNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/df-mc/spaghettitrees"))

// Ref is an opaque reference to a feature or table registered in a Registry.
type Ref struct {
	ID   Identifier
	UUID uuid.UUID
}

// Zero reports if the reference is unset.
func (r Ref) Zero() bool {
	return r.ID.Zero()
}

// String ...
func (r Ref) String() string {
	return r.ID.String()
}

func newRef(id Identifier) Ref {
	return Ref{ID: id, UUID: uuid.NewSHA1(refNamespace, []byte(id.String()))}
}

// Config holds the settings of a Registry.
type Config struct {
	// Log is the Logger registrations are reported to. If nil, slog.Default()
	// is used.
	Log *slog.Logger
	// Namespace is used for identifiers registered without a namespace. It
	// defaults to spaghettitrees.
	Namespace string
}

// New creates an empty Registry using the Config.
func (conf Config) New() *Registry {
	if conf.Log == nil {
		conf.Log = slog.Default()
	}
	if conf.Namespace == "" {
		conf.Namespace = "spaghettitrees"
	}
	return &Registry{
		conf:       conf,
		features:   make(map[Identifier]registration),
		archetypes: make(map[Identifier]Archetype),
		tables:     make(map[Identifier]tableRegistration),
	}
}

type registration struct {
	ref     Ref
	feature Feature
}

type tableRegistration struct {
	ref   Ref
	table Table
}

// Registry holds the tree archetypes, host features and vegetation tables of
// a world generator. Registration happens during initialisation only, from a
// single goroutine. Once Freeze is called, the Registry is read-only and may
// be used by any number of goroutines at the same time.
type Registry struct {
	conf   Config
	frozen atomic.Bool

	features   map[Identifier]registration
	archetypes map[Identifier]Archetype
	tables     map[Identifier]tableRegistration
}

// Namespace returns the namespace used for identifiers without one.
func (reg *Registry) Namespace() string {
	return reg.conf.Namespace
}

// RegisterArchetype registers a tree archetype under the identifier passed and
// returns a reference to it.
func (reg *Registry) RegisterArchetype(name string, a Archetype) (Ref, error) {
	if a.trunkPlacer == nil || a.foliagePlacer == nil {
		return Ref{}, fmt.Errorf("register archetype %v: %w: archetype was not built", name, ErrInvalidArchetype)
	}
	ref, err := reg.registerFeature(name, a)
	if err != nil {
		return Ref{}, fmt.Errorf("register archetype %v: %w", name, err)
	}
	reg.archetypes[ref.ID] = a
	reg.conf.Log.Debug("Registered tree archetype.", "id", ref.ID, "dead", a.dead, "decorators", len(a.decorators))
	return ref, nil
}

// RegisterFeature registers a feature supplied by the host, such as a vanilla
// tree, so that vegetation tables may refer to it.
func (reg *Registry) RegisterFeature(name string, f Feature) (Ref, error) {
	if f == nil {
		return Ref{}, fmt.Errorf("register feature %v: feature is nil", name)
	}
	ref, err := reg.registerFeature(name, f)
	if err != nil {
		return Ref{}, fmt.Errorf("register feature %v: %w", name, err)
	}
	reg.conf.Log.Debug("Registered host feature.", "id", ref.ID)
	return ref, nil
}

func (reg *Registry) registerFeature(name string, f Feature) (Ref, error) {
	if reg.frozen.Load() {
		return Ref{}, ErrFrozen
	}
	id, err := ParseIdentifier(name, reg.conf.Namespace)
	if err != nil {
		return Ref{}, err
	}
	if _, ok := reg.features[id]; ok {
		return Ref{}, ErrDuplicate
	}
	ref := newRef(id)
	reg.features[id] = registration{ref: ref, feature: f}
	return ref, nil
}

// RegisterTable registers the vegetation table of a slot. Every feature the
// table refers to must already be registered.
func (reg *Registry) RegisterTable(slot string, t Table) (Ref, error) {
	if reg.frozen.Load() {
		return Ref{}, fmt.Errorf("register table %v: %w", slot, ErrFrozen)
	}
	id, err := ParseIdentifier(slot, reg.conf.Namespace)
	if err != nil {
		return Ref{}, fmt.Errorf("register table %v: %w", slot, err)
	}
	if _, ok := reg.tables[id]; ok {
		return Ref{}, fmt.Errorf("register table %v: %w", slot, ErrDuplicate)
	}
	if t.fallback.Zero() {
		return Ref{}, fmt.Errorf("register table %v: %w: table was not composed", slot, ErrInvalidTable)
	}
	for _, ref := range t.References() {
		if _, ok := reg.Feature(ref); !ok {
			return Ref{}, fmt.Errorf("register table %v: %w: %v", slot, ErrUnknownFeature, ref)
		}
	}
	ref := newRef(id)
	reg.tables[id] = tableRegistration{ref: ref, table: t}
	reg.conf.Log.Debug("Registered vegetation table.", "slot", id, "entries", len(t.entries), "fallback", t.fallback.ID)
	return ref, nil
}

// Freeze makes the Registry read-only. Registering afterwards fails with
// ErrFrozen.
func (reg *Registry) Freeze() {
	if reg.frozen.Swap(true) {
		return
	}
	reg.conf.Log.Info("Feature registry frozen.", "features", len(reg.features), "archetypes", len(reg.archetypes), "tables", len(reg.tables))
}

// Frozen reports if Freeze was called.
func (reg *Registry) Frozen() bool {
	return reg.frozen.Load()
}

// Feature returns the feature a reference points to.
func (reg *Registry) Feature(ref Ref) (Feature, bool) {
	r, ok := reg.features[ref.ID]
	if !ok || r.ref.UUID != ref.UUID {
		return nil, false
	}
	return r.feature, true
}

// Lookup returns the reference of a registered feature by its name.
func (reg *Registry) Lookup(name string) (Ref, bool) {
	id, err := ParseIdentifier(name, reg.conf.Namespace)
	if err != nil {
		return Ref{}, false
	}
	r, ok := reg.features[id]
	return r.ref, ok
}

// Archetype returns the archetype registered under the name passed.
func (reg *Registry) Archetype(name string) (Archetype, bool) {
	id, err := ParseIdentifier(name, reg.conf.Namespace)
	if err != nil {
		return Archetype{}, false
	}
	a, ok := reg.archetypes[id]
	return a, ok
}

// Table returns the vegetation table of the slot passed.
func (reg *Registry) Table(slot string) (Table, bool) {
	id, err := ParseIdentifier(slot, reg.conf.Namespace)
	if err != nil {
		return Table{}, false
	}
	t, ok := reg.tables[id]
	return t.table, ok
}

// Resolve performs a weighted draw on the table of the slot passed and returns
// the selected feature.
func (reg *Registry) Resolve(slot string, r rand.Source) (Feature, Ref, error) {
	t, ok := reg.Table(slot)
	if !ok {
		return nil, Ref{}, fmt.Errorf("resolve %v: %w", slot, ErrUnknownTable)
	}
	ref := t.Resolve(r)
	f, ok := reg.Feature(ref)
	if !ok {
		return nil, ref, fmt.Errorf("resolve %v: %w: %v", slot, ErrUnknownFeature, ref)
	}
	return f, ref, nil
}

// Archetypes returns references to every archetype, sorted by identifier.
func (reg *Registry) Archetypes() []Ref {
	refs := make([]Ref, 0, len(reg.archetypes))
	for id := range reg.archetypes {
		refs = append(refs, reg.features[id].ref)
	}
	return sortRefs(refs)
}

// Features returns references to every feature, archetypes included, sorted by
// identifier.
func (reg *Registry) Features() []Ref {
	refs := make([]Ref, 0, len(reg.features))
	for _, r := range reg.features {
		refs = append(refs, r.ref)
	}
	return sortRefs(refs)
}

// Tables returns references to every vegetation table, sorted by slot.
func (reg *Registry) Tables() []Ref {
	refs := make([]Ref, 0, len(reg.tables))
	for _, t := range reg.tables {
		refs = append(refs, t.ref)
	}
	return sortRefs(refs)
}

func sortRefs(refs []Ref) []Ref {
	slices.SortFunc(refs, func(a, b Ref) int {
		return strings.Compare(a.ID.String(), b.ID.String())
	})
	return refs
}
