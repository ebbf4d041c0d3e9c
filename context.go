package sdui

// Accessor extracts one named field from a record. The host registers one
// per field name its schemas reference; the engine never reaches into record
// types directly. Returned values are type-switched at the point of use, so
// an accessor may yield string, bool, float64, int, or time.Time.
type Accessor func(Record) any

// ActionTable maps schema action ids to host callbacks. Actions receive the
// record current at the triggering node, nil at screen scope. Reorder, when
// set, is handed to list views so drag reordering can mutate the host's
// record order.
type ActionTable struct {
	byName  map[string]func(Record)
	Reorder func(from, to int)
}

// NewActionTable creates an empty action table.
func NewActionTable() *ActionTable {
	return &ActionTable{byName: make(map[string]func(Record))}
}

// Register binds an action id to a callback, replacing any previous binding.
func (t *ActionTable) Register(name string, fn func(Record)) *ActionTable {
	t.byName[name] = fn
	return t
}

// Lookup returns the callback for an action id.
func (t *ActionTable) Lookup(name string) (func(Record), bool) {
	fn, ok := t.byName[name]
	return fn, ok
}

// Context is the runtime environment a screen renders against: the record
// collection, the record currently in scope, the mutable binding state, and
// the host's accessor and action tables. Contexts are passed by value; the
// fields are shared references, so derived contexts see the same stores.
type Context struct {
	Records   *RecordList
	Current   Record
	Bindings  *BindingStore
	Accessors map[string]Accessor
	Actions   *ActionTable
	Palette   *Palette
}

// NewContext creates a context with empty collections and the default
// palette. Hosts fill in records, accessors, and actions before rendering.
func NewContext() Context {
	return Context{
		Records:   NewRecordList(),
		Bindings:  NewBindingStore(),
		Accessors: make(map[string]Accessor),
		Actions:   NewActionTable(),
	}
}

// WithCurrentRecord derives a context scoped to the given record. Only the
// current record changes; records, bindings, accessors, and actions are the
// same shared instances. List rendering calls this once per row.
func (c Context) WithCurrentRecord(r Record) Context {
	c.Current = r
	return c
}

// accessorValue resolves a field against the current record, nil when no
// record is in scope or no accessor is registered for the field.
func (c Context) accessorValue(field string) any {
	if c.Current == nil || c.Accessors == nil {
		return nil
	}
	fn, ok := c.Accessors[field]
	if !ok {
		return nil
	}
	return fn(c.Current)
}

// palette returns the active palette, falling back to the default.
func (c Context) palette() *Palette {
	if c.Palette != nil {
		return c.Palette
	}
	return PaletteDefault
}
