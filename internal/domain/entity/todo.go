package entity

// Todo represents a single todo item.
// ID is assigned by the store and never changes once set.
type Todo struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// TodoPatch describes a partial update to a Todo.
// A nil field means the corresponding value is left unchanged.
type TodoPatch struct {
	Title     *string
	Completed *bool
}

// IsEmpty reports whether the patch carries no changes.
func (p TodoPatch) IsEmpty() bool {
	return p.Title == nil && p.Completed == nil
}

// Apply returns a copy of t with the non-nil patch fields applied.
func (p TodoPatch) Apply(t Todo) Todo {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	return t
}
