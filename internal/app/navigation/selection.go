package navigation

// SelectionKind tags the variant held by a Selection
type SelectionKind uint8

const (
	SelectionNone SelectionKind = iota
	SelectionThesis
	SelectionGroup
)

func (k SelectionKind) String() string {
	switch k {
	case SelectionThesis:
		return "thesis"
	case SelectionGroup:
		return "group"
	}
	return "none"
}

// Selection is the entity a detail page renders: nothing, a thesis or a group.
// The zero value is the empty selection.
type Selection struct {
	kind SelectionKind
	id   string
}

// NoSelection returns the empty selection
func NoSelection() Selection {
	return Selection{}
}

// ThesisSelection selects the thesis with the given id
func ThesisSelection(id string) Selection {
	return Selection{kind: SelectionThesis, id: id}
}

// GroupSelection selects the group with the given id
func GroupSelection(id string) Selection {
	return Selection{kind: SelectionGroup, id: id}
}

// Kind returns the selection variant
func (s Selection) Kind() SelectionKind {
	return s.kind
}

// ID returns the selected id, empty for NoSelection
func (s Selection) ID() string {
	return s.id
}

// ThesisID returns the selected thesis id when a thesis is selected
func (s Selection) ThesisID() (string, bool) {
	if s.kind != SelectionThesis {
		return "", false
	}
	return s.id, true
}

// GroupID returns the selected group id when a group is selected
func (s Selection) GroupID() (string, bool) {
	if s.kind != SelectionGroup {
		return "", false
	}
	return s.id, true
}

// satisfies reports whether the selection can back the given page
func (s Selection) satisfies(p Page) bool {
	switch p {
	case PageThesisDetail:
		return s.kind == SelectionThesis
	case PageGroupDetail:
		return s.kind == SelectionGroup
	}
	return true
}
