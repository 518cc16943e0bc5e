package tokens

// Mapped holds component-scoped tokens copied from Alias.
type Mapped struct {
	Color   Table
	Spacing Table
}

// NewMapped builds the component tier from a.
func NewMapped(a Alias) (Mapped, error) {
	refs := newReferences()

	mapped := Mapped{
		Color: NewTable(
			Entry{Key: "input-field/foreground", Value: refs.take("mapped.color.input-field/foreground", a.Color.Foreground, "alias.color.foreground", "primary")},
			Entry{Key: "panel/level1", Value: refs.take("mapped.color.panel/level1", a.Color.Background, "alias.color.background", "secondary")},
			Entry{Key: "surface", Value: refs.take("mapped.color.surface", a.Color.Background, "alias.color.background", "secondary")},
		),
		// reserved for component spacing; no entries yet
		Spacing: NewTable(),
	}

	if err := refs.err(); err != nil {
		return Mapped{}, err
	}
	return mapped, nil
}

func (m Mapped) group() *Group {
	return newGroup().
		set("color", m.Color.group()).
		set("spacing", m.Spacing.group())
}
