package domain

// Unit is a course being tracked. Units are never mutated once created.
type Unit struct {
	ID   string `validate:"notblank"`
	Name string `validate:"notblank"`
}

func NewUnit(id, name string) (*Unit, error) {
	unit := &Unit{ID: id, Name: name}
	if err := unit.Validate(); err != nil {
		return nil, err
	}
	return unit, nil
}

func (u Unit) Validate() error {
	return validateEntity("unit", u)
}

func (u Unit) Equal(other Unit) bool {
	return u.ID == other.ID
}
