package domain

// TaskKey identifies a task. Two tasks sharing an ID under different units
// are distinct.
type TaskKey struct {
	ID     string
	UnitID string
}

// Task is a gradable piece of work owned by exactly one unit.
type Task struct {
	ID          string `validate:"notblank"`
	Name        string `validate:"notblank"`
	Description string
	UnitID      string `validate:"notblank"`
	// TargetGrade is optional; see SameGrade for how it is matched.
	TargetGrade string
	Status      Status
}

// NewTask builds a task in StatusNotStarted.
func NewTask(id, name, description, unitID, targetGrade string) (*Task, error) {
	task := &Task{
		ID:          id,
		Name:        name,
		Description: description,
		UnitID:      unitID,
		TargetGrade: targetGrade,
		Status:      StatusNotStarted,
	}
	if err := task.Validate(); err != nil {
		return nil, err
	}
	return task, nil
}

func (t Task) Validate() error {
	return validateEntity("task", t)
}

func (t Task) Key() TaskKey {
	return TaskKey{ID: t.ID, UnitID: t.UnitID}
}

func (t Task) Equal(other Task) bool {
	return t.Key() == other.Key()
}

func (t Task) HasTargetGrade(grade string) bool {
	return SameGrade(t.TargetGrade, grade)
}
