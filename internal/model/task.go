package model

// Task is the domain model for a todo entry.
// Two fields only; the store rejects files carrying anything else.
type Task struct {
	Description string `json:"description"`
	IsCompleted bool   `json:"is_completed"`
}

const (
	markerDone    = "[✓]"
	markerPending = "[ ]"
)

func NewTask(description string, isCompleted bool) Task {
	return Task{Description: description, IsCompleted: isCompleted}
}

// Toggle flips the completion flag in place.
func (t *Task) Toggle() {
	t.IsCompleted = !t.IsCompleted
}

// Marker is the checkbox prefix used by String.
func (t Task) Marker() string {
	if t.IsCompleted {
		return markerDone
	}
	return markerPending
}

// String renders the task as "[✓] text" or "[ ] text".
func (t Task) String() string {
	return t.Marker() + " " + t.Description
}

// Add appends a new task to tasks and returns the grown slice.
func Add(tasks []Task, description string, isCompleted bool) []Task {
	return append(tasks, NewTask(description, isCompleted))
}

// Stats counts completed and pending tasks.
func Stats(tasks []Task) (done, pending int) {
	for _, t := range tasks {
		if t.IsCompleted {
			done++
		} else {
			pending++
		}
	}
	return
}
