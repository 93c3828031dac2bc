package tasks

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// CompletedMarker prefixes the label of a completed task.
const CompletedMarker = "[Completed] "

// Task is a single to-do entry.
type Task struct {
	ID        uuid.UUID
	Text      string
	Completed bool
}

// Label returns the display text, marked when the task is completed.
func (task Task) Label() string {
	if task.Completed {
		return CompletedMarker + task.Text
	}
	return task.Text
}

// List is an ordered, in-memory task list. Insertion order is display
// order. It is not safe for concurrent use.
type List struct {
	tasks []Task
}

// NewList returns an empty list.
func NewList() *List {
	return &List{}
}

// Add appends a task. Blank text is ignored and reported as false.
func (list *List) Add(text string) (Task, bool) {
	if strings.TrimSpace(text) == "" {
		return Task{}, false
	}
	task := Task{ID: uuid.New(), Text: text}
	list.tasks = append(list.tasks, task)
	return task, true
}

// Complete marks the tasks at indices as completed without reordering.
// Indices refer to the list before the call; out of range indices are
// ignored.
func (list *List) Complete(indices []int) int {
	completed := 0
	for _, index := range list.normalize(indices) {
		if !list.tasks[index].Completed {
			list.tasks[index].Completed = true
			completed++
		}
	}
	return completed
}

// Delete removes the tasks at indices. Indices refer to the list before
// the call; out of range indices are ignored. Removal runs from the
// highest index down so pending indices never shift.
func (list *List) Delete(indices []int) int {
	valid := list.normalize(indices)
	for i := len(valid) - 1; i >= 0; i-- {
		index := valid[i]
		list.tasks = append(list.tasks[:index], list.tasks[index+1:]...)
	}
	return len(valid)
}

// Tasks returns a copy of the tasks in order.
func (list *List) Tasks() []Task {
	return append([]Task(nil), list.tasks...)
}

// Len returns the number of tasks.
func (list *List) Len() int {
	return len(list.tasks)
}

// CompletedCount returns the number of completed tasks.
func (list *List) CompletedCount() int {
	count := 0
	for _, task := range list.tasks {
		if task.Completed {
			count++
		}
	}
	return count
}

// IndexOf returns the current index of the task with id, or -1.
func (list *List) IndexOf(id uuid.UUID) int {
	for index, task := range list.tasks {
		if task.ID == id {
			return index
		}
	}
	return -1
}

// normalize returns the valid, distinct indices in ascending order.
func (list *List) normalize(indices []int) []int {
	seen := make(map[int]struct{}, len(indices))
	valid := make([]int, 0, len(indices))
	for _, index := range indices {
		if index < 0 || index >= len(list.tasks) {
			continue
		}
		if _, ok := seen[index]; ok {
			continue
		}
		seen[index] = struct{}{}
		valid = append(valid, index)
	}
	sort.Ints(valid)
	return valid
}
