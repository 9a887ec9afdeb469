package todo

import (
	"fmt"
	"strings"
	"time"
)

// Add creates a todo from the task text and persists the document.
// Hashtags in the text become tags, and an empty priority selects
// PriorityMedium. Returns the updated todo list.
func (s *Store) Add(task string, priority Priority, persistent bool) ([]Todo, error) {
	task = strings.TrimSpace(task)
	if err := ValidateTask(task); err != nil {
		return nil, err
	}

	if priority == "" {
		priority = PriorityMedium
	}
	if err := ValidatePriority(priority); err != nil {
		return nil, err
	}

	var todos []Todo
	err := s.Update(func(doc *Document) error {
		item := Todo{
			ID:         nextID(doc.Todos),
			Task:       task,
			Priority:   priority,
			Persistent: persistent,
			CreatedAt:  time.Now(),
			Tags:       ExtractTags(task),
		}
		doc.Todos = append(doc.Todos, item)
		todos = doc.Todos
		return nil
	})
	if err != nil {
		return nil, err
	}

	return todos, nil
}

// Toggle flips a todo's completed state. Completing sets the completion
// timestamp; un-completing clears it. Returns the updated todo list.
func (s *Store) Toggle(id int64) ([]Todo, error) {
	var todos []Todo
	err := s.Update(func(doc *Document) error {
		for i := range doc.Todos {
			if doc.Todos[i].ID != id {
				continue
			}

			item := &doc.Todos[i]
			item.Completed = !item.Completed
			if item.Completed {
				now := time.Now()
				item.CompletedAt = &now
			} else {
				item.CompletedAt = nil
			}

			todos = doc.Todos
			return nil
		}
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	})
	if err != nil {
		return nil, err
	}

	return todos, nil
}

// Remove deletes a todo by ID and persists the document. Returns the
// updated todo list.
func (s *Store) Remove(id int64) ([]Todo, error) {
	var todos []Todo
	err := s.Update(func(doc *Document) error {
		for i := range doc.Todos {
			if doc.Todos[i].ID != id {
				continue
			}

			doc.Todos = append(doc.Todos[:i], doc.Todos[i+1:]...)
			todos = doc.Todos
			return nil
		}
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	})
	if err != nil {
		return nil, err
	}

	return todos, nil
}

// nextID returns one past the highest ID in use, so identifiers stay
// unique for the life of the document without any randomness.
func nextID(todos []Todo) int64 {
	var max int64
	for _, item := range todos {
		if item.ID > max {
			max = item.ID
		}
	}
	return max + 1
}
