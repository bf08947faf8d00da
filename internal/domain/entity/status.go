package entity

import (
	"fmt"

	"todo-api/pkg/util/numberutils"
)

// Status is the lifecycle stage of a todo, persisted as the todo_status id.
type Status int

const (
	StatusPending    Status = 1
	StatusInProgress Status = 2
	StatusCompleted  Status = 3
)

var statusNames = map[Status]string{
	StatusPending:    "Pending",
	StatusInProgress: "In Progress",
	StatusCompleted:  "Completed",
}

// Statuses lists every status in display order.
func Statuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusCompleted}
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

func (s Status) IsValid() bool {
	return numberutils.IsIntInRange(int(s), int(StatusPending), int(StatusCompleted))
}

// ParseStatus converts a todo_status id into a Status.
func ParseStatus(id int) (Status, error) {
	status := Status(id)
	if !status.IsValid() {
		return 0, fmt.Errorf("unknown status id %d", id)
	}
	return status, nil
}
