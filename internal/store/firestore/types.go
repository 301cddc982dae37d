package firestore

import (
	"time"

	"cloud.google.com/go/firestore"

	"github.com/taskdeck/taskdeck/internal/task"
)

// defaultCollection is where task documents live unless configured.
const defaultCollection = "tasks"

// fallbackLayouts are tried for due dates stored as strings by older
// clients that wrote local datetimes instead of RFC 3339.
var fallbackLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02",
}

// docData is the wire shape of a task document.
type docData struct {
	Title       string    `firestore:"title"`
	Description string    `firestore:"description"`
	Status      string    `firestore:"status"`
	DueDate     any       `firestore:"dueDate"`
	UserID      string    `firestore:"userId"`
	CreatedAt   time.Time `firestore:"createdAt"`
	UpdatedAt   time.Time `firestore:"updatedAt"`
}

func newDocData(in task.Input, uid string, now time.Time) docData {
	d := docData{
		Title:       in.Title,
		Description: in.Description,
		Status:      string(in.Status),
		UserID:      uid,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.DueDate != nil {
		d.DueDate = *in.DueDate
	}
	return d
}

// toTask converts a document into the domain model. Due values that fail
// to parse are preserved verbatim so the UI can degrade to an invalid-date
// marker instead of dropping the task.
func toTask(id string, d docData) task.Task {
	t := task.Task{
		ID:          id,
		Title:       d.Title,
		Description: d.Description,
		Status:      task.Status(d.Status),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
		OwnerID:     d.UserID,
	}
	if !t.Status.Valid() {
		t.Status = task.StatusPending
	}
	if t.UpdatedAt.Before(t.CreatedAt) {
		t.UpdatedAt = t.CreatedAt
	}

	switch v := d.DueDate.(type) {
	case nil:
	case time.Time:
		due := v
		t.DueDate = &due
	case string:
		if v == "" {
			break
		}
		if due, ok := parseDue(v); ok {
			t.DueDate = &due
		} else {
			t.DueDateRaw = v
		}
	default:
		// unexpected type in the document; keep the task visible
		t.DueDateRaw = "unsupported"
	}
	return t
}

func parseDue(s string) (time.Time, bool) {
	for _, layout := range fallbackLayouts {
		if due, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return due, true
		}
	}
	return time.Time{}, false
}

// updatesFor translates a change set to field updates. The updatedAt field
// is always touched so every write advances the timestamp.
func updatesFor(ch task.Changes, now time.Time) []firestore.Update {
	var updates []firestore.Update
	if ch.Title != nil {
		updates = append(updates, firestore.Update{Path: "title", Value: *ch.Title})
	}
	if ch.Description != nil {
		updates = append(updates, firestore.Update{Path: "description", Value: *ch.Description})
	}
	if ch.Status != nil {
		updates = append(updates, firestore.Update{Path: "status", Value: string(*ch.Status)})
	}
	if ch.ClearDueDate {
		updates = append(updates, firestore.Update{Path: "dueDate", Value: firestore.Delete})
	} else if ch.DueDate != nil {
		updates = append(updates, firestore.Update{Path: "dueDate", Value: *ch.DueDate})
	}
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: now})
	return updates
}
