// Package firestore implements store.TaskStore on Cloud Firestore. Each
// task is one document in a flat collection, scoped to its owner by a
// userId field.
package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/taskdeck/taskdeck/internal/auth"
	"github.com/taskdeck/taskdeck/internal/store"
	"github.com/taskdeck/taskdeck/internal/task"
)

// Store talks to one Firestore collection of task documents.
type Store struct {
	client     *firestore.Client
	collection string
	now        func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithCollection overrides the collection name.
func WithCollection(name string) Option {
	return func(s *Store) {
		if name != "" {
			s.collection = name
		}
	}
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New wraps an existing Firestore client.
func New(client *firestore.Client, opts ...Option) *Store {
	s := &Store{
		client:     client,
		collection: defaultCollection,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewFromApp obtains a Firestore client from an initialized Firebase app.
func NewFromApp(ctx context.Context, app *firebase.App, opts ...Option) (*Store, error) {
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, &store.Error{Op: "init", Err: fmt.Errorf("obtaining firestore client: %w", err)}
	}
	return New(client, opts...), nil
}

// Close releases the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) CreateTask(ctx context.Context, sess auth.Session, in task.Input) (task.Task, error) {
	if err := in.Validate(); err != nil {
		return task.Task{}, err
	}

	ref := s.client.Collection(s.collection).NewDoc()
	data := newDocData(in, sess.UID, s.now())
	if _, err := ref.Create(ctx, data); err != nil {
		return task.Task{}, &store.Error{Op: "create", Err: err}
	}
	return toTask(ref.ID, data), nil
}

func (s *Store) UpdateTask(ctx context.Context, sess auth.Session, id string, ch task.Changes) (task.Task, error) {
	if err := ch.Validate(); err != nil {
		return task.Task{}, err
	}

	ref := s.client.Collection(s.collection).Doc(id)
	if _, err := s.owned(ctx, ref, sess, "update"); err != nil {
		return task.Task{}, err
	}

	if _, err := ref.Update(ctx, updatesFor(ch, s.now())); err != nil {
		return task.Task{}, &store.Error{Op: "update", Err: err}
	}

	snap, err := ref.Get(ctx)
	if err != nil {
		return task.Task{}, &store.Error{Op: "update", Err: fmt.Errorf("reading back: %w", err)}
	}
	var data docData
	if err := snap.DataTo(&data); err != nil {
		return task.Task{}, &store.Error{Op: "update", Err: fmt.Errorf("decoding document: %w", err)}
	}
	return toTask(ref.ID, data), nil
}

func (s *Store) DeleteTask(ctx context.Context, sess auth.Session, id string) error {
	ref := s.client.Collection(s.collection).Doc(id)
	if _, err := s.owned(ctx, ref, sess, "delete"); err != nil {
		return err
	}
	if _, err := ref.Delete(ctx); err != nil {
		return &store.Error{Op: "delete", Err: err}
	}
	return nil
}

func (s *Store) ListTasks(ctx context.Context, sess auth.Session) ([]task.Task, error) {
	iter := s.client.Collection(s.collection).
		Where("userId", "==", sess.UID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var tasks []task.Task
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, &store.Error{Op: "list", Err: err}
		}
		var data docData
		if err := snap.DataTo(&data); err != nil {
			return nil, &store.Error{Op: "list", Err: fmt.Errorf("decoding document %s: %w", snap.Ref.ID, err)}
		}
		tasks = append(tasks, toTask(snap.Ref.ID, data))
	}
	return tasks, nil
}

// owned fetches a document and checks that the session user owns it.
func (s *Store) owned(ctx context.Context, ref *firestore.DocumentRef, sess auth.Session, op string) (docData, error) {
	snap, err := ref.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return docData{}, &store.Error{Op: op, Err: store.ErrNotFound}
		}
		return docData{}, &store.Error{Op: op, Err: err}
	}
	var data docData
	if err := snap.DataTo(&data); err != nil {
		return docData{}, &store.Error{Op: op, Err: fmt.Errorf("decoding document: %w", err)}
	}
	if data.UserID != sess.UID {
		return docData{}, &store.Error{Op: op, Err: store.ErrPermission}
	}
	return data, nil
}
