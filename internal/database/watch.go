package database

import (
	"context"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// Watcher notifies subscribers whenever a collection changes server-side.
// Subscribers receive bare ticks and are expected to re-fetch the FULL
// snapshot themselves; the watcher never delivers incremental diffs.
//
// Change streams need a replica set; on standalone deployments Watch fails
// and the watcher degrades to interval polling, which still satisfies the
// "snapshot may arrive at any time" contract.
type Watcher struct {
	db         *mongo.Database
	collection string

	mu     sync.Mutex
	subs   map[int]chan struct{}
	nextID int
}

const watcherPollInterval = 5 * time.Second

func NewWatcher(ctx context.Context, db *mongo.Database, collection string) *Watcher {
	w := &Watcher{
		db:         db,
		collection: collection,
		subs:       make(map[int]chan struct{}),
	}
	go w.run(ctx)
	return w
}

// Subscribe registers a listener and returns its tick channel plus a
// cancellation handle. The channel has a buffer of one; a slow consumer
// coalesces bursts into a single pending tick.
func (w *Watcher) Subscribe() (<-chan struct{}, func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextID
	w.nextID++
	ch := make(chan struct{}, 1)
	w.subs[id] = ch

	cancel := func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		delete(w.subs, id)
	}
	return ch, cancel
}

func (w *Watcher) notifyAll() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, ch := range w.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (w *Watcher) run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}
		if err := w.watchChangeStream(ctx); err != nil {
			log.Printf("[WATCH] [WARN] change stream unavailable for %s, polling: %v", w.collection, err)
			w.poll(ctx)
		}
	}
}

func (w *Watcher) watchChangeStream(ctx context.Context) error {
	stream, err := w.db.Collection(w.collection).Watch(ctx, mongo.Pipeline{})
	if err != nil {
		return err
	}
	defer stream.Close(ctx)

	log.Printf("[WATCH] [INFO] change stream open on %s", w.collection)
	for stream.Next(ctx) {
		w.notifyAll()
	}
	return stream.Err()
}

func (w *Watcher) poll(ctx context.Context) {
	ticker := time.NewTicker(watcherPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.notifyAll()
		}
	}
}
