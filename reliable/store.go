package reliable

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/pebble"

	trading "github.com/quantex-io/trading-engine"
)

// queueState is the serialized form of one PriceQueue.
type queueState struct {
	Pair   trading.CurrencyPair `json:"pair"`
	Side   trading.Side         `json:"side"`
	Orders []*trading.Order     `json:"orders"`
}

// QueueStore persists PriceQueue state in pebble, keyed by
// (currency pair, side). Load is get-or-create; Save and SaveBoth are the
// commit half of a read-modify-write, with SaveBoth writing both queues of
// a match atomically in one batch.
type QueueStore struct {
	db *pebble.DB
}

// OpenQueueStore opens (or creates) the store at the given path.
func OpenQueueStore(path string) (*QueueStore, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("open queue store: %w", err)
	}
	return &QueueStore{db: db}, nil
}

func (s *QueueStore) Close() error {
	return s.db.Close()
}

// keys: queue/<base>/<quote>/<side>
func queueKey(pair trading.CurrencyPair, side trading.Side) []byte {
	return []byte(fmt.Sprintf("queue/%s/%s/%s", pair.Base, pair.Quote, side))
}

// Load returns the stored queue for (pair, side), or a fresh empty queue
// when none has been written yet.
func (s *QueueStore) Load(pair trading.CurrencyPair, side trading.Side) (*trading.PriceQueue, error) {
	data, closer, err := s.db.Get(queueKey(pair, side))
	if err == pebble.ErrNotFound {
		return trading.NewPriceQueue(pair, side), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load queue %s %s: %w", pair, side, err)
	}
	defer closer.Close()

	var state queueState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("unmarshal queue %s %s: %w", pair, side, err)
	}

	queue := trading.NewPriceQueue(pair, side)
	for _, order := range state.Orders {
		if err := queue.Add(order); err != nil {
			return nil, fmt.Errorf("restore queue %s %s: %w", pair, side, err)
		}
	}

	return queue, nil
}

// Save commits one queue's current state.
func (s *QueueStore) Save(queue *trading.PriceQueue) error {
	data, err := marshalQueue(queue)
	if err != nil {
		return err
	}

	if err := s.db.Set(queueKey(queue.Pair(), queue.Side()), data, pebble.Sync); err != nil {
		return fmt.Errorf("save queue %s %s: %w", queue.Pair(), queue.Side(), err)
	}
	return nil
}

// SaveBoth commits two queues in one atomic batch. It is used to persist
// the outcome of a matching pass, where both sides of the book changed.
func (s *QueueStore) SaveBoth(a, b *trading.PriceQueue) error {
	batch := s.db.NewBatch()
	defer batch.Close()

	for _, queue := range []*trading.PriceQueue{a, b} {
		data, err := marshalQueue(queue)
		if err != nil {
			return err
		}
		if err := batch.Set(queueKey(queue.Pair(), queue.Side()), data, nil); err != nil {
			return fmt.Errorf("batch queue %s %s: %w", queue.Pair(), queue.Side(), err)
		}
	}

	if err := batch.Commit(pebble.Sync); err != nil {
		return fmt.Errorf("commit queues: %w", err)
	}
	return nil
}

func marshalQueue(queue *trading.PriceQueue) ([]byte, error) {
	state := queueState{
		Pair:   queue.Pair(),
		Side:   queue.Side(),
		Orders: queue.Snapshot(),
	}

	data, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("marshal queue %s %s: %w", queue.Pair(), queue.Side(), err)
	}
	return data, nil
}
