package reliable

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	trading "github.com/quantex-io/trading-engine"
)

var usdEur = trading.NewCurrencyPair("USD", "EUR")

func newTestOrder(t *testing.T, side trading.Side, price string, amount int64) *trading.Order {
	t.Helper()

	order, err := trading.NewOrder(usdEur, side, decimal.RequireFromString(price), decimal.NewFromInt(amount))
	require.NoError(t, err)
	return order
}

func openTestStore(t *testing.T, path string) *QueueStore {
	t.Helper()

	store, err := OpenQueueStore(path)
	require.NoError(t, err)
	return store
}

func TestEngineFullFill(t *testing.T) {
	store := openTestStore(t, t.TempDir())
	defer store.Close()

	engine := NewEngine(store)
	recorder := trading.NewOrderRecorder()
	recorder.Attach(engine)

	buy := newTestOrder(t, trading.Buy, "0.95", 10)
	sell := newTestOrder(t, trading.Sell, "0.94", 10)

	require.NoError(t, engine.Place(buy))
	require.NoError(t, engine.Place(sell))

	assert.True(t, buy.IsClosed())
	assert.True(t, sell.IsClosed())
	assert.Equal(t, 2, recorder.OpenedCount())
	assert.Equal(t, 2, recorder.ClosedCount())
}

func TestEngineNoCross(t *testing.T) {
	store := openTestStore(t, t.TempDir())
	defer store.Close()

	engine := NewEngine(store)
	recorder := trading.NewOrderRecorder()
	recorder.Attach(engine)

	buy := newTestOrder(t, trading.Buy, "0.95", 10)
	sell := newTestOrder(t, trading.Sell, "0.96", 10)

	require.NoError(t, engine.Place(buy))
	require.NoError(t, engine.Place(sell))

	assert.False(t, buy.IsClosed())
	assert.False(t, sell.IsClosed())
	assert.Equal(t, 0, recorder.ClosedCount())
}

func TestEnginePartialFill(t *testing.T) {
	store := openTestStore(t, t.TempDir())
	defer store.Close()

	engine := NewEngine(store)

	sell := newTestOrder(t, trading.Sell, "0.95", 5)
	buy := newTestOrder(t, trading.Buy, "0.95", 10)

	require.NoError(t, engine.Place(sell))
	require.NoError(t, engine.Place(buy))

	assert.True(t, sell.IsClosed())
	assert.Equal(t, "5", buy.RemainingAmount.String())
}

func TestEngineRecoversRestingOrdersAfterRestart(t *testing.T) {
	dir := t.TempDir()

	store := openTestStore(t, dir)
	engine := NewEngine(store)

	sell := newTestOrder(t, trading.Sell, "0.95", 10)
	require.NoError(t, engine.Place(sell))
	require.NoError(t, store.Close())

	// a fresh engine over the same store sees the resting sell
	store = openTestStore(t, dir)
	defer store.Close()
	engine = NewEngine(store)

	recorder := trading.NewOrderRecorder()
	recorder.Attach(engine)

	buy := newTestOrder(t, trading.Buy, "0.96", 10)
	require.NoError(t, engine.Place(buy))

	assert.True(t, buy.IsClosed())
	assert.Equal(t, 2, recorder.ClosedCount())

	// the recovered counterparty is the persisted copy, not the original
	// pointer; both its identity and its drained amount come back
	closed := recorder.Closed()
	ids := []string{closed[0].ID, closed[1].ID}
	assert.Contains(t, ids, sell.ID)
	assert.Contains(t, ids, buy.ID)
	for _, order := range closed {
		assert.True(t, order.RemainingAmount.IsZero())
	}
}

func TestEnginePersistsPartialFillAcrossRestart(t *testing.T) {
	dir := t.TempDir()

	store := openTestStore(t, dir)
	engine := NewEngine(store)

	resting := newTestOrder(t, trading.Sell, "0.95", 10)
	require.NoError(t, engine.Place(resting))

	nibble := newTestOrder(t, trading.Buy, "0.95", 4)
	require.NoError(t, engine.Place(nibble))
	require.NoError(t, store.Close())

	store = openTestStore(t, dir)
	defer store.Close()

	queue, err := store.Load(usdEur, trading.Sell)
	require.NoError(t, err)

	snapshot := queue.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, resting.ID, snapshot[0].ID)
	assert.Equal(t, "6", snapshot[0].RemainingAmount.String())
}

func TestQueueStoreLoadMissingReturnsEmptyQueue(t *testing.T) {
	store := openTestStore(t, t.TempDir())
	defer store.Close()

	queue, err := store.Load(usdEur, trading.Buy)
	require.NoError(t, err)
	assert.True(t, queue.IsEmpty())
	assert.Equal(t, usdEur, queue.Pair())
	assert.Equal(t, trading.Buy, queue.Side())
}

func TestQueueStoreSaveBothIsAtomicPerKey(t *testing.T) {
	store := openTestStore(t, t.TempDir())
	defer store.Close()

	buys := trading.NewPriceQueue(usdEur, trading.Buy)
	sells := trading.NewPriceQueue(usdEur, trading.Sell)

	buy := newTestOrder(t, trading.Buy, "0.95", 10)
	sell := newTestOrder(t, trading.Sell, "0.97", 10)
	require.NoError(t, buys.Add(buy))
	require.NoError(t, sells.Add(sell))

	require.NoError(t, store.SaveBoth(buys, sells))

	loadedBuys, err := store.Load(usdEur, trading.Buy)
	require.NoError(t, err)
	loadedSells, err := store.Load(usdEur, trading.Sell)
	require.NoError(t, err)

	require.Equal(t, 1, loadedBuys.Len())
	require.Equal(t, 1, loadedSells.Len())
	assert.Equal(t, buy.ID, loadedBuys.Peek().ID)
	assert.Equal(t, sell.ID, loadedSells.Peek().ID)
}
