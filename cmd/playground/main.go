// Command playground drives a FifoEngine with random orders from several
// goroutines and prints every close, a small console demo of the engine
// under contention.
package main

import (
	"log/slog"
	"os"
	"sync"

	trading "github.com/quantex-io/trading-engine"
)

const workerCount = 10

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	engine := trading.NewFifoEngine(trading.NewLinearScanBook())

	recorder := trading.NewOrderRecorder()
	recorder.Attach(engine)

	engine.OnOrderClosed(func(order *trading.Order) {
		logger.Info("closed", "order", order.String())
	})

	orders := trading.GenerateOrders(1000, "USD", "EUR", 0.93, 0.99)

	queue := make(chan *trading.Order, len(orders))
	for _, order := range orders {
		queue <- order
	}
	close(queue)

	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for order := range queue {
				logger.Info("place", "order", order.String())
				_ = engine.Place(order)
			}
		}()
	}
	wg.Wait()

	logger.Info("done",
		"placed", recorder.OpenedCount(),
		"closed", recorder.ClosedCount(),
		"resting", len(recorder.OpenOrders()),
	)
}
