// Package api fronts a set of shard engines with an HTTP interface.
// The shards are long-lived and owned by the caller; the server only
// routes each currency pair to its owning shard.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"

	trading "github.com/quantex-io/trading-engine"
)

// PlaceOrderRequest is the wire form of one order placement.
type PlaceOrderRequest struct {
	BaseCurrency  string          `json:"base_currency" binding:"required"`
	QuoteCurrency string          `json:"quote_currency" binding:"required"`
	Side          string          `json:"side" binding:"required,oneof=buy sell"`
	Price         decimal.Decimal `json:"price"`
	Amount        decimal.Decimal `json:"amount"`
}

type Server struct {
	router *gin.Engine
	shards []trading.TradingEngine
}

// NewServer creates the HTTP server over the given shard engines.
// There must be at least one shard.
func NewServer(shards []trading.TradingEngine) *Server {
	registerMetrics()
	for _, shard := range shards {
		shard.OnOrderOpened(func(*trading.Order) { ordersOpened.Inc() })
		shard.OnOrderClosed(func(*trading.Order) { ordersClosed.Inc() })
	}

	s := &Server{shards: shards}

	router := gin.New()
	router.Use(gin.Recovery())

	router.PUT("/api/orders", s.placeOrder)
	router.GET("/healthz", s.health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.router = router
	return s
}

// Router exposes the gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start blocks serving HTTP on addr.
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}

func (s *Server) placeOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	side := trading.Buy
	if req.Side == "sell" {
		side = trading.Sell
	}

	pair := trading.NewCurrencyPair(req.BaseCurrency, req.QuoteCurrency)
	order, err := trading.NewOrder(pair, side, req.Price, req.Amount)
	if err != nil {
		ordersRejected.Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shard := s.shards[int(Partition(req.BaseCurrency, req.QuoteCurrency))%len(s.shards)]
	if err := shard.Place(order); err != nil {
		ordersRejected.Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// acceptance only; the response does not describe the match outcome
	c.Status(http.StatusOK)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
