package main

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/go-openapi/strfmt"
)

// warehouse requests a shipment for every placed order.
type warehouse struct {
	mu       sync.Mutex
	reserved map[string]int
}

func newWarehouse() *warehouse {
	return &warehouse{reserved: make(map[string]int)}
}

func (w *warehouse) HandleOrderPlaced(msg OrderPlaced) *ShipmentRequested {
	w.mu.Lock()
	w.reserved[msg.ID.String()] = msg.Items
	w.mu.Unlock()

	parcels := (msg.Items + 2) / 3
	return &ShipmentRequested{OrderID: msg.ID, Parcels: parcels, RequestedAt: now()}
}

func (w *warehouse) HandleOrderCancelled(msg OrderCancelled) {
	w.mu.Lock()
	delete(w.reserved, msg.ID.String())
	w.mu.Unlock()
}

func (w *warehouse) Reserved() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	n := 0
	for _, items := range w.reserved {
		n += items
	}
	return n
}

// ledger follows every order event through the OrderEvent interface.
type ledger struct {
	mu      sync.Mutex
	entries []string
}

func (l *ledger) HandleOrderEvent(evt OrderEvent) {
	l.mu.Lock()
	l.entries = append(l.entries, fmt.Sprintf("%T %s", evt, evt.OrderID()))
	l.mu.Unlock()
}

func (l *ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// console prints messages. It is meant to receive them on the UI loop only.
type console struct {
	out io.Writer
}

func (c *console) HandleOrderPlaced(msg OrderPlaced) {
	fmt.Fprintf(c.out, "%s %s ordered %d items (%s)\n",
		color.GreenString("placed"), color.CyanString(msg.Customer), msg.Items, msg.ID)
}

func (c *console) HandleOrderCancelled(msg OrderCancelled) {
	fmt.Fprintf(c.out, "%s %s: %s\n", color.RedString("cancelled"), msg.ID, msg.Reason)
}

func (c *console) HandleStockChecked(msg StockChecked) {
	state := color.GreenString("in stock")
	if !msg.Available {
		state = color.YellowString("backordered")
	}
	fmt.Fprintf(c.out, "%s %s %s\n", color.MagentaString("stock"), msg.OrderID, state)
}

// auditor is subscribed and then dropped without unsubscribing.
type auditor struct {
	seen []strfmt.UUID
}

func (a *auditor) HandleOrderPlaced(msg OrderPlaced) {
	a.seen = append(a.seen, msg.ID)
}
