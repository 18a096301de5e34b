package token

import "math/big"

// EventSink receives the accounting layer's domain events. A nil sink is
// valid; operations simply skip emission.
type EventSink interface {
	IndexUpdated(currentIndex *big.Int, rate uint32)
	StartedEarning(account string)
	StoppedEarning(account string)
	Transfer(from, to string, amount *big.Int)
}

// NopEventSink discards every event; the zero value is ready to use.
type NopEventSink struct{}

func (NopEventSink) IndexUpdated(*big.Int, uint32)     {}
func (NopEventSink) StartedEarning(string)             {}
func (NopEventSink) StoppedEarning(string)             {}
func (NopEventSink) Transfer(string, string, *big.Int) {}

// OpObserver receives one call per accounting operation, reporting the
// operation's name and, on failure, the Code of the error it returned.
// This is what internal/metrics.Registry implements to keep
// operations_total/errors_total live.
type OpObserver interface {
	ObserveOp(op string, errCode string)
}

// nopObserver discards every observation; used when no observer is set.
type nopObserver struct{}

func (nopObserver) ObserveOp(string, string) {}
