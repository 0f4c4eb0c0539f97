package draft

import (
	"sync"

	"github.com/Astemirdum/car-rental-storefront/storefront/internal/errs"
	"github.com/Astemirdum/car-rental-storefront/storefront/internal/model"
)

// Holder keeps the single booking being confirmed. It lives only in memory;
// every Set overwrites the previous draft.
type Holder struct {
	mu    sync.RWMutex
	draft *model.BookingData
}

func New() *Holder {
	return &Holder{}
}

func (h *Holder) Set(d model.BookingData) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.draft = &d
}

func (h *Holder) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.draft = nil
}

func (h *Holder) Get() (model.BookingData, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.draft == nil {
		return model.BookingData{}, false
	}
	return *h.draft, true
}

// Confirmation returns the draft to confirm, or ErrNoActiveBooking when none exists.
func (h *Holder) Confirmation() (model.BookingData, error) {
	d, ok := h.Get()
	if !ok {
		return model.BookingData{}, errs.ErrNoActiveBooking
	}
	return d, nil
}
