package query

// Purge clears every region's duration map and truncates the dense
// store, under exclusive guards on both (region index first). The
// static region tree survives; a query observes either the full
// pre-purge state or the empty post-purge state, never a partial one.
func (e *Engine) Purge() {
	e.regionMu.Lock()
	defer e.regionMu.Unlock()
	e.storeMu.Lock()
	defer e.storeMu.Unlock()

	e.region.ClearOffers()
	e.store.Clear()
}
