package store

import (
	"context"
	"sync"
)

// refreshResult carries one collection's fetch outcome. Only successful
// fetches are applied; a failed collection keeps its previous contents.
type refreshResult struct {
	table string
	apply func()
	err   error
}

// RefreshAll refetches every collection concurrently and waits for all of
// them to settle. Collections that fetched successfully replace the mirror
// wholesale under a single lock; failed collections are logged and left
// untouched. The loaded flag flips to true exactly once per call, whether
// or not every collection succeeded.
func (s *Store) RefreshAll(ctx context.Context) {
	results := make([]refreshResult, 11)
	var wg sync.WaitGroup

	run := func(i int, table string, fetch func() (func(), error)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			apply, err := fetch()
			results[i] = refreshResult{table: table, apply: apply, err: err}
		}()
	}

	run(0, "menu_items", func() (func(), error) {
		items, err := s.backend.Reader.FetchMenuItems(ctx)
		return func() { s.menuItems = items }, err
	})
	run(1, "menu_categories", func() (func(), error) {
		categories, err := s.backend.Reader.FetchMenuCategories(ctx)
		return func() { s.menuCategories = categories }, err
	})
	run(2, "offers", func() (func(), error) {
		offers, err := s.backend.Reader.FetchOffers(ctx)
		return func() { s.offers = offers }, err
	})
	run(3, "reviews", func() (func(), error) {
		reviews, err := s.backend.Reader.FetchReviews(ctx)
		return func() { s.reviews = reviews }, err
	})
	run(4, "gallery_images", func() (func(), error) {
		images, err := s.backend.Reader.FetchGallery(ctx)
		return func() { s.gallery = images }, err
	})
	run(5, "chefs", func() (func(), error) {
		chefs, err := s.backend.Reader.FetchChefs(ctx)
		return func() { s.chefs = chefs }, err
	})
	run(6, "chef_special", func() (func(), error) {
		special, err := s.backend.Reader.FetchChefSpecial(ctx)
		return func() { s.chefSpecial = special }, err
	})
	run(7, "faqs", func() (func(), error) {
		faqs, err := s.backend.Reader.FetchFAQs(ctx)
		return func() { s.faqs = faqs }, err
	})
	run(8, "contact_info", func() (func(), error) {
		info, err := s.backend.Reader.FetchContactInfo(ctx)
		return func() { s.contactInfo = info }, err
	})
	run(9, "about_info", func() (func(), error) {
		info, err := s.backend.Reader.FetchAboutInfo(ctx)
		return func() { s.aboutInfo = info }, err
	})
	run(10, "reservations", func() (func(), error) {
		reservations, err := s.backend.Reader.FetchReservations(ctx)
		return func() { s.reservations = reservations }, err
	})

	wg.Wait()

	s.mu.Lock()
	for _, r := range results {
		if r.err == nil {
			r.apply()
		}
	}
	s.loaded = true
	s.mu.Unlock()

	for _, r := range results {
		if r.err != nil {
			s.log().Error("content refresh failed for collection", r.err, map[string]interface{}{
				"table": r.table,
			})
		}
	}
}
