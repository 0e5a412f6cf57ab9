package store

import (
	"sort"
	"sync"
	"time"

	"github.com/navjivan/navjivan-backend/internal/app/model"
	"github.com/navjivan/navjivan-backend/pkg/logger"
)

const defaultDebounceWindow = 500 * time.Millisecond

// Options tunes the store's background behavior. Zero values fall back to
// the defaults above. Periodic refresh cadence lives with the scheduler,
// not here.
type Options struct {
	DebounceWindow time.Duration
}

// Store mirrors the content tables in memory. All collections are replaced
// wholesale on refresh under a single lock, so readers always see a
// consistent snapshot of any one collection.
type Store struct {
	backend Backend
	opts    Options

	mu             sync.RWMutex
	menuItems      []model.MenuItem
	menuCategories []model.MenuCategory
	offers         []model.OfferItem
	reviews        []model.ReviewItem
	gallery        []model.GalleryImage
	chefs          []model.Chef
	chefSpecial    *model.ChefSpecial
	faqs           []model.FAQItem
	contactInfo    *model.ContactInfo
	aboutInfo      *model.AboutInfo
	reservations   []model.ReservationItem
	loaded         bool

	sessionMu    sync.RWMutex
	sessionState SessionState
	session      *Session

	stopOnce sync.Once
	stop     chan struct{}
	wg       sync.WaitGroup
}

func New(backend Backend, opts Options) *Store {
	if opts.DebounceWindow <= 0 {
		opts.DebounceWindow = defaultDebounceWindow
	}
	return &Store{
		backend:      backend,
		opts:         opts,
		sessionState: StateResolving,
		stop:         make(chan struct{}),
	}
}

// Loaded reports whether at least one full refresh has completed. It stays
// true even when individual collections failed to load.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

func (s *Store) MenuItems() []model.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.MenuItem(nil), s.menuItems...)
}

func (s *Store) MenuCategories() []model.MenuCategory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.MenuCategory(nil), s.menuCategories...)
}

// SortedMenuItems returns menu items grouped by category in category
// position order. Items whose category is unknown sort last.
func (s *Store) SortedMenuItems() []model.MenuItem {
	s.mu.RLock()
	position := make(map[string]int, len(s.menuCategories))
	for _, c := range s.menuCategories {
		position[c.Name] = c.Position
	}
	items := append([]model.MenuItem(nil), s.menuItems...)
	s.mu.RUnlock()

	sort.SliceStable(items, func(i, j int) bool {
		pi, oki := position[items[i].Category]
		pj, okj := position[items[j].Category]
		if oki != okj {
			return oki
		}
		return pi < pj
	})
	return items
}

func (s *Store) Offers() []model.OfferItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.OfferItem(nil), s.offers...)
}

// ActiveOffers filters out offers whose valid-until date has passed.
func (s *Store) ActiveOffers() []model.OfferItem {
	now := time.Now()
	s.mu.RLock()
	defer s.mu.RUnlock()
	active := make([]model.OfferItem, 0, len(s.offers))
	for _, o := range s.offers {
		if o.ValidUntil.IsZero() || o.ValidUntil.After(now) {
			active = append(active, o)
		}
	}
	return active
}

func (s *Store) Reviews() []model.ReviewItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.ReviewItem(nil), s.reviews...)
}

// ApprovedReviews returns reviews visible on public pages.
func (s *Store) ApprovedReviews() []model.ReviewItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	approved := make([]model.ReviewItem, 0, len(s.reviews))
	for _, r := range s.reviews {
		if r.Status == model.ReviewApproved {
			approved = append(approved, r)
		}
	}
	return approved
}

func (s *Store) Gallery() []model.GalleryImage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.GalleryImage(nil), s.gallery...)
}

func (s *Store) Chefs() []model.Chef {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Chef(nil), s.chefs...)
}

func (s *Store) ChefSpecial() *model.ChefSpecial {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.chefSpecial == nil {
		return nil
	}
	special := *s.chefSpecial
	return &special
}

func (s *Store) FAQs() []model.FAQItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.FAQItem(nil), s.faqs...)
}

func (s *Store) ContactInfo() *model.ContactInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.contactInfo == nil {
		return nil
	}
	info := *s.contactInfo
	return &info
}

func (s *Store) AboutInfo() *model.AboutInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.aboutInfo == nil {
		return nil
	}
	info := *s.aboutInfo
	return &info
}

func (s *Store) Reservations() []model.ReservationItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.ReservationItem(nil), s.reservations...)
}

func (s *Store) log() *logger.Logger {
	return logger.Get()
}
