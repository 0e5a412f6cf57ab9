package store

import (
	"context"
	"time"

	"github.com/navjivan/navjivan-backend/internal/app/model"
)

// Mutations are write-through: the backend is updated first, and only a
// successful write touches the mirror. Records that carry an image get
// their asset deleted before the record on delete, and their replaced
// asset cleaned up after the record on update. Asset cleanup is best
// effort and never fails the mutation.

// --- menu items ---

func (s *Store) AddMenuItem(ctx context.Context, item *model.MenuItem) error {
	if err := s.backend.Writer.CreateMenuItem(ctx, item); err != nil {
		return err
	}
	s.mu.Lock()
	s.menuItems = append(s.menuItems, *item)
	s.mu.Unlock()
	return nil
}

func (s *Store) UpdateMenuItem(ctx context.Context, item *model.MenuItem) error {
	oldURL := ""
	s.mu.RLock()
	for _, existing := range s.menuItems {
		if existing.ID == item.ID {
			oldURL = existing.ImageURL
			break
		}
	}
	s.mu.RUnlock()

	if err := s.backend.Writer.UpdateMenuItem(ctx, item); err != nil {
		return err
	}

	s.mu.Lock()
	for i := range s.menuItems {
		if s.menuItems[i].ID == item.ID {
			s.menuItems[i] = *item
			break
		}
	}
	s.mu.Unlock()

	if oldURL != "" && oldURL != item.ImageURL {
		s.deleteImageBestEffort(ctx, oldURL)
	}
	return nil
}

func (s *Store) DeleteMenuItem(ctx context.Context, id uint) error {
	s.mu.RLock()
	imageURL := ""
	for _, item := range s.menuItems {
		if item.ID == id {
			imageURL = item.ImageURL
			break
		}
	}
	s.mu.RUnlock()

	if imageURL != "" {
		s.deleteImageBestEffort(ctx, imageURL)
	}
	if err := s.backend.Writer.DeleteMenuItem(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	s.menuItems = removeByID(s.menuItems, id, func(m model.MenuItem) uint { return m.ID })
	s.mu.Unlock()
	return nil
}

// --- menu categories ---

func (s *Store) AddMenuCategory(ctx context.Context, category *model.MenuCategory) error {
	if err := s.backend.Writer.CreateMenuCategory(ctx, category); err != nil {
		return err
	}
	s.mu.Lock()
	s.menuCategories = append(s.menuCategories, *category)
	s.mu.Unlock()
	return nil
}

// DeleteMenuCategory removes the category only. Menu items that still
// reference the name keep it.
func (s *Store) DeleteMenuCategory(ctx context.Context, name string) error {
	if err := s.backend.Writer.DeleteMenuCategory(ctx, name); err != nil {
		return err
	}
	s.mu.Lock()
	kept := s.menuCategories[:0]
	for _, c := range s.menuCategories {
		if c.Name != name {
			kept = append(kept, c)
		}
	}
	s.menuCategories = kept
	s.mu.Unlock()
	return nil
}

// --- offers ---

func (s *Store) AddOffer(ctx context.Context, offer *model.OfferItem) error {
	if err := s.backend.Writer.CreateOffer(ctx, offer); err != nil {
		return err
	}
	s.mu.Lock()
	s.offers = append(s.offers, *offer)
	s.mu.Unlock()
	return nil
}

func (s *Store) UpdateOffer(ctx context.Context, offer *model.OfferItem) error {
	oldURL := ""
	s.mu.RLock()
	for _, existing := range s.offers {
		if existing.ID == offer.ID {
			oldURL = existing.ImageURL
			break
		}
	}
	s.mu.RUnlock()

	if err := s.backend.Writer.UpdateOffer(ctx, offer); err != nil {
		return err
	}

	s.mu.Lock()
	for i := range s.offers {
		if s.offers[i].ID == offer.ID {
			s.offers[i] = *offer
			break
		}
	}
	s.mu.Unlock()

	if oldURL != "" && oldURL != offer.ImageURL {
		s.deleteImageBestEffort(ctx, oldURL)
	}
	return nil
}

func (s *Store) DeleteOffer(ctx context.Context, id uint) error {
	s.mu.RLock()
	imageURL := ""
	for _, offer := range s.offers {
		if offer.ID == id {
			imageURL = offer.ImageURL
			break
		}
	}
	s.mu.RUnlock()

	if imageURL != "" {
		s.deleteImageBestEffort(ctx, imageURL)
	}
	if err := s.backend.Writer.DeleteOffer(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	s.offers = removeByID(s.offers, id, func(o model.OfferItem) uint { return o.ID })
	s.mu.Unlock()
	return nil
}

// --- reviews ---

// AddReview is the public submission path: every new review enters as
// pending regardless of what the caller set, and a missing review date
// defaults to now.
func (s *Store) AddReview(ctx context.Context, review *model.ReviewItem) error {
	review.Status = model.ReviewPending
	if review.ReviewDate.IsZero() {
		review.ReviewDate = time.Now()
	}
	if err := s.backend.Writer.CreateReview(ctx, review); err != nil {
		return err
	}
	s.mu.Lock()
	s.reviews = append([]model.ReviewItem{*review}, s.reviews...)
	s.mu.Unlock()
	return nil
}

func (s *Store) UpdateReview(ctx context.Context, review *model.ReviewItem) error {
	if err := s.backend.Writer.UpdateReview(ctx, review); err != nil {
		return err
	}
	s.mu.Lock()
	for i := range s.reviews {
		if s.reviews[i].ID == review.ID {
			s.reviews[i] = *review
			break
		}
	}
	s.mu.Unlock()
	return nil
}

func (s *Store) DeleteReview(ctx context.Context, id uint) error {
	if err := s.backend.Writer.DeleteReview(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	s.reviews = removeByID(s.reviews, id, func(r model.ReviewItem) uint { return r.ID })
	s.mu.Unlock()
	return nil
}

// --- gallery ---

func (s *Store) AddGalleryImage(ctx context.Context, image *model.GalleryImage) error {
	if err := s.backend.Writer.CreateGalleryImage(ctx, image); err != nil {
		return err
	}
	s.mu.Lock()
	s.gallery = append(s.gallery, *image)
	s.mu.Unlock()
	return nil
}

func (s *Store) DeleteGalleryImage(ctx context.Context, id uint) error {
	s.mu.RLock()
	src := ""
	for _, image := range s.gallery {
		if image.ID == id {
			src = image.Src
			break
		}
	}
	s.mu.RUnlock()

	if src != "" {
		s.deleteImageBestEffort(ctx, src)
	}
	if err := s.backend.Writer.DeleteGalleryImage(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	s.gallery = removeByID(s.gallery, id, func(g model.GalleryImage) uint { return g.ID })
	s.mu.Unlock()
	return nil
}

// --- chefs ---

func (s *Store) AddChef(ctx context.Context, chef *model.Chef) error {
	if err := s.backend.Writer.CreateChef(ctx, chef); err != nil {
		return err
	}
	s.mu.Lock()
	s.chefs = append(s.chefs, *chef)
	s.mu.Unlock()
	return nil
}

func (s *Store) UpdateChef(ctx context.Context, chef *model.Chef) error {
	oldURL := ""
	s.mu.RLock()
	for _, existing := range s.chefs {
		if existing.ID == chef.ID {
			oldURL = existing.ImageURL
			break
		}
	}
	s.mu.RUnlock()

	if err := s.backend.Writer.UpdateChef(ctx, chef); err != nil {
		return err
	}

	s.mu.Lock()
	for i := range s.chefs {
		if s.chefs[i].ID == chef.ID {
			s.chefs[i] = *chef
			break
		}
	}
	s.mu.Unlock()

	if oldURL != "" && oldURL != chef.ImageURL {
		s.deleteImageBestEffort(ctx, oldURL)
	}
	return nil
}

func (s *Store) DeleteChef(ctx context.Context, id uint) error {
	s.mu.RLock()
	imageURL := ""
	for _, chef := range s.chefs {
		if chef.ID == id {
			imageURL = chef.ImageURL
			break
		}
	}
	s.mu.RUnlock()

	if imageURL != "" {
		s.deleteImageBestEffort(ctx, imageURL)
	}
	if err := s.backend.Writer.DeleteChef(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	s.chefs = removeByID(s.chefs, id, func(c model.Chef) uint { return c.ID })
	s.mu.Unlock()
	return nil
}

// UpdateChefSpecial updates the singleton in place. There is no create and
// no delete: the row is seeded by the migration.
func (s *Store) UpdateChefSpecial(ctx context.Context, special *model.ChefSpecial) error {
	oldURL := ""
	s.mu.RLock()
	if s.chefSpecial != nil {
		oldURL = s.chefSpecial.ImageURL
	}
	s.mu.RUnlock()

	special.ID = model.SingletonID
	if err := s.backend.Writer.UpdateChefSpecial(ctx, special); err != nil {
		return err
	}

	s.mu.Lock()
	updated := *special
	s.chefSpecial = &updated
	s.mu.Unlock()

	if oldURL != "" && oldURL != special.ImageURL {
		s.deleteImageBestEffort(ctx, oldURL)
	}
	return nil
}

// --- faqs ---

// ReplaceFAQs swaps the whole FAQ list at once. The backend assigns fresh
// IDs, so the mirror takes the returned rows rather than the input.
func (s *Store) ReplaceFAQs(ctx context.Context, items []model.FAQItem) error {
	fresh, err := s.backend.Writer.ReplaceFAQs(ctx, items)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.faqs = fresh
	s.mu.Unlock()
	return nil
}

// --- singletons ---

func (s *Store) UpdateContactInfo(ctx context.Context, info *model.ContactInfo) error {
	info.ID = model.SingletonID
	if err := s.backend.Writer.UpdateContactInfo(ctx, info); err != nil {
		return err
	}
	s.mu.Lock()
	updated := *info
	s.contactInfo = &updated
	s.mu.Unlock()
	return nil
}

func (s *Store) UpdateAboutInfo(ctx context.Context, info *model.AboutInfo) error {
	info.ID = model.SingletonID
	if err := s.backend.Writer.UpdateAboutInfo(ctx, info); err != nil {
		return err
	}
	s.mu.Lock()
	updated := *info
	s.aboutInfo = &updated
	s.mu.Unlock()
	return nil
}

// --- reservations ---

// AddReservation is the public booking path: every new reservation starts
// Pending no matter what the caller set.
func (s *Store) AddReservation(ctx context.Context, reservation *model.ReservationItem) error {
	reservation.Status = model.ReservationPending
	if err := s.backend.Writer.CreateReservation(ctx, reservation); err != nil {
		return err
	}
	s.mu.Lock()
	s.reservations = append([]model.ReservationItem{*reservation}, s.reservations...)
	s.mu.Unlock()
	return nil
}

func (s *Store) UpdateReservation(ctx context.Context, reservation *model.ReservationItem) error {
	if err := s.backend.Writer.UpdateReservation(ctx, reservation); err != nil {
		return err
	}
	s.mu.Lock()
	for i := range s.reservations {
		if s.reservations[i].ID == reservation.ID {
			s.reservations[i] = *reservation
			break
		}
	}
	s.mu.Unlock()
	return nil
}

func (s *Store) DeleteReservation(ctx context.Context, id uint) error {
	if err := s.backend.Writer.DeleteReservation(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	s.reservations = removeByID(s.reservations, id, func(r model.ReservationItem) uint { return r.ID })
	s.mu.Unlock()
	return nil
}

// --- contact messages ---

// AddContactMessage persists a contact form submission. Messages are
// write-only and never enter the mirror.
func (s *Store) AddContactMessage(ctx context.Context, message *model.ContactMessageItem) error {
	return s.backend.Writer.CreateContactMessage(ctx, message)
}

func removeByID[T any](items []T, id uint, key func(T) uint) []T {
	kept := items[:0]
	for _, item := range items {
		if key(item) != id {
			kept = append(kept, item)
		}
	}
	return kept
}
