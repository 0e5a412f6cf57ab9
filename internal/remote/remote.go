// Package remote implements the store's backend capabilities on top of the
// database repositories, the S3 object store, the change notifier and the
// auth service.
package remote

import (
	"context"

	"gorm.io/gorm"

	"github.com/navjivan/navjivan-backend/internal/app/model"
	"github.com/navjivan/navjivan-backend/internal/app/repository"
	"github.com/navjivan/navjivan-backend/internal/notify"
)

// Content reads and writes the content tables. Every successful write
// publishes a change event so other instances refresh their mirrors.
// Contact messages are the exception: they are write-only and never
// mirrored, so no event goes out for them.
type Content struct {
	menus        *repository.MenuRepository
	offers       *repository.OfferRepository
	reviews      *repository.ReviewRepository
	gallery      *repository.GalleryRepository
	chefs        *repository.ChefRepository
	faqs         *repository.FAQRepository
	info         *repository.InfoRepository
	reservations *repository.ReservationRepository
	notifier     *notify.Notifier
}

func NewContent(db *gorm.DB, notifier *notify.Notifier) *Content {
	return &Content{
		menus:        repository.NewMenuRepository(db),
		offers:       repository.NewOfferRepository(db),
		reviews:      repository.NewReviewRepository(db),
		gallery:      repository.NewGalleryRepository(db),
		chefs:        repository.NewChefRepository(db),
		faqs:         repository.NewFAQRepository(db),
		info:         repository.NewInfoRepository(db),
		reservations: repository.NewReservationRepository(db),
		notifier:     notifier,
	}
}

func (c *Content) notifyChanged(ctx context.Context, table string) {
	if c.notifier != nil {
		c.notifier.Publish(ctx, notify.Event{Table: table})
	}
}

// --- reads ---

func (c *Content) FetchMenuItems(ctx context.Context) ([]model.MenuItem, error) {
	return c.menus.FindAllItems()
}

func (c *Content) FetchMenuCategories(ctx context.Context) ([]model.MenuCategory, error) {
	return c.menus.FindAllCategories()
}

func (c *Content) FetchOffers(ctx context.Context) ([]model.OfferItem, error) {
	return c.offers.FindAll()
}

func (c *Content) FetchReviews(ctx context.Context) ([]model.ReviewItem, error) {
	return c.reviews.FindAll()
}

func (c *Content) FetchGallery(ctx context.Context) ([]model.GalleryImage, error) {
	return c.gallery.FindAll()
}

func (c *Content) FetchChefs(ctx context.Context) ([]model.Chef, error) {
	return c.chefs.FindAll()
}

func (c *Content) FetchChefSpecial(ctx context.Context) (*model.ChefSpecial, error) {
	return c.chefs.GetSpecial()
}

func (c *Content) FetchFAQs(ctx context.Context) ([]model.FAQItem, error) {
	return c.faqs.FindAll()
}

func (c *Content) FetchContactInfo(ctx context.Context) (*model.ContactInfo, error) {
	return c.info.GetContactInfo()
}

func (c *Content) FetchAboutInfo(ctx context.Context) (*model.AboutInfo, error) {
	return c.info.GetAboutInfo()
}

func (c *Content) FetchReservations(ctx context.Context) ([]model.ReservationItem, error) {
	return c.reservations.FindAll()
}

// --- writes ---

func (c *Content) CreateMenuItem(ctx context.Context, item *model.MenuItem) error {
	if err := c.menus.CreateItem(item); err != nil {
		return err
	}
	c.notifyChanged(ctx, "menu_items")
	return nil
}

func (c *Content) UpdateMenuItem(ctx context.Context, item *model.MenuItem) error {
	if err := c.menus.UpdateItem(item); err != nil {
		return err
	}
	c.notifyChanged(ctx, "menu_items")
	return nil
}

func (c *Content) DeleteMenuItem(ctx context.Context, id uint) error {
	if err := c.menus.DeleteItem(id); err != nil {
		return err
	}
	c.notifyChanged(ctx, "menu_items")
	return nil
}

func (c *Content) CreateMenuCategory(ctx context.Context, category *model.MenuCategory) error {
	if err := c.menus.CreateCategory(category); err != nil {
		return err
	}
	c.notifyChanged(ctx, "menu_categories")
	return nil
}

func (c *Content) DeleteMenuCategory(ctx context.Context, name string) error {
	if err := c.menus.DeleteCategoryByName(name); err != nil {
		return err
	}
	c.notifyChanged(ctx, "menu_categories")
	return nil
}

func (c *Content) CreateOffer(ctx context.Context, offer *model.OfferItem) error {
	if err := c.offers.Create(offer); err != nil {
		return err
	}
	c.notifyChanged(ctx, "offers")
	return nil
}

func (c *Content) UpdateOffer(ctx context.Context, offer *model.OfferItem) error {
	if err := c.offers.Update(offer); err != nil {
		return err
	}
	c.notifyChanged(ctx, "offers")
	return nil
}

func (c *Content) DeleteOffer(ctx context.Context, id uint) error {
	if err := c.offers.Delete(id); err != nil {
		return err
	}
	c.notifyChanged(ctx, "offers")
	return nil
}

func (c *Content) CreateReview(ctx context.Context, review *model.ReviewItem) error {
	if err := c.reviews.Create(review); err != nil {
		return err
	}
	c.notifyChanged(ctx, "reviews")
	return nil
}

func (c *Content) UpdateReview(ctx context.Context, review *model.ReviewItem) error {
	if err := c.reviews.Update(review); err != nil {
		return err
	}
	c.notifyChanged(ctx, "reviews")
	return nil
}

func (c *Content) DeleteReview(ctx context.Context, id uint) error {
	if err := c.reviews.Delete(id); err != nil {
		return err
	}
	c.notifyChanged(ctx, "reviews")
	return nil
}

func (c *Content) CreateGalleryImage(ctx context.Context, image *model.GalleryImage) error {
	if err := c.gallery.Create(image); err != nil {
		return err
	}
	c.notifyChanged(ctx, "gallery_images")
	return nil
}

func (c *Content) DeleteGalleryImage(ctx context.Context, id uint) error {
	if err := c.gallery.Delete(id); err != nil {
		return err
	}
	c.notifyChanged(ctx, "gallery_images")
	return nil
}

func (c *Content) CreateChef(ctx context.Context, chef *model.Chef) error {
	if err := c.chefs.Create(chef); err != nil {
		return err
	}
	c.notifyChanged(ctx, "chefs")
	return nil
}

func (c *Content) UpdateChef(ctx context.Context, chef *model.Chef) error {
	if err := c.chefs.Update(chef); err != nil {
		return err
	}
	c.notifyChanged(ctx, "chefs")
	return nil
}

func (c *Content) DeleteChef(ctx context.Context, id uint) error {
	if err := c.chefs.Delete(id); err != nil {
		return err
	}
	c.notifyChanged(ctx, "chefs")
	return nil
}

func (c *Content) UpdateChefSpecial(ctx context.Context, special *model.ChefSpecial) error {
	if err := c.chefs.UpdateSpecial(special); err != nil {
		return err
	}
	c.notifyChanged(ctx, "chef_special")
	return nil
}

func (c *Content) ReplaceFAQs(ctx context.Context, items []model.FAQItem) ([]model.FAQItem, error) {
	fresh, err := c.faqs.ReplaceAll(items)
	if err != nil {
		return nil, err
	}
	c.notifyChanged(ctx, "faqs")
	return fresh, nil
}

func (c *Content) UpdateContactInfo(ctx context.Context, info *model.ContactInfo) error {
	if err := c.info.UpdateContactInfo(info); err != nil {
		return err
	}
	c.notifyChanged(ctx, "contact_info")
	return nil
}

func (c *Content) UpdateAboutInfo(ctx context.Context, info *model.AboutInfo) error {
	if err := c.info.UpdateAboutInfo(info); err != nil {
		return err
	}
	c.notifyChanged(ctx, "about_info")
	return nil
}

func (c *Content) CreateReservation(ctx context.Context, reservation *model.ReservationItem) error {
	if err := c.reservations.Create(reservation); err != nil {
		return err
	}
	c.notifyChanged(ctx, "reservations")
	return nil
}

func (c *Content) UpdateReservation(ctx context.Context, reservation *model.ReservationItem) error {
	if err := c.reservations.Update(reservation); err != nil {
		return err
	}
	c.notifyChanged(ctx, "reservations")
	return nil
}

func (c *Content) DeleteReservation(ctx context.Context, id uint) error {
	if err := c.reservations.Delete(id); err != nil {
		return err
	}
	c.notifyChanged(ctx, "reservations")
	return nil
}

// CreateContactMessage deliberately publishes no change event.
func (c *Content) CreateContactMessage(ctx context.Context, message *model.ContactMessageItem) error {
	return c.info.CreateContactMessage(message)
}
