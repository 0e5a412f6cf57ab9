// Package store keeps an in-memory mirror of the restaurant's content
// tables and keeps it fresh: a full concurrent refresh on start, a debounced
// refetch whenever the backend reports a change, and write-through mutations
// that update the backend first and the mirror second.
package store

import (
	"context"
	"errors"
	"io"

	"github.com/navjivan/navjivan-backend/internal/app/model"
)

var (
	// ErrCredentialsInvalid means the object store rejected our credentials.
	ErrCredentialsInvalid = errors.New("object store credentials invalid")

	// ErrPermissionDenied means the object store refused the operation.
	ErrPermissionDenied = errors.New("object store permission denied")

	// ErrForeignURL means a URL does not point into our object store.
	ErrForeignURL = errors.New("url is not managed by this store")
)

// ContentReader fetches full snapshots of each content collection.
type ContentReader interface {
	FetchMenuItems(ctx context.Context) ([]model.MenuItem, error)
	FetchMenuCategories(ctx context.Context) ([]model.MenuCategory, error)
	FetchOffers(ctx context.Context) ([]model.OfferItem, error)
	FetchReviews(ctx context.Context) ([]model.ReviewItem, error)
	FetchGallery(ctx context.Context) ([]model.GalleryImage, error)
	FetchChefs(ctx context.Context) ([]model.Chef, error)
	FetchChefSpecial(ctx context.Context) (*model.ChefSpecial, error)
	FetchFAQs(ctx context.Context) ([]model.FAQItem, error)
	FetchContactInfo(ctx context.Context) (*model.ContactInfo, error)
	FetchAboutInfo(ctx context.Context) (*model.AboutInfo, error)
	FetchReservations(ctx context.Context) ([]model.ReservationItem, error)
}

// ContentWriter persists mutations. Implementations are expected to emit a
// change event after every successful write except contact messages, which
// are write-only and never mirrored.
type ContentWriter interface {
	CreateMenuItem(ctx context.Context, item *model.MenuItem) error
	UpdateMenuItem(ctx context.Context, item *model.MenuItem) error
	DeleteMenuItem(ctx context.Context, id uint) error

	CreateMenuCategory(ctx context.Context, category *model.MenuCategory) error
	DeleteMenuCategory(ctx context.Context, name string) error

	CreateOffer(ctx context.Context, offer *model.OfferItem) error
	UpdateOffer(ctx context.Context, offer *model.OfferItem) error
	DeleteOffer(ctx context.Context, id uint) error

	CreateReview(ctx context.Context, review *model.ReviewItem) error
	UpdateReview(ctx context.Context, review *model.ReviewItem) error
	DeleteReview(ctx context.Context, id uint) error

	CreateGalleryImage(ctx context.Context, image *model.GalleryImage) error
	DeleteGalleryImage(ctx context.Context, id uint) error

	CreateChef(ctx context.Context, chef *model.Chef) error
	UpdateChef(ctx context.Context, chef *model.Chef) error
	DeleteChef(ctx context.Context, id uint) error

	UpdateChefSpecial(ctx context.Context, special *model.ChefSpecial) error

	ReplaceFAQs(ctx context.Context, items []model.FAQItem) ([]model.FAQItem, error)

	UpdateContactInfo(ctx context.Context, info *model.ContactInfo) error
	UpdateAboutInfo(ctx context.Context, info *model.AboutInfo) error

	CreateReservation(ctx context.Context, reservation *model.ReservationItem) error
	UpdateReservation(ctx context.Context, reservation *model.ReservationItem) error
	DeleteReservation(ctx context.Context, id uint) error

	CreateContactMessage(ctx context.Context, message *model.ContactMessageItem) error
}

// ObjectStore uploads and deletes binary assets. Delete takes the public
// URL a record carries, not a raw key.
type ObjectStore interface {
	Upload(ctx context.Context, folder, filename, contentType string, body io.Reader) (string, error)
	Delete(ctx context.Context, url string) error
}

// Change identifies which table changed. The store does not care about row
// identity: any change triggers a debounced full refresh.
type Change struct {
	Table string
}

// ChangeFeed streams change notifications. Subscribe returns a cancel
// function that releases the subscription.
type ChangeFeed interface {
	Subscribe() (<-chan Change, func())
}

// Session describes an authenticated admin session.
type Session struct {
	UserID uint
	Email  string
	Token  string
}

// SessionSource resolves the current session once at startup and streams
// later sign-in and sign-out transitions. A nil session means anonymous.
type SessionSource interface {
	Resolve(ctx context.Context) (*Session, error)
	Subscribe() (<-chan *Session, func())
}

// Backend bundles everything the store needs. Feed and Sessions may be nil,
// in which case the store neither watches for changes nor tracks a session.
type Backend struct {
	Reader   ContentReader
	Writer   ContentWriter
	Objects  ObjectStore
	Feed     ChangeFeed
	Sessions SessionSource
}
