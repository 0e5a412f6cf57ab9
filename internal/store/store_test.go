package store

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navjivan/navjivan-backend/internal/app/model"
)

// fakeReader serves canned snapshots and can be told to fail per table.
type fakeReader struct {
	mu sync.Mutex

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

	fail       map[string]error
	fetchCalls int32
}

func (f *fakeReader) failWith(table string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail == nil {
		f.fail = make(map[string]error)
	}
	f.fail[table] = err
}

func (f *fakeReader) check(table string) error {
	atomic.AddInt32(&f.fetchCalls, 1)
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fail[table]
}

func (f *fakeReader) FetchMenuItems(ctx context.Context) ([]model.MenuItem, error) {
	if err := f.check("menu_items"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.MenuItem(nil), f.menuItems...), nil
}

func (f *fakeReader) FetchMenuCategories(ctx context.Context) ([]model.MenuCategory, error) {
	if err := f.check("menu_categories"); err != nil {
		return nil, err
	}
	return append([]model.MenuCategory(nil), f.menuCategories...), nil
}

func (f *fakeReader) FetchOffers(ctx context.Context) ([]model.OfferItem, error) {
	if err := f.check("offers"); err != nil {
		return nil, err
	}
	return append([]model.OfferItem(nil), f.offers...), nil
}

func (f *fakeReader) FetchReviews(ctx context.Context) ([]model.ReviewItem, error) {
	if err := f.check("reviews"); err != nil {
		return nil, err
	}
	return append([]model.ReviewItem(nil), f.reviews...), nil
}

func (f *fakeReader) FetchGallery(ctx context.Context) ([]model.GalleryImage, error) {
	if err := f.check("gallery_images"); err != nil {
		return nil, err
	}
	return append([]model.GalleryImage(nil), f.gallery...), nil
}

func (f *fakeReader) FetchChefs(ctx context.Context) ([]model.Chef, error) {
	if err := f.check("chefs"); err != nil {
		return nil, err
	}
	return append([]model.Chef(nil), f.chefs...), nil
}

func (f *fakeReader) FetchChefSpecial(ctx context.Context) (*model.ChefSpecial, error) {
	if err := f.check("chef_special"); err != nil {
		return nil, err
	}
	return f.chefSpecial, nil
}

func (f *fakeReader) FetchFAQs(ctx context.Context) ([]model.FAQItem, error) {
	if err := f.check("faqs"); err != nil {
		return nil, err
	}
	return append([]model.FAQItem(nil), f.faqs...), nil
}

func (f *fakeReader) FetchContactInfo(ctx context.Context) (*model.ContactInfo, error) {
	if err := f.check("contact_info"); err != nil {
		return nil, err
	}
	return f.contactInfo, nil
}

func (f *fakeReader) FetchAboutInfo(ctx context.Context) (*model.AboutInfo, error) {
	if err := f.check("about_info"); err != nil {
		return nil, err
	}
	return f.aboutInfo, nil
}

func (f *fakeReader) FetchReservations(ctx context.Context) ([]model.ReservationItem, error) {
	if err := f.check("reservations"); err != nil {
		return nil, err
	}
	return append([]model.ReservationItem(nil), f.reservations...), nil
}

// fakeWriter records mutations and assigns IDs on create.
type fakeWriter struct {
	mu     sync.Mutex
	nextID uint
	ops    []string

	createErr error

	lastReview      *model.ReviewItem
	lastReservation *model.ReservationItem
}

func (w *fakeWriter) record(op string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.ops = append(w.ops, op)
}

func (w *fakeWriter) assignID() uint {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextID++
	return w.nextID
}

func (w *fakeWriter) operations() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.ops...)
}

func (w *fakeWriter) CreateMenuItem(ctx context.Context, item *model.MenuItem) error {
	if w.createErr != nil {
		return w.createErr
	}
	item.ID = w.assignID()
	w.record("create menu_items")
	return nil
}

func (w *fakeWriter) UpdateMenuItem(ctx context.Context, item *model.MenuItem) error {
	w.record("update menu_items")
	return nil
}

func (w *fakeWriter) DeleteMenuItem(ctx context.Context, id uint) error {
	w.record("delete menu_items")
	return nil
}

func (w *fakeWriter) CreateMenuCategory(ctx context.Context, category *model.MenuCategory) error {
	category.ID = w.assignID()
	w.record("create menu_categories")
	return nil
}

func (w *fakeWriter) DeleteMenuCategory(ctx context.Context, name string) error {
	w.record("delete menu_categories")
	return nil
}

func (w *fakeWriter) CreateOffer(ctx context.Context, offer *model.OfferItem) error {
	offer.ID = w.assignID()
	w.record("create offers")
	return nil
}

func (w *fakeWriter) UpdateOffer(ctx context.Context, offer *model.OfferItem) error {
	w.record("update offers")
	return nil
}

func (w *fakeWriter) DeleteOffer(ctx context.Context, id uint) error {
	w.record("delete offers")
	return nil
}

func (w *fakeWriter) CreateReview(ctx context.Context, review *model.ReviewItem) error {
	review.ID = w.assignID()
	copied := *review
	w.mu.Lock()
	w.lastReview = &copied
	w.mu.Unlock()
	w.record("create reviews")
	return nil
}

func (w *fakeWriter) UpdateReview(ctx context.Context, review *model.ReviewItem) error {
	w.record("update reviews")
	return nil
}

func (w *fakeWriter) DeleteReview(ctx context.Context, id uint) error {
	w.record("delete reviews")
	return nil
}

func (w *fakeWriter) CreateGalleryImage(ctx context.Context, image *model.GalleryImage) error {
	image.ID = w.assignID()
	w.record("create gallery_images")
	return nil
}

func (w *fakeWriter) DeleteGalleryImage(ctx context.Context, id uint) error {
	w.record("delete gallery_images")
	return nil
}

func (w *fakeWriter) CreateChef(ctx context.Context, chef *model.Chef) error {
	chef.ID = w.assignID()
	w.record("create chefs")
	return nil
}

func (w *fakeWriter) UpdateChef(ctx context.Context, chef *model.Chef) error {
	w.record("update chefs")
	return nil
}

func (w *fakeWriter) DeleteChef(ctx context.Context, id uint) error {
	w.record("delete chefs")
	return nil
}

func (w *fakeWriter) UpdateChefSpecial(ctx context.Context, special *model.ChefSpecial) error {
	w.record("update chef_special")
	return nil
}

func (w *fakeWriter) ReplaceFAQs(ctx context.Context, items []model.FAQItem) ([]model.FAQItem, error) {
	w.record("replace faqs")
	fresh := make([]model.FAQItem, len(items))
	for i, item := range items {
		fresh[i] = model.FAQItem{
			ID:       w.assignID() + 100,
			Question: item.Question,
			Answer:   item.Answer,
		}
	}
	return fresh, nil
}

func (w *fakeWriter) UpdateContactInfo(ctx context.Context, info *model.ContactInfo) error {
	w.record("update contact_info")
	return nil
}

func (w *fakeWriter) UpdateAboutInfo(ctx context.Context, info *model.AboutInfo) error {
	w.record("update about_info")
	return nil
}

func (w *fakeWriter) CreateReservation(ctx context.Context, reservation *model.ReservationItem) error {
	reservation.ID = w.assignID()
	copied := *reservation
	w.mu.Lock()
	w.lastReservation = &copied
	w.mu.Unlock()
	w.record("create reservations")
	return nil
}

func (w *fakeWriter) UpdateReservation(ctx context.Context, reservation *model.ReservationItem) error {
	w.record("update reservations")
	return nil
}

func (w *fakeWriter) DeleteReservation(ctx context.Context, id uint) error {
	w.record("delete reservations")
	return nil
}

func (w *fakeWriter) CreateContactMessage(ctx context.Context, message *model.ContactMessageItem) error {
	message.ID = w.assignID()
	w.record("create contact_messages")
	return nil
}

// fakeObjects treats URLs under managed/ as its own and everything else as
// foreign.
type fakeObjects struct {
	mu        sync.Mutex
	uploaded  []string
	deleted   []string
	deleteErr error
}

func (o *fakeObjects) Upload(ctx context.Context, folder, filename, contentType string, body io.Reader) (string, error) {
	url := "https://managed.example.com/" + folder + "/" + filename
	o.mu.Lock()
	o.uploaded = append(o.uploaded, url)
	o.mu.Unlock()
	return url, nil
}

func (o *fakeObjects) Delete(ctx context.Context, url string) error {
	if !strings.HasPrefix(url, "https://managed.example.com/") {
		return ErrForeignURL
	}
	if o.deleteErr != nil {
		return o.deleteErr
	}
	o.mu.Lock()
	o.deleted = append(o.deleted, url)
	o.mu.Unlock()
	return nil
}

func (o *fakeObjects) deletedURLs() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.deleted...)
}

// fakeFeed lets a test push change events by hand.
type fakeFeed struct {
	ch chan Change
}

func newFakeFeed() *fakeFeed {
	return &fakeFeed{ch: make(chan Change, 32)}
}

func (f *fakeFeed) Subscribe() (<-chan Change, func()) {
	return f.ch, func() {}
}

func newTestStore(reader *fakeReader, writer *fakeWriter, objects *fakeObjects) *Store {
	return New(Backend{
		Reader:  reader,
		Writer:  writer,
		Objects: objects,
	}, Options{DebounceWindow: 20 * time.Millisecond})
}

func seededReader() *fakeReader {
	return &fakeReader{
		menuItems: []model.MenuItem{
			{ID: 1, Name: "Paneer Tikka", Category: "Starters", ImageURL: "https://managed.example.com/menu/paneer.jpg"},
			{ID: 2, Name: "Dal Makhani", Category: "Main Course"},
		},
		menuCategories: []model.MenuCategory{
			{ID: 1, Name: "Starters", Position: 0},
			{ID: 2, Name: "Main Course", Position: 1},
		},
		offers: []model.OfferItem{
			{ID: 1, Title: "Family Feast", ImageURL: "https://managed.example.com/offers/feast.jpg"},
		},
		reviews: []model.ReviewItem{
			{ID: 1, Name: "Asha", Rating: 5, Status: model.ReviewApproved},
			{ID: 2, Name: "Ravi", Rating: 4, Status: model.ReviewPending},
		},
		gallery: []model.GalleryImage{
			{ID: 1, Src: "https://managed.example.com/gallery/dining.jpg", Category: model.GalleryAmbiance},
		},
		chefs: []model.Chef{
			{ID: 1, Name: "Chef Arjun", ImageURL: "https://managed.example.com/chefs/arjun.jpg"},
		},
		chefSpecial: &model.ChefSpecial{ID: model.SingletonID, Name: "Thali Royale"},
		faqs: []model.FAQItem{
			{ID: 1, Question: "Do you take walk-ins?", Answer: "Yes"},
		},
		contactInfo: &model.ContactInfo{ID: model.SingletonID, Phone: "+91 1234"},
		aboutInfo:   &model.AboutInfo{ID: model.SingletonID, Story: "Since 1985"},
		reservations: []model.ReservationItem{
			{ID: 1, Name: "Meera", Status: model.ReservationConfirmed},
		},
	}
}

func TestRefreshAllReplacesEveryCollection(t *testing.T) {
	reader := seededReader()
	s := newTestStore(reader, &fakeWriter{}, &fakeObjects{})

	assert.False(t, s.Loaded())
	s.RefreshAll(context.Background())

	assert.True(t, s.Loaded())
	assert.Len(t, s.MenuItems(), 2)
	assert.Len(t, s.MenuCategories(), 2)
	assert.Len(t, s.Offers(), 1)
	assert.Len(t, s.Reviews(), 2)
	assert.Len(t, s.Gallery(), 1)
	assert.Len(t, s.Chefs(), 1)
	require.NotNil(t, s.ChefSpecial())
	assert.Equal(t, "Thali Royale", s.ChefSpecial().Name)
	assert.Len(t, s.FAQs(), 1)
	require.NotNil(t, s.ContactInfo())
	require.NotNil(t, s.AboutInfo())
	assert.Len(t, s.Reservations(), 1)

	// A second refresh with shrunk source data replaces wholesale
	reader.mu.Lock()
	reader.menuItems = reader.menuItems[:1]
	reader.mu.Unlock()
	s.RefreshAll(context.Background())
	assert.Len(t, s.MenuItems(), 1)
}

func TestRefreshAllTwiceWithUnchangedDataIsIdentical(t *testing.T) {
	reader := seededReader()
	s := newTestStore(reader, &fakeWriter{}, &fakeObjects{})
	s.RefreshAll(context.Background())

	menuItems := s.MenuItems()
	menuCategories := s.MenuCategories()
	offers := s.Offers()
	reviews := s.Reviews()
	gallery := s.Gallery()
	chefs := s.Chefs()
	special := s.ChefSpecial()
	faqs := s.FAQs()
	contactInfo := s.ContactInfo()
	aboutInfo := s.AboutInfo()
	reservations := s.Reservations()

	s.RefreshAll(context.Background())

	assert.True(t, s.Loaded())
	assert.Equal(t, menuItems, s.MenuItems())
	assert.Equal(t, menuCategories, s.MenuCategories())
	assert.Equal(t, offers, s.Offers())
	assert.Equal(t, reviews, s.Reviews())
	assert.Equal(t, gallery, s.Gallery())
	assert.Equal(t, chefs, s.Chefs())
	assert.Equal(t, special, s.ChefSpecial())
	assert.Equal(t, faqs, s.FAQs())
	assert.Equal(t, contactInfo, s.ContactInfo())
	assert.Equal(t, aboutInfo, s.AboutInfo())
	assert.Equal(t, reservations, s.Reservations())
}

func TestRefreshAllKeepsFailedCollections(t *testing.T) {
	reader := seededReader()
	s := newTestStore(reader, &fakeWriter{}, &fakeObjects{})
	s.RefreshAll(context.Background())
	require.Len(t, s.Reviews(), 2)

	reader.failWith("reviews", errors.New("connection reset"))
	reader.mu.Lock()
	reader.menuItems = append(reader.menuItems, model.MenuItem{ID: 3, Name: "Gulab Jamun"})
	reader.mu.Unlock()

	s.RefreshAll(context.Background())

	// Failed collection keeps its previous contents, others advance
	assert.Len(t, s.Reviews(), 2)
	assert.Len(t, s.MenuItems(), 3)
	assert.True(t, s.Loaded())
}

func TestRefreshAllLoadedDespiteTotalFailure(t *testing.T) {
	reader := &fakeReader{}
	for _, table := range []string{
		"menu_items", "menu_categories", "offers", "reviews", "gallery_images",
		"chefs", "chef_special", "faqs", "contact_info", "about_info", "reservations",
	} {
		reader.failWith(table, errors.New("db down"))
	}
	s := newTestStore(reader, &fakeWriter{}, &fakeObjects{})

	s.RefreshAll(context.Background())
	assert.True(t, s.Loaded())
	assert.Empty(t, s.MenuItems())
}

func TestSortedMenuItemsFollowsCategoryPosition(t *testing.T) {
	reader := seededReader()
	reader.menuCategories = []model.MenuCategory{
		{ID: 1, Name: "Main Course", Position: 0},
		{ID: 2, Name: "Starters", Position: 1},
	}
	s := newTestStore(reader, &fakeWriter{}, &fakeObjects{})
	s.RefreshAll(context.Background())

	items := s.SortedMenuItems()
	require.Len(t, items, 2)
	assert.Equal(t, "Dal Makhani", items[0].Name)
	assert.Equal(t, "Paneer Tikka", items[1].Name)
}

func TestAddReviewForcesPendingStatus(t *testing.T) {
	writer := &fakeWriter{}
	s := newTestStore(seededReader(), writer, &fakeObjects{})

	review := &model.ReviewItem{Name: "Kiran", Rating: 5, Status: model.ReviewApproved}
	err := s.AddReview(context.Background(), review)

	require.NoError(t, err)
	assert.Equal(t, model.ReviewPending, writer.lastReview.Status)
	assert.False(t, writer.lastReview.ReviewDate.IsZero())
}

func TestAddReservationForcesPendingStatus(t *testing.T) {
	writer := &fakeWriter{}
	s := newTestStore(seededReader(), writer, &fakeObjects{})

	reservation := &model.ReservationItem{
		Name: "Devi", Phone: "98765", Date: "2026-09-15", Time: "19:30",
		Guests: 4, Status: model.ReservationConfirmed,
	}
	err := s.AddReservation(context.Background(), reservation)

	require.NoError(t, err)
	assert.Equal(t, model.ReservationPending, writer.lastReservation.Status)
	assert.Len(t, s.Reservations(), 1)
}

func TestDeleteMenuItemRemovesAssetFirst(t *testing.T) {
	writer := &fakeWriter{}
	objects := &fakeObjects{}
	s := newTestStore(seededReader(), writer, objects)
	s.RefreshAll(context.Background())

	err := s.DeleteMenuItem(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, []string{"https://managed.example.com/menu/paneer.jpg"}, objects.deletedURLs())
	assert.Contains(t, writer.operations(), "delete menu_items")
	assert.Len(t, s.MenuItems(), 1)
}

func TestDeleteMenuItemProceedsWhenAssetDeleteFails(t *testing.T) {
	writer := &fakeWriter{}
	objects := &fakeObjects{deleteErr: errors.New("s3 unavailable")}
	s := newTestStore(seededReader(), writer, objects)
	s.RefreshAll(context.Background())

	err := s.DeleteMenuItem(context.Background(), 1)

	require.NoError(t, err)
	assert.Contains(t, writer.operations(), "delete menu_items")
	assert.Len(t, s.MenuItems(), 1)
}

func TestUpdateMenuItemCleansUpReplacedImage(t *testing.T) {
	objects := &fakeObjects{}
	s := newTestStore(seededReader(), &fakeWriter{}, objects)
	s.RefreshAll(context.Background())

	updated := &model.MenuItem{
		ID: 1, Name: "Paneer Tikka", Category: "Starters",
		ImageURL: "https://managed.example.com/menu/paneer-v2.jpg",
	}
	err := s.UpdateMenuItem(context.Background(), updated)

	require.NoError(t, err)
	assert.Equal(t, []string{"https://managed.example.com/menu/paneer.jpg"}, objects.deletedURLs())
	assert.Equal(t, "https://managed.example.com/menu/paneer-v2.jpg", s.MenuItems()[0].ImageURL)
}

func TestUpdateMenuItemKeepsUnchangedImage(t *testing.T) {
	objects := &fakeObjects{}
	s := newTestStore(seededReader(), &fakeWriter{}, objects)
	s.RefreshAll(context.Background())

	updated := &model.MenuItem{
		ID: 1, Name: "Paneer Tikka Deluxe", Category: "Starters",
		ImageURL: "https://managed.example.com/menu/paneer.jpg",
	}
	err := s.UpdateMenuItem(context.Background(), updated)

	require.NoError(t, err)
	assert.Empty(t, objects.deletedURLs())
}

func TestDeleteImageIgnoresForeignURLs(t *testing.T) {
	objects := &fakeObjects{}
	s := newTestStore(seededReader(), &fakeWriter{}, objects)

	err := s.DeleteImage(context.Background(), "https://images.unsplash.com/photo-1")
	require.NoError(t, err)
	assert.Empty(t, objects.deletedURLs())

	err = s.DeleteImage(context.Background(), "")
	require.NoError(t, err)
}

func TestReplaceFAQsTakesFreshServerRows(t *testing.T) {
	s := newTestStore(seededReader(), &fakeWriter{}, &fakeObjects{})
	s.RefreshAll(context.Background())

	err := s.ReplaceFAQs(context.Background(), []model.FAQItem{
		{ID: 999, Question: "Parking?", Answer: "Yes, free"},
		{Question: "Delivery?", Answer: "Within 5 km"},
	})

	require.NoError(t, err)
	faqs := s.FAQs()
	require.Len(t, faqs, 2)
	// IDs come from the backend, not the submitted rows
	assert.NotEqual(t, uint(999), faqs[0].ID)
	assert.Equal(t, "Parking?", faqs[0].Question)
	assert.Equal(t, "Delivery?", faqs[1].Question)
}

func TestMutationFailureLeavesMirrorUntouched(t *testing.T) {
	writer := &fakeWriter{createErr: errors.New("constraint violation")}
	s := newTestStore(seededReader(), writer, &fakeObjects{})
	s.RefreshAll(context.Background())

	err := s.AddMenuItem(context.Background(), &model.MenuItem{Name: "Broken"})

	require.Error(t, err)
	assert.Len(t, s.MenuItems(), 2)
}

func TestDeleteMenuCategoryLeavesItemsAlone(t *testing.T) {
	s := newTestStore(seededReader(), &fakeWriter{}, &fakeObjects{})
	s.RefreshAll(context.Background())

	err := s.DeleteMenuCategory(context.Background(), "Starters")

	require.NoError(t, err)
	assert.Len(t, s.MenuCategories(), 1)
	// Items that referenced the deleted category stay
	assert.Len(t, s.MenuItems(), 2)
}

func TestUpdateChefSpecialPinsSingletonID(t *testing.T) {
	s := newTestStore(seededReader(), &fakeWriter{}, &fakeObjects{})
	s.RefreshAll(context.Background())

	err := s.UpdateChefSpecial(context.Background(), &model.ChefSpecial{ID: 42, Name: "New Special"})

	require.NoError(t, err)
	require.NotNil(t, s.ChefSpecial())
	assert.Equal(t, model.SingletonID, s.ChefSpecial().ID)
	assert.Equal(t, "New Special", s.ChefSpecial().Name)
}

func TestApprovedReviewsFiltersPending(t *testing.T) {
	s := newTestStore(seededReader(), &fakeWriter{}, &fakeObjects{})
	s.RefreshAll(context.Background())

	approved := s.ApprovedReviews()
	require.Len(t, approved, 1)
	assert.Equal(t, "Asha", approved[0].Name)
}

func TestChangeEventsDebounceIntoOneRefresh(t *testing.T) {
	reader := seededReader()
	feed := newFakeFeed()
	s := New(Backend{
		Reader:  reader,
		Writer:  &fakeWriter{},
		Objects: &fakeObjects{},
		Feed:    feed,
	}, Options{DebounceWindow: 30 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)
	defer s.Close()

	after := atomic.LoadInt32(&reader.fetchCalls)

	// A burst of events inside the window collapses into one refresh
	feed.ch <- Change{Table: "menu_items"}
	feed.ch <- Change{Table: "offers"}
	feed.ch <- Change{Table: "reviews"}

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&reader.fetchCalls) == after+11
	}, time.Second, 10*time.Millisecond)

	// And stays at exactly one refresh once the window is quiet
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, after+11, atomic.LoadInt32(&reader.fetchCalls))
}
