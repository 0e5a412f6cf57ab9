package controller

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/navjivan/navjivan-backend/internal/app/model"
	apperrors "github.com/navjivan/navjivan-backend/internal/errors"
	"github.com/navjivan/navjivan-backend/internal/middleware"
	"github.com/navjivan/navjivan-backend/internal/store"
)

// AdminController is the content management surface. Every route behind it
// requires an authenticated admin.
type AdminController struct {
	store *store.Store
}

func NewAdminController(contentStore *store.Store) *AdminController {
	return &AdminController{store: contentStore}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid ID")
		return 0, false
	}
	return uint(id), true
}

// findByID returns a copy of the record with the given ID. Full-replace
// updates look the existing row up first so created_at carries forward;
// a zero created_at would be persisted as-is and break newest-first
// ordering.
func findByID[T any](items []T, id uint, key func(T) uint) (T, bool) {
	for _, item := range items {
		if key(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// --- menu items ---

type MenuItemRequest struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	Price         float64 `json:"price" binding:"required,gt=0"`
	ImageURL      string  `json:"image_url"`
	Category      string  `json:"category" binding:"required"`
	IsHighlighted bool    `json:"is_highlighted"`
}

func (ctrl *AdminController) ListMenuItems(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": ctrl.store.MenuItems()})
}

func (ctrl *AdminController) CreateMenuItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, err.Error())
		return
	}

	item := &model.MenuItem{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		ImageURL:      req.ImageURL,
		Category:      req.Category,
		IsHighlighted: req.IsHighlighted,
	}
	if err := ctrl.store.AddMenuItem(c.Request.Context(), item); err != nil {
		log.Error("Failed to create menu item", err, map[string]interface{}{
			"name": req.Name,
		})
		info := apperrors.ParseError(err, "menu")
		apperrors.RespondWithError(c, http.StatusInternalServerError, info.Code, info.Message)
		return
	}

	log.Info("Menu item created", map[string]interface{}{
		"item_id": item.ID,
		"name":    item.Name,
	})
	c.JSON(http.StatusCreated, gin.H{"item": item})
}

func (ctrl *AdminController) UpdateMenuItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, err.Error())
		return
	}

	existing, ok := findByID(ctrl.store.MenuItems(), id, func(i model.MenuItem) uint { return i.ID })
	if !ok {
		apperrors.NotFound(c, apperrors.MenuItemNotFound, "Menu item not found")
		return
	}

	item := &model.MenuItem{
		ID:            id,
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		ImageURL:      req.ImageURL,
		Category:      req.Category,
		IsHighlighted: req.IsHighlighted,
		CreatedAt:     existing.CreatedAt,
	}
	if err := ctrl.store.UpdateMenuItem(c.Request.Context(), item); err != nil {
		log.Error("Failed to update menu item", err, map[string]interface{}{
			"item_id": id,
		})
		info := apperrors.ParseError(err, "menu")
		apperrors.RespondWithError(c, http.StatusInternalServerError, info.Code, info.Message)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

func (ctrl *AdminController) DeleteMenuItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctrl.store.DeleteMenuItem(c.Request.Context(), id); err != nil {
		log.Error("Failed to delete menu item", err, map[string]interface{}{
			"item_id": id,
		})
		info := apperrors.ParseError(err, "menu")
		apperrors.RespondWithError(c, http.StatusInternalServerError, info.Code, info.Message)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// --- menu categories ---

type MenuCategoryRequest struct {
	Name     string `json:"name" binding:"required"`
	Position int    `json:"position"`
}

func (ctrl *AdminController) ListMenuCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": ctrl.store.MenuCategories()})
}

func (ctrl *AdminController) CreateMenuCategory(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req MenuCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, err.Error())
		return
	}

	category := &model.MenuCategory{Name: req.Name, Position: req.Position}
	if err := ctrl.store.AddMenuCategory(c.Request.Context(), category); err != nil {
		log.Error("Failed to create menu category", err, map[string]interface{}{
			"name": req.Name,
		})
		info := apperrors.ParseError(err, "category")
		apperrors.RespondWithError(c, http.StatusConflict, info.Code, info.Message)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"category": category})
}

// DeleteMenuCategory removes the category by name. Menu items keep their
// category string; nothing cascades.
func (ctrl *AdminController) DeleteMenuCategory(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	name := c.Param("name")
	if name == "" {
		apperrors.BadRequest(c, apperrors.ValidationRequired, "Category name is required")
		return
	}
	if err := ctrl.store.DeleteMenuCategory(c.Request.Context(), name); err != nil {
		log.Error("Failed to delete menu category", err, map[string]interface{}{
			"name": name,
		})
		info := apperrors.ParseError(err, "category")
		apperrors.RespondWithError(c, http.StatusInternalServerError, info.Code, info.Message)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// --- offers ---

type OfferRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	ValidUntil  time.Time `json:"valid_until"`
}

func (ctrl *AdminController) ListOffers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"offers": ctrl.store.Offers()})
}

func (ctrl *AdminController) CreateOffer(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, err.Error())
		return
	}

	offer := &model.OfferItem{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		ValidUntil:  req.ValidUntil,
	}
	if err := ctrl.store.AddOffer(c.Request.Context(), offer); err != nil {
		log.Error("Failed to create offer", err, nil)
		info := apperrors.ParseError(err, "offer")
		apperrors.RespondWithError(c, http.StatusInternalServerError, info.Code, info.Message)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"offer": offer})
}

func (ctrl *AdminController) UpdateOffer(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, err.Error())
		return
	}

	existing, ok := findByID(ctrl.store.Offers(), id, func(o model.OfferItem) uint { return o.ID })
	if !ok {
		apperrors.NotFound(c, apperrors.ResourceNotFound, "Offer not found")
		return
	}

	offer := &model.OfferItem{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		ValidUntil:  req.ValidUntil,
		CreatedAt:   existing.CreatedAt,
	}
	if err := ctrl.store.UpdateOffer(c.Request.Context(), offer); err != nil {
		log.Error("Failed to update offer", err, map[string]interface{}{
			"offer_id": id,
		})
		info := apperrors.ParseError(err, "offer")
		apperrors.RespondWithError(c, http.StatusInternalServerError, info.Code, info.Message)
		return
	}
	c.JSON(http.StatusOK, gin.H{"offer": offer})
}

func (ctrl *AdminController) DeleteOffer(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctrl.store.DeleteOffer(c.Request.Context(), id); err != nil {
		log.Error("Failed to delete offer", err, map[string]interface{}{
			"offer_id": id,
		})
		info := apperrors.ParseError(err, "offer")
		apperrors.RespondWithError(c, http.StatusInternalServerError, info.Code, info.Message)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// --- reviews ---

type ReviewUpdateRequest struct {
	Name     string             `json:"name" binding:"required"`
	Rating   int                `json:"rating" binding:"required,min=1,max=5"`
	Comment  string             `json:"comment"`
	Status   model.ReviewStatus `json:"status" binding:"required,oneof=pending approved"`
	DishName string             `json:"dish_name"`
}

func (ctrl *AdminController) ListReviews(c *gin.Context) {
	reviews := ctrl.store.Reviews()
	if c.Query("status") == string(model.ReviewPending) {
		pending := make([]model.ReviewItem, 0, len(reviews))
		for _, r := range reviews {
			if r.Status == model.ReviewPending {
				pending = append(pending, r)
			}
		}
		reviews = pending
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews, "count": len(reviews)})
}

func (ctrl *AdminController) UpdateReview(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ReviewUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, err.Error())
		return
	}

	var existing *model.ReviewItem
	for _, r := range ctrl.store.Reviews() {
		if r.ID == id {
			copied := r
			existing = &copied
			break
		}
	}
	if existing == nil {
		apperrors.NotFound(c, apperrors.ReviewNotFound, "Review not found")
		return
	}

	existing.Name = req.Name
	existing.Rating = req.Rating
	existing.Comment = req.Comment
	existing.Status = req.Status
	existing.DishName = req.DishName

	if err := ctrl.store.UpdateReview(c.Request.Context(), existing); err != nil {
		log.Error("Failed to update review", err, map[string]interface{}{
			"review_id": id,
		})
		info := apperrors.ParseError(err, "review")
		apperrors.RespondWithError(c, http.StatusInternalServerError, info.Code, info.Message)
		return
	}
	c.JSON(http.StatusOK, gin.H{"review": existing})
}

func (ctrl *AdminController) DeleteReview(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctrl.store.DeleteReview(c.Request.Context(), id); err != nil {
		log.Error("Failed to delete review", err, map[string]interface{}{
			"review_id": id,
		})
		info := apperrors.ParseError(err, "review")
		apperrors.RespondWithError(c, http.StatusInternalServerError, info.Code, info.Message)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// --- gallery ---

type GalleryImageRequest struct {
	Src      string                `json:"src" binding:"required"`
	Alt      string                `json:"alt"`
	Category model.GalleryCategory `json:"category" binding:"required,oneof=Food Ambiance"`
}

func (ctrl *AdminController) ListGallery(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"images": ctrl.store.Gallery()})
}

func (ctrl *AdminController) CreateGalleryImage(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req GalleryImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, err.Error())
		return
	}

	image := &model.GalleryImage{Src: req.Src, Alt: req.Alt, Category: req.Category}
	if err := ctrl.store.AddGalleryImage(c.Request.Context(), image); err != nil {
		log.Error("Failed to add gallery image", err, nil)
		info := apperrors.ParseError(err, "gallery")
		apperrors.RespondWithError(c, http.StatusInternalServerError, info.Code, info.Message)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"image": image})
}

func (ctrl *AdminController) DeleteGalleryImage(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctrl.store.DeleteGalleryImage(c.Request.Context(), id); err != nil {
		log.Error("Failed to delete gallery image", err, map[string]interface{}{
			"image_id": id,
		})
		info := apperrors.ParseError(err, "gallery")
		apperrors.RespondWithError(c, http.StatusInternalServerError, info.Code, info.Message)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// --- chefs ---

type ChefRequest struct {
	Name     string `json:"name" binding:"required"`
	Title    string `json:"title"`
	Bio      string `json:"bio"`
	ImageURL string `json:"image_url"`
}

func (ctrl *AdminController) ListChefs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"chefs": ctrl.store.Chefs()})
}

func (ctrl *AdminController) CreateChef(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req ChefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, err.Error())
		return
	}

	chef := &model.Chef{Name: req.Name, Title: req.Title, Bio: req.Bio, ImageURL: req.ImageURL}
	if err := ctrl.store.AddChef(c.Request.Context(), chef); err != nil {
		log.Error("Failed to create chef", err, nil)
		info := apperrors.ParseError(err, "chef")
		apperrors.RespondWithError(c, http.StatusInternalServerError, info.Code, info.Message)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"chef": chef})
}

func (ctrl *AdminController) UpdateChef(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ChefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, err.Error())
		return
	}

	existing, ok := findByID(ctrl.store.Chefs(), id, func(ch model.Chef) uint { return ch.ID })
	if !ok {
		apperrors.NotFound(c, apperrors.ResourceNotFound, "Chef not found")
		return
	}

	chef := &model.Chef{
		ID:        id,
		Name:      req.Name,
		Title:     req.Title,
		Bio:       req.Bio,
		ImageURL:  req.ImageURL,
		CreatedAt: existing.CreatedAt,
	}
	if err := ctrl.store.UpdateChef(c.Request.Context(), chef); err != nil {
		log.Error("Failed to update chef", err, map[string]interface{}{
			"chef_id": id,
		})
		info := apperrors.ParseError(err, "chef")
		apperrors.RespondWithError(c, http.StatusInternalServerError, info.Code, info.Message)
		return
	}
	c.JSON(http.StatusOK, gin.H{"chef": chef})
}

func (ctrl *AdminController) DeleteChef(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctrl.store.DeleteChef(c.Request.Context(), id); err != nil {
		log.Error("Failed to delete chef", err, map[string]interface{}{
			"chef_id": id,
		})
		info := apperrors.ParseError(err, "chef")
		apperrors.RespondWithError(c, http.StatusInternalServerError, info.Code, info.Message)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

type ChefSpecialRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	ImageURL    string  `json:"image_url"`
}

func (ctrl *AdminController) UpdateChefSpecial(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req ChefSpecialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, err.Error())
		return
	}

	special := &model.ChefSpecial{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
	}
	if err := ctrl.store.UpdateChefSpecial(c.Request.Context(), special); err != nil {
		log.Error("Failed to update chef special", err, nil)
		info := apperrors.ParseError(err, "chef")
		apperrors.RespondWithError(c, http.StatusInternalServerError, info.Code, info.Message)
		return
	}
	c.JSON(http.StatusOK, gin.H{"special": special})
}

// --- faqs ---

type FAQListRequest struct {
	FAQs []struct {
		Question string `json:"question" binding:"required"`
		Answer   string `json:"answer" binding:"required"`
	} `json:"faqs" binding:"required"`
}

// ReplaceFAQs swaps the whole list in one request, the way the admin
// console edits FAQs. The response carries the fresh server rows.
func (ctrl *AdminController) ReplaceFAQs(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req FAQListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, err.Error())
		return
	}

	items := make([]model.FAQItem, len(req.FAQs))
	for i, f := range req.FAQs {
		items[i] = model.FAQItem{Question: f.Question, Answer: f.Answer}
	}

	if err := ctrl.store.ReplaceFAQs(c.Request.Context(), items); err != nil {
		log.Error("Failed to replace FAQs", err, nil)
		info := apperrors.ParseError(err, "faq")
		apperrors.RespondWithError(c, http.StatusInternalServerError, info.Code, info.Message)
		return
	}
	c.JSON(http.StatusOK, gin.H{"faqs": ctrl.store.FAQs()})
}

// --- site info ---

type ContactInfoRequest struct {
	Phone        string              `json:"phone" binding:"required"`
	Email        string              `json:"email" binding:"required,email"`
	Whatsapp     string              `json:"whatsapp"`
	Address      string              `json:"address" binding:"required"`
	MapURL       string              `json:"map_url"`
	OpeningHours []model.OpeningHour `json:"opening_hours"`
	Socials      model.SocialLinks   `json:"socials"`
}

func (ctrl *AdminController) UpdateContactInfo(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req ContactInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, err.Error())
		return
	}

	info := &model.ContactInfo{
		Phone:        req.Phone,
		Email:        req.Email,
		Whatsapp:     req.Whatsapp,
		Address:      req.Address,
		MapURL:       req.MapURL,
		OpeningHours: req.OpeningHours,
		Socials:      req.Socials,
	}
	if err := ctrl.store.UpdateContactInfo(c.Request.Context(), info); err != nil {
		log.Error("Failed to update contact info", err, nil)
		parsed := apperrors.ParseError(err, "info")
		apperrors.RespondWithError(c, http.StatusInternalServerError, parsed.Code, parsed.Message)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contact_info": info})
}

type AboutInfoRequest struct {
	Story              string   `json:"story" binding:"required"`
	Mission            string   `json:"mission"`
	Vision             string   `json:"vision"`
	WhyUs              []string `json:"why_us"`
	CulinaryPhilosophy string   `json:"culinary_philosophy"`
}

func (ctrl *AdminController) UpdateAboutInfo(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req AboutInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, err.Error())
		return
	}

	info := &model.AboutInfo{
		Story:              req.Story,
		Mission:            req.Mission,
		Vision:             req.Vision,
		WhyUs:              req.WhyUs,
		CulinaryPhilosophy: req.CulinaryPhilosophy,
	}
	if err := ctrl.store.UpdateAboutInfo(c.Request.Context(), info); err != nil {
		log.Error("Failed to update about info", err, nil)
		parsed := apperrors.ParseError(err, "info")
		apperrors.RespondWithError(c, http.StatusInternalServerError, parsed.Code, parsed.Message)
		return
	}
	c.JSON(http.StatusOK, gin.H{"about_info": info})
}

// --- reservations ---

type ReservationUpdateRequest struct {
	Name   string                  `json:"name" binding:"required"`
	Phone  string                  `json:"phone" binding:"required"`
	Date   string                  `json:"date" binding:"required"`
	Time   string                  `json:"time" binding:"required"`
	Guests int                     `json:"guests" binding:"required,min=1"`
	Status model.ReservationStatus `json:"status" binding:"required,oneof=Pending Confirmed Cancelled"`
}

func (ctrl *AdminController) ListReservations(c *gin.Context) {
	reservations := ctrl.store.Reservations()
	if status := c.Query("status"); status != "" {
		filtered := make([]model.ReservationItem, 0, len(reservations))
		for _, r := range reservations {
			if string(r.Status) == status {
				filtered = append(filtered, r)
			}
		}
		reservations = filtered
	}
	c.JSON(http.StatusOK, gin.H{"reservations": reservations, "count": len(reservations)})
}

func (ctrl *AdminController) UpdateReservation(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ReservationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, err.Error())
		return
	}

	existing, ok := findByID(ctrl.store.Reservations(), id, func(r model.ReservationItem) uint { return r.ID })
	if !ok {
		apperrors.NotFound(c, apperrors.ReservationNotFound, "Reservation not found")
		return
	}

	reservation := &model.ReservationItem{
		ID:        id,
		Name:      req.Name,
		Phone:     req.Phone,
		Date:      req.Date,
		Time:      req.Time,
		Guests:    req.Guests,
		Status:    req.Status,
		CreatedAt: existing.CreatedAt,
	}
	if err := ctrl.store.UpdateReservation(c.Request.Context(), reservation); err != nil {
		log.Error("Failed to update reservation", err, map[string]interface{}{
			"reservation_id": id,
		})
		info := apperrors.ParseError(err, "reservation")
		apperrors.RespondWithError(c, http.StatusInternalServerError, info.Code, info.Message)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservation": reservation})
}

func (ctrl *AdminController) DeleteReservation(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ctrl.store.DeleteReservation(c.Request.Context(), id); err != nil {
		log.Error("Failed to delete reservation", err, map[string]interface{}{
			"reservation_id": id,
		})
		info := apperrors.ParseError(err, "reservation")
		apperrors.RespondWithError(c, http.StatusInternalServerError, info.Code, info.Message)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// ExportReservations streams the reservation book as an XLSX workbook.
func (ctrl *AdminController) ExportReservations(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Reservations"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Name", "Phone", "Date", "Time", "Guests", "Status", "Created At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, r := range ctrl.store.Reservations() {
		values := []interface{}{
			r.ID, r.Name, r.Phone, r.Date, r.Time, r.Guests,
			string(r.Status), r.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	filename := fmt.Sprintf("reservations-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		log.Error("Failed to write reservations export", err, nil)
	}
}
