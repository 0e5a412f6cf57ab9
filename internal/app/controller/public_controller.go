package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/navjivan/navjivan-backend/internal/app/model"
	"github.com/navjivan/navjivan-backend/internal/app/service"
	"github.com/navjivan/navjivan-backend/internal/middleware"
	"github.com/navjivan/navjivan-backend/internal/store"
)

// PublicController serves the site's read endpoints from the in-memory
// content mirror, and takes guest submissions (reservations, reviews,
// contact messages). Guest submissions report success as a boolean so the
// site can show a friendly notice without surfacing backend details.
type PublicController struct {
	store         *store.Store
	notifications service.NotificationService
}

func NewPublicController(contentStore *store.Store, notifications service.NotificationService) *PublicController {
	return &PublicController{store: contentStore, notifications: notifications}
}

func (ctrl *PublicController) GetMenu(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"items":      ctrl.store.SortedMenuItems(),
		"categories": ctrl.store.MenuCategories(),
	})
}

func (ctrl *PublicController) GetOffers(c *gin.Context) {
	offers := ctrl.store.ActiveOffers()
	c.JSON(http.StatusOK, gin.H{
		"offers": offers,
		"count":  len(offers),
	})
}

func (ctrl *PublicController) GetReviews(c *gin.Context) {
	reviews := ctrl.store.ApprovedReviews()
	c.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
		"count":   len(reviews),
	})
}

func (ctrl *PublicController) GetGallery(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"images": ctrl.store.Gallery(),
	})
}

func (ctrl *PublicController) GetChefs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"chefs":   ctrl.store.Chefs(),
		"special": ctrl.store.ChefSpecial(),
	})
}

func (ctrl *PublicController) GetFAQs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"faqs": ctrl.store.FAQs(),
	})
}

func (ctrl *PublicController) GetContactInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"contact_info": ctrl.store.ContactInfo(),
	})
}

func (ctrl *PublicController) GetAboutInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"about_info": ctrl.store.AboutInfo(),
	})
}

type ReservationRequest struct {
	Name   string `json:"name" binding:"required"`
	Phone  string `json:"phone" binding:"required"`
	Date   string `json:"date" binding:"required"`
	Time   string `json:"time" binding:"required"`
	Guests int    `json:"guests" binding:"required,min=1"`
}

// CreateReservation books a table. The reservation always starts Pending.
func (ctrl *PublicController) CreateReservation(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid reservation request", map[string]interface{}{
			"error": err.Error(),
		})
		c.JSON(http.StatusOK, gin.H{"success": false})
		return
	}

	reservation := &model.ReservationItem{
		Name:   req.Name,
		Phone:  req.Phone,
		Date:   req.Date,
		Time:   req.Time,
		Guests: req.Guests,
	}

	if err := ctrl.store.AddReservation(c.Request.Context(), reservation); err != nil {
		log.Error("Failed to create reservation", err, map[string]interface{}{
			"name": req.Name,
			"date": req.Date,
		})
		c.JSON(http.StatusOK, gin.H{"success": false})
		return
	}

	if ctrl.notifications != nil {
		ctrl.notifications.NotifyReservation(reservation)
	}

	log.Info("Reservation created", map[string]interface{}{
		"reservation_id": reservation.ID,
		"date":           reservation.Date,
		"guests":         reservation.Guests,
	})

	c.JSON(http.StatusOK, gin.H{"success": true})
}

type ReviewRequest struct {
	Name     string `json:"name" binding:"required"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Comment  string `json:"comment" binding:"required"`
	DishName string `json:"dish_name"`
}

// CreateReview takes a guest review. It enters as pending and stays off the
// public page until an admin approves it.
func (ctrl *PublicController) CreateReview(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid review request", map[string]interface{}{
			"error": err.Error(),
		})
		c.JSON(http.StatusOK, gin.H{"success": false})
		return
	}

	review := &model.ReviewItem{
		Name:     req.Name,
		Rating:   req.Rating,
		Comment:  req.Comment,
		DishName: req.DishName,
	}

	if err := ctrl.store.AddReview(c.Request.Context(), review); err != nil {
		log.Error("Failed to create review", err, map[string]interface{}{
			"name": req.Name,
		})
		c.JSON(http.StatusOK, gin.H{"success": false})
		return
	}

	log.Info("Review submitted", map[string]interface{}{
		"review_id": review.ID,
		"rating":    review.Rating,
	})

	c.JSON(http.StatusOK, gin.H{"success": true})
}

type ContactMessageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

func (ctrl *PublicController) CreateContactMessage(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req ContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid contact message request", map[string]interface{}{
			"error": err.Error(),
		})
		c.JSON(http.StatusOK, gin.H{"success": false})
		return
	}

	message := &model.ContactMessageItem{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}

	if err := ctrl.store.AddContactMessage(c.Request.Context(), message); err != nil {
		log.Error("Failed to save contact message", err, map[string]interface{}{
			"email": req.Email,
		})
		c.JSON(http.StatusOK, gin.H{"success": false})
		return
	}

	if ctrl.notifications != nil {
		ctrl.notifications.NotifyContactMessage(message)
	}

	log.Info("Contact message received", map[string]interface{}{
		"message_id": message.ID,
	})

	c.JSON(http.StatusOK, gin.H{"success": true})
}
