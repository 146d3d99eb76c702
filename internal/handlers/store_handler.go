package handlers

import (
	"fmt"
	"log"
	"strings"

	"inventory/internal/models"
	"inventory/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// StoreHandler handles HTTP requests for stores.
type StoreHandler struct {
	service  *services.StoreService
	validate *validator.Validate
}

// NewStoreHandler creates a new StoreHandler.
func NewStoreHandler(service *services.StoreService) *StoreHandler {
	return &StoreHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the store routes with the Fiber app.
func (h *StoreHandler) RegisterRoutes(router fiber.Router) {
	storeRoutes := router.Group("/stores")
	storeRoutes.Get("/", h.HandleGetStores)
	storeRoutes.Get("/:id", h.HandleGetStoreByID)
	storeRoutes.Post("/", h.HandleCreateStore)
	storeRoutes.Patch("/:id", h.HandleUpdateStore)
	storeRoutes.Delete("/:id", h.HandleDeleteStore)
}

// HandleGetStores retrieves all stores.
func (h *StoreHandler) HandleGetStores(c *fiber.Ctx) error {
	stores, err := h.service.GetAllStores()
	if err != nil {
		log.Printf("Error getting all stores: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve stores",
			"error":   err.Error(),
		})
	}
	return c.JSON(stores)
}

// HandleGetStoreByID retrieves a single store by its ID.
func (h *StoreHandler) HandleGetStoreByID(c *fiber.Ctx) error {
	storeID := c.Params("id")
	store, err := h.service.GetStoreByID(storeID)
	if err != nil {
		log.Printf("Error getting store by ID %s: %v", storeID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Store with ID %s not found", storeID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve store",
			"error":   err.Error(),
		})
	}
	return c.JSON(store)
}

// HandleCreateStore creates a new store.
func (h *StoreHandler) HandleCreateStore(c *fiber.Ctx) error {
	var store models.Store
	if err := c.BodyParser(&store); err != nil {
		log.Printf("Error parsing store request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(store); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationErrorMessages(err),
		})
	}

	if err := h.service.CreateStore(&store); err != nil {
		log.Printf("Error creating store: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create store",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(store)
}

// HandleUpdateStore applies a partial update to a store.
func (h *StoreHandler) HandleUpdateStore(c *fiber.Ctx) error {
	storeID := c.Params("id")
	var update models.StoreUpdate
	if err := c.BodyParser(&update); err != nil {
		log.Printf("Error parsing store update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationErrorMessages(err),
		})
	}

	store, err := h.service.UpdateStore(storeID, update)
	if err != nil {
		log.Printf("Error updating store %s: %v", storeID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Store with ID %s not found", storeID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update store",
			"error":   err.Error(),
		})
	}
	return c.JSON(store)
}

// HandleDeleteStore deletes a store and all of its products.
func (h *StoreHandler) HandleDeleteStore(c *fiber.Ctx) error {
	storeID := c.Params("id")
	if err := h.service.DeleteStore(storeID); err != nil {
		log.Printf("Error deleting store %s: %v", storeID, err)
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Store with ID %s not found", storeID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete store",
			"error":   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// validationErrorMessages flattens validator errors into a field->message map.
func validationErrorMessages(err error) map[string]string {
	errorMessages := make(map[string]string)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
	}
	return errorMessages
}
