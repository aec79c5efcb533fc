package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"mindloo/database/repository/docstore"
)

// uniqueCheck rejects an insert when another document already holds the same
// value in the given field (natural-key uniqueness, e.g. email).
type uniqueCheck[T any] struct {
	field string
	value func(*T) string
	label string // noun used in the conflict message, e.g. "email"
}

// crudHandlers serves the plain CRUD surface for one entity collection. The
// scheduling endpoints have their own handler; everything here is simple
// field storage.
type crudHandlers[T any] struct {
	store  *docstore.Store[T]
	noun   string // capitalized, for messages: "Patient"
	key    string // JSON payload key and response field: "patient"
	idJSON string // id field name in JSON/bson: "patientId"

	prepare   func(*T)          // assigns generated id and timestamps before insert
	idOf      func(*T) string   // reads the id off a bound document
	unique    []uniqueCheck[T]  // natural-key checks run before insert
	altLookup string            // optional fallback field for GET :id, e.g. "email"
}

func (h *crudHandlers[T]) create(c *gin.Context) {
	var doc T
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	for _, check := range h.unique {
		value := check.value(&doc)
		if value == "" {
			continue
		}
		existing, err := h.store.FindOneByField(c.Request.Context(), check.field, value)
		if err != nil {
			h.serverError(c, "creating", err)
			return
		}
		if existing != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": fmt.Sprintf("%s with %s %s already exists", h.noun, check.label, value),
			})
			return
		}
	}

	if h.prepare != nil {
		h.prepare(&doc)
	}
	if err := h.store.Insert(c.Request.Context(), &doc); err != nil {
		h.serverError(c, "creating", err)
		return
	}

	getLogger(c).Info(h.key+" created", zap.String(h.idJSON, h.idOf(&doc)))
	c.JSON(http.StatusCreated, gin.H{"message": h.noun + " created successfully", h.key: doc})
}

func (h *crudHandlers[T]) list(c *gin.Context) {
	docs, err := h.store.FindAll(c.Request.Context())
	if err != nil {
		h.serverError(c, "fetching", err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (h *crudHandlers[T]) get(c *gin.Context) {
	id := c.Param("id")
	doc, err := h.store.FindByID(c.Request.Context(), id)
	if err != nil {
		h.serverError(c, "fetching", err)
		return
	}
	if doc == nil && h.altLookup != "" {
		doc, err = h.store.FindOneByField(c.Request.Context(), h.altLookup, id)
		if err != nil {
			h.serverError(c, "fetching", err)
			return
		}
	}
	if doc == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("No %s found with ID %s", h.key, id)})
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *crudHandlers[T]) patch(c *gin.Context) {
	id := c.Param("id")
	var patch bson.M
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}
	// The id and timestamps are not patchable.
	delete(patch, h.idJSON)
	delete(patch, "createdAt")
	delete(patch, "updatedAt")
	if len(patch) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No updatable fields provided"})
		return
	}

	doc, err := h.store.UpdateByID(c.Request.Context(), id, patch)
	if err != nil {
		h.serverError(c, "updating", err)
		return
	}
	if doc == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("No %s found with ID %s", h.key, id)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": h.noun + " updated successfully", h.key: doc})
}

func (h *crudHandlers[T]) delete(c *gin.Context) {
	id := c.Param("id")
	deleted, err := h.store.DeleteByID(c.Request.Context(), id)
	if err != nil {
		h.serverError(c, "deleting", err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("No %s found with ID %s", h.key, id)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": h.noun + " deleted successfully", h.idJSON: id})
}

func (h *crudHandlers[T]) serverError(c *gin.Context, action string, err error) {
	message := fmt.Sprintf("Error %s %s", action, h.key)
	getLogger(c).Error(message, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"message": message, "error": err.Error()})
}

// Register mounts the five CRUD routes on the group.
func (h *crudHandlers[T]) Register(rg *gin.RouterGroup) {
	rg.POST("", h.create)
	rg.GET("", h.list)
	rg.GET("/:id", h.get)
	rg.PATCH("/:id", h.patch)
	rg.DELETE("/:id", h.delete)
}
