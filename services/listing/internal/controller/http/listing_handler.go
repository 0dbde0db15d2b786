package http

import (
	"errors"
	"net/http"

	"github.com/Chopaholic/MotorAdverts/services/listing/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	listingUseCase usecase.ListingUseCase
}

func NewListingHandler(listingUseCase usecase.ListingUseCase) *ListingHandler {
	return &ListingHandler{
		listingUseCase: listingUseCase,
	}
}

// GetListing godoc
// @Summary      Get a listing by id
// @Description  Public listing details; the contact postcode is never included
// @Tags         listings
// @Produce      json
// @Param        id path string true "Listing ID"
// @Success      200  {object}  entity.Listing
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /listings/{id} [get]
func (h *ListingHandler) GetListing(c *gin.Context) {
	listing, err := h.listingUseCase.GetListing(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrListingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "listing not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, listing)
}

// GetCategories godoc
// @Summary      List the available categories
// @Tags         listings
// @Produce      json
// @Success      200  {object}  map[string][]string
// @Router       /categories [get]
func (h *ListingHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.listingUseCase.Categories()})
}
