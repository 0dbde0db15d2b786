package http

import (
	"errors"
	"net/http"

	"github.com/Chopaholic/MotorAdverts/services/listing/internal/entity"
	"github.com/Chopaholic/MotorAdverts/services/listing/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DraftHandler struct {
	draftUseCase usecase.DraftUseCase
}

func NewDraftHandler(draftUseCase usecase.DraftUseCase) *DraftHandler {
	return &DraftHandler{
		draftUseCase: draftUseCase,
	}
}

type VehicleRequest struct {
	Category     string  `json:"category"`
	Make         string  `json:"make"`
	Model        string  `json:"model"`
	Year         *int    `json:"year"`
	Mileage      *int    `json:"mileage"`
	Fuel         string  `json:"fuel"`
	Transmission string  `json:"transmission"`
	Body         string  `json:"body"`
	Colour       string  `json:"colour"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
}

type ContactRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Postcode string `json:"postcode"`
}

type ReorderRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

type SetCoverRequest struct {
	Index int `json:"index"`
}

func respondDraftErr(c *gin.Context, err error) {
	var vErr *usecase.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message})
		return
	}
	if errors.Is(err, usecase.ErrNotSignedIn) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// GetDraft godoc
// @Summary      Get the current wizard draft
// @Tags         drafts
// @Produce      json
// @Success      200  {object}  entity.Draft
// @Failure      500  {object}  map[string]string
// @Security     BearerAuth
// @Router       /drafts/me [get]
func (h *DraftHandler) GetDraft(c *gin.Context) {
	draft, err := h.draftUseCase.GetDraft(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		respondDraftErr(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// SaveVehicle godoc
// @Summary      Save the vehicle details step
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        request body VehicleRequest true "Vehicle details"
// @Success      200  {object}  entity.Draft
// @Failure      400  {object}  map[string]string
// @Security     BearerAuth
// @Router       /drafts/me/vehicle [put]
func (h *DraftHandler) SaveVehicle(c *gin.Context) {
	var req VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft, err := h.draftUseCase.SaveVehicle(c.Request.Context(), c.GetString("user_id"), entity.Vehicle{
		Category:     req.Category,
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		Mileage:      req.Mileage,
		Fuel:         req.Fuel,
		Transmission: req.Transmission,
		Body:         req.Body,
		Colour:       req.Colour,
		Description:  req.Description,
		Price:        req.Price,
	})
	if err != nil {
		respondDraftErr(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// SaveContact godoc
// @Summary      Save the contact details step
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        request body ContactRequest true "Contact details"
// @Success      200  {object}  entity.Draft
// @Failure      400  {object}  map[string]string
// @Security     BearerAuth
// @Router       /drafts/me/contact [put]
func (h *DraftHandler) SaveContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft, err := h.draftUseCase.SaveContact(c.Request.Context(), c.GetString("user_id"), entity.Contact{
		Name:     req.Name,
		Phone:    req.Phone,
		Postcode: req.Postcode,
	})
	if err != nil {
		respondDraftErr(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// Advance godoc
// @Summary      Move the wizard forward one step
// @Description  Validates the current step before advancing
// @Tags         drafts
// @Produce      json
// @Success      200  {object}  entity.Draft
// @Failure      400  {object}  map[string]string
// @Security     BearerAuth
// @Router       /drafts/me/advance [post]
func (h *DraftHandler) Advance(c *gin.Context) {
	draft, err := h.draftUseCase.Advance(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		respondDraftErr(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// Back godoc
// @Summary      Move the wizard back one step
// @Tags         drafts
// @Produce      json
// @Success      200  {object}  entity.Draft
// @Security     BearerAuth
// @Router       /drafts/me/back [post]
func (h *DraftHandler) Back(c *gin.Context) {
	draft, err := h.draftUseCase.Back(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		respondDraftErr(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// AddPhotos godoc
// @Summary      Add photos to the draft
// @Description  Multipart upload; selections beyond the 20 photo cap are dropped
// @Tags         drafts
// @Accept       multipart/form-data
// @Produce      json
// @Param        photos formData file true "Photo files"
// @Success      200  {object}  entity.Draft
// @Failure      400  {object}  map[string]string
// @Security     BearerAuth
// @Router       /drafts/me/photos [post]
func (h *DraftHandler) AddPhotos(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	files := form.File["photos"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no photos provided"})
		return
	}

	selections := make([]usecase.PhotoSelection, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		selections = append(selections, usecase.PhotoSelection{
			FileName:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Data:        f,
		})
		defer f.Close()
	}

	draft, err := h.draftUseCase.AddPhotos(c.Request.Context(), c.GetString("user_id"), selections)
	if err != nil {
		respondDraftErr(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// ReorderPhoto godoc
// @Summary      Move a photo to a new position
// @Description  The photo is removed and reinserted, shifting the ones between
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        request body ReorderRequest true "From and to positions"
// @Success      200  {object}  entity.Draft
// @Failure      400  {object}  map[string]string
// @Security     BearerAuth
// @Router       /drafts/me/photos/reorder [post]
func (h *DraftHandler) ReorderPhoto(c *gin.Context) {
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft, err := h.draftUseCase.ReorderPhoto(c.Request.Context(), c.GetString("user_id"), req.From, req.To)
	if err != nil {
		respondDraftErr(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// SetCover godoc
// @Summary      Make a photo the cover
// @Description  Moves the chosen photo to the front of the list
// @Tags         drafts
// @Accept       json
// @Produce      json
// @Param        request body SetCoverRequest true "Photo position"
// @Success      200  {object}  entity.Draft
// @Failure      400  {object}  map[string]string
// @Security     BearerAuth
// @Router       /drafts/me/photos/cover [post]
func (h *DraftHandler) SetCover(c *gin.Context) {
	var req SetCoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft, err := h.draftUseCase.SetCover(c.Request.Context(), c.GetString("user_id"), req.Index)
	if err != nil {
		respondDraftErr(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// Publish godoc
// @Summary      Publish the draft as a live listing
// @Description  Re-validates every step, uploads photos in order and creates the listing
// @Tags         drafts
// @Produce      json
// @Success      201  {object}  entity.Listing
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Security     BearerAuth
// @Router       /drafts/me/publish [post]
func (h *DraftHandler) Publish(c *gin.Context) {
	listing, err := h.draftUseCase.Publish(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		respondDraftErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, listing)
}
