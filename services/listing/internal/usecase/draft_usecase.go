package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/Chopaholic/MotorAdverts/pkg/logger"
	"github.com/Chopaholic/MotorAdverts/pkg/postcode"
	"github.com/Chopaholic/MotorAdverts/pkg/queue"
	"github.com/Chopaholic/MotorAdverts/services/listing/internal/entity"
	"github.com/Chopaholic/MotorAdverts/services/listing/internal/repo/draftstore"
	"github.com/Chopaholic/MotorAdverts/services/listing/internal/repo/persistent"

	"github.com/google/uuid"
)

// ValidationError carries a message meant for the seller verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErr(msg string) error {
	return &ValidationError{Message: msg}
}

var ErrNotSignedIn = errors.New("Please sign in first.")

// BlobUploader is the slice of the S3 client the publish flow needs.
type BlobUploader interface {
	UploadFileWithProgress(key string, file io.Reader, contentType string, onProgress func(pct int)) (string, error)
}

// EventPublisher is the slice of the queue client the publish flow needs.
type EventPublisher interface {
	PublishListingPublished(event queue.ListingPublishedEvent) error
}

// FileStager abstracts the local staging area for selected photos.
type FileStager interface {
	Save(fileName string, r io.Reader) (string, error)
	Open(path string) (io.ReadCloser, error)
	Remove(path string) error
}

// PhotoSelection is one file picked by the seller, not yet staged.
type PhotoSelection struct {
	FileName    string
	ContentType string
	Size        int64
	Data        io.Reader
}

type DraftUseCase interface {
	GetDraft(ctx context.Context, ownerUID string) (*entity.Draft, error)
	SaveVehicle(ctx context.Context, ownerUID string, vehicle entity.Vehicle) (*entity.Draft, error)
	SaveContact(ctx context.Context, ownerUID string, contact entity.Contact) (*entity.Draft, error)
	Advance(ctx context.Context, ownerUID string) (*entity.Draft, error)
	Back(ctx context.Context, ownerUID string) (*entity.Draft, error)
	AddPhotos(ctx context.Context, ownerUID string, selections []PhotoSelection) (*entity.Draft, error)
	ReorderPhoto(ctx context.Context, ownerUID string, from, to int) (*entity.Draft, error)
	SetCover(ctx context.Context, ownerUID string, index int) (*entity.Draft, error)
	Publish(ctx context.Context, ownerUID string) (*entity.Listing, error)
}

type draftUseCase struct {
	drafts   draftstore.DraftStore
	listings persistent.ListingRepository
	stager   FileStager
	uploader BlobUploader
	events   EventPublisher
	log      *logger.Logger

	now func() time.Time
}

func NewDraftUseCase(
	drafts draftstore.DraftStore,
	listings persistent.ListingRepository,
	stager FileStager,
	uploader BlobUploader,
	events EventPublisher,
	log *logger.Logger,
) DraftUseCase {
	return &draftUseCase{
		drafts:   drafts,
		listings: listings,
		stager:   stager,
		uploader: uploader,
		events:   events,
		log:      log,
		now:      time.Now,
	}
}

func (uc *draftUseCase) GetDraft(ctx context.Context, ownerUID string) (*entity.Draft, error) {
	return uc.drafts.Get(ctx, ownerUID)
}

func (uc *draftUseCase) SaveVehicle(ctx context.Context, ownerUID string, vehicle entity.Vehicle) (*entity.Draft, error) {
	return uc.drafts.Update(ctx, ownerUID, func(d *entity.Draft) error {
		d.Vehicle = vehicle
		return nil
	})
}

func (uc *draftUseCase) SaveContact(ctx context.Context, ownerUID string, contact entity.Contact) (*entity.Draft, error) {
	return uc.drafts.Update(ctx, ownerUID, func(d *entity.Draft) error {
		d.Contact = contact
		return nil
	})
}

// validateStep mirrors the step gates shown in the wizard. Description is
// optional on step 1; step 4 has no gate of its own.
func (uc *draftUseCase) validateStep(d *entity.Draft, step int) error {
	switch step {
	case entity.StepVehicle:
		v := d.Vehicle
		if v.Category == "" {
			return validationErr("Choose a category.")
		}
		if strings.TrimSpace(v.Make) == "" || strings.TrimSpace(v.Model) == "" {
			return validationErr("Add make and model.")
		}
		if v.Year == nil || *v.Year < 1900 || *v.Year > uc.now().Year()+1 {
			return validationErr("Enter a valid year.")
		}
		if v.Price <= 0 {
			return validationErr("Enter a valid price.")
		}

	case entity.StepPhotos:
		if len(d.Photos) == 0 {
			return validationErr("Add at least one photo.")
		}

	case entity.StepContact:
		c := d.Contact
		if strings.TrimSpace(c.Name) == "" {
			return validationErr("Add a contact name.")
		}
		if strings.TrimSpace(c.Phone) == "" {
			return validationErr("Add a phone number.")
		}
		if strings.TrimSpace(c.Postcode) == "" {
			return validationErr("Add a postcode.")
		}
		if !postcode.Valid(c.Postcode) {
			return validationErr("Enter a valid UK postcode (e.g. SW1A 1AA).")
		}
	}
	return nil
}

func (uc *draftUseCase) Advance(ctx context.Context, ownerUID string) (*entity.Draft, error) {
	return uc.drafts.Update(ctx, ownerUID, func(d *entity.Draft) error {
		if err := uc.validateStep(d, d.Step); err != nil {
			return err
		}
		if d.Step < entity.StepReview {
			d.Step++
		}
		return nil
	})
}

func (uc *draftUseCase) Back(ctx context.Context, ownerUID string) (*entity.Draft, error) {
	return uc.drafts.Update(ctx, ownerUID, func(d *entity.Draft) error {
		if d.Step > entity.StepVehicle {
			d.Step--
		}
		return nil
	})
}

func (uc *draftUseCase) AddPhotos(ctx context.Context, ownerUID string, selections []PhotoSelection) (*entity.Draft, error) {
	// Stage at most what can still fit, before taking the draft lock.
	if len(selections) > entity.MaxPhotos {
		selections = selections[:entity.MaxPhotos]
	}

	items := make([]entity.UploadItem, 0, len(selections))
	for _, sel := range selections {
		path, err := uc.stager.Save(sel.FileName, sel.Data)
		if err != nil {
			return nil, err
		}
		items = append(items, entity.UploadItem{
			ID:          uuid.New().String(),
			FileName:    sel.FileName,
			ContentType: sel.ContentType,
			Size:        sel.Size,
			StagedPath:  path,
		})
	}

	return uc.drafts.Update(ctx, ownerUID, func(d *entity.Draft) error {
		before := len(d.Photos)
		d.Photos = ApplyPhotoEvent(d.Photos, AddPhotos{Items: items})

		// Staged files that fell off the cap are never uploaded; drop them.
		for _, item := range items[len(d.Photos)-before:] {
			if err := uc.stager.Remove(item.StagedPath); err != nil {
				uc.log.Warn("Failed to remove staged file %s: %v", item.StagedPath, err)
			}
		}
		return nil
	})
}

func (uc *draftUseCase) ReorderPhoto(ctx context.Context, ownerUID string, from, to int) (*entity.Draft, error) {
	return uc.drafts.Update(ctx, ownerUID, func(d *entity.Draft) error {
		d.Photos = ApplyPhotoEvent(d.Photos, MovePhoto{From: from, To: to})
		return nil
	})
}

func (uc *draftUseCase) SetCover(ctx context.Context, ownerUID string, index int) (*entity.Draft, error) {
	return uc.drafts.Update(ctx, ownerUID, func(d *entity.Draft) error {
		d.Photos = ApplyPhotoEvent(d.Photos, SetCover{Index: index})
		return nil
	})
}

// Publish re-validates every gated step, uploads the photos in slot order
// and writes the listing pair. The draft survives any failure along the
// way and is reset only after the listing is committed.
func (uc *draftUseCase) Publish(ctx context.Context, ownerUID string) (*entity.Listing, error) {
	if ownerUID == "" {
		return nil, ErrNotSignedIn
	}

	draft, err := uc.drafts.Get(ctx, ownerUID)
	if err != nil {
		return nil, err
	}

	for _, step := range []int{entity.StepVehicle, entity.StepPhotos, entity.StepContact} {
		if err := uc.validateStep(draft, step); err != nil {
			return nil, err
		}
	}

	urls, err := uc.uploadAll(ctx, ownerUID, draft)
	if err != nil {
		return nil, err
	}

	listing := uc.buildListing(ownerUID, draft, urls)
	private := &entity.ListingPrivate{
		OwnerUID: ownerUID,
		Postcode: postcode.Normalize(draft.Contact.Postcode),
	}

	if err := uc.listings.CreatePair(listing, private); err != nil {
		return nil, fmt.Errorf("failed to publish listing: %w", err)
	}

	if err := uc.events.PublishListingPublished(queue.ListingPublishedEvent{
		ListingID: listing.ID,
		OwnerUID:  listing.OwnerUID,
		Category:  listing.Category,
		Title:     listing.Title,
		Price:     listing.Price,
		PostedAt:  listing.CreatedAt.Format(time.RFC3339),
	}); err != nil {
		uc.log.Warn("Failed to publish listing event for %s: %v", listing.ID, err)
	}

	for _, item := range draft.Photos {
		if item.StagedPath == "" {
			continue
		}
		if err := uc.stager.Remove(item.StagedPath); err != nil {
			uc.log.Warn("Failed to remove staged file %s: %v", item.StagedPath, err)
		}
	}

	if err := uc.drafts.Reset(ctx, ownerUID); err != nil {
		uc.log.Warn("Failed to reset draft for %s: %v", ownerUID, err)
	}

	return listing, nil
}

// uploadAll pushes the staged photos to object storage one at a time, in
// slot order, persisting progress so the draft endpoint can report it.
func (uc *draftUseCase) uploadAll(ctx context.Context, ownerUID string, draft *entity.Draft) ([]string, error) {
	batch := uc.now().UnixMilli()
	urls := make([]string, 0, len(draft.Photos))

	for i, item := range draft.Photos {
		file, err := uc.stager.Open(item.StagedPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open staged photo %s: %w", item.FileName, err)
		}

		key := fmt.Sprintf("user_uploads/%s/%d_%d_%s", ownerUID, batch, i, filepath.Base(item.FileName))
		index := i

		url, err := uc.uploader.UploadFileWithProgress(key, file, item.ContentType, func(pct int) {
			uc.recordPhotoEvent(ctx, ownerUID, PhotoProgress{Index: index, Pct: pct})
		})
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to upload photo %s: %w", item.FileName, err)
		}

		urls = append(urls, url)
		uc.recordPhotoEvent(ctx, ownerUID, PhotoUploaded{Index: index, URL: url})
	}
	return urls, nil
}

func (uc *draftUseCase) recordPhotoEvent(ctx context.Context, ownerUID string, event PhotoEvent) {
	if _, err := uc.drafts.Update(ctx, ownerUID, func(d *entity.Draft) error {
		d.Photos = ApplyPhotoEvent(d.Photos, event)
		return nil
	}); err != nil {
		uc.log.Warn("Failed to record photo event for %s: %v", ownerUID, err)
	}
}

func (uc *draftUseCase) buildListing(ownerUID string, draft *entity.Draft, urls []string) *entity.Listing {
	v := draft.Vehicle
	now := uc.now()

	title := strings.TrimSpace(fmt.Sprintf("%s %s", strings.TrimSpace(v.Make), strings.TrimSpace(v.Model)))
	if v.Year != nil {
		title = strings.TrimSpace(fmt.Sprintf("%d %s", *v.Year, title))
	}

	return &entity.Listing{
		OwnerUID:     ownerUID,
		Category:     v.Category,
		Title:        title,
		Make:         strings.TrimSpace(v.Make),
		Model:        strings.TrimSpace(v.Model),
		Year:         v.Year,
		Mileage:      v.Mileage,
		Fuel:         optional(v.Fuel),
		Transmission: optional(v.Transmission),
		Body:         optional(v.Body),
		Colour:       optional(strings.TrimSpace(v.Colour)),
		Description:  optional(strings.TrimSpace(v.Description)),
		Price:        v.Price,
		Images:       urls,
		Status:       entity.StatusLive,
		IsPremium:    false,
		PremiumUntil: nil,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
