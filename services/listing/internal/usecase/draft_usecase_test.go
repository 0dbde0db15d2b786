package usecase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/Chopaholic/MotorAdverts/pkg/logger"
	"github.com/Chopaholic/MotorAdverts/pkg/models"
	"github.com/Chopaholic/MotorAdverts/pkg/queue"
	"github.com/Chopaholic/MotorAdverts/services/listing/internal/entity"
	"github.com/Chopaholic/MotorAdverts/services/listing/internal/repo/draftstore"
	"github.com/Chopaholic/MotorAdverts/services/listing/internal/repo/persistent"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fakeStager struct {
	saved   int
	removed []string
}

func (f *fakeStager) Save(fileName string, r io.Reader) (string, error) {
	io.Copy(io.Discard, r)
	f.saved++
	return fmt.Sprintf("staged/%d_%s", f.saved, fileName), nil
}

func (f *fakeStager) Open(path string) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader("image-bytes")), nil
}

func (f *fakeStager) Remove(path string) error {
	f.removed = append(f.removed, path)
	return nil
}

type fakeUploader struct {
	keys    []string
	failKey string
}

func (f *fakeUploader) UploadFileWithProgress(key string, file io.Reader, contentType string, onProgress func(pct int)) (string, error) {
	io.Copy(io.Discard, file)
	if f.failKey != "" && strings.Contains(key, f.failKey) {
		return "", fmt.Errorf("upload failed")
	}
	onProgress(50)
	onProgress(100)
	f.keys = append(f.keys, key)
	return "https://cdn.example/" + key, nil
}

type fakeEvents struct {
	published []queue.ListingPublishedEvent
}

func (f *fakeEvents) PublishListingPublished(event queue.ListingPublishedEvent) error {
	f.published = append(f.published, event)
	return nil
}

type draftFixture struct {
	uc       DraftUseCase
	db       *gorm.DB
	drafts   draftstore.DraftStore
	stager   *fakeStager
	uploader *fakeUploader
	events   *fakeEvents
}

func setupDraftUseCase(t *testing.T) *draftFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Listing{}, &models.ListingPrivate{}))

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	f := &draftFixture{
		db:       db,
		drafts:   draftstore.NewDraftStore(redisClient),
		stager:   &fakeStager{},
		uploader: &fakeUploader{},
		events:   &fakeEvents{},
	}
	f.uc = NewDraftUseCase(
		f.drafts,
		persistent.NewListingRepository(db),
		f.stager,
		f.uploader,
		f.events,
		logger.New(),
	)
	return f
}

func intPtr(v int) *int { return &v }

func validVehicle() entity.Vehicle {
	return entity.Vehicle{
		Category:     entity.CategoryCars,
		Make:         "Ford",
		Model:        "Fiesta",
		Year:         intPtr(2017),
		Mileage:      intPtr(41000),
		Fuel:         "Petrol",
		Transmission: "Manual",
		Body:         "Hatchback",
		Colour:       "Blue",
		Description:  "One owner from new.",
		Price:        4750,
	}
}

func validContact() entity.Contact {
	return entity.Contact{Name: "Sam", Phone: "07700 900123", Postcode: "sw1a 1aa"}
}

func addTestPhotos(t *testing.T, f *draftFixture, owner string, names ...string) {
	t.Helper()
	selections := make([]PhotoSelection, 0, len(names))
	for _, n := range names {
		selections = append(selections, PhotoSelection{
			FileName:    n,
			ContentType: "image/jpeg",
			Size:        11,
			Data:        bytes.NewReader([]byte("image-bytes")),
		})
	}
	_, err := f.uc.AddPhotos(context.Background(), owner, selections)
	require.NoError(t, err)
}

func TestAdvance_StepGates(t *testing.T) {
	f := setupDraftUseCase(t)
	ctx := context.Background()
	owner := "owner-1"

	// Fresh draft has the default category, so make and model gate first.
	_, err := f.uc.Advance(ctx, owner)
	require.EqualError(t, err, "Add make and model.")

	v := validVehicle()
	v.Year = intPtr(1850)
	_, err = f.uc.SaveVehicle(ctx, owner, v)
	require.NoError(t, err)
	_, err = f.uc.Advance(ctx, owner)
	require.EqualError(t, err, "Enter a valid year.")

	v.Year = intPtr(2017)
	v.Price = 0
	_, err = f.uc.SaveVehicle(ctx, owner, v)
	require.NoError(t, err)
	_, err = f.uc.Advance(ctx, owner)
	require.EqualError(t, err, "Enter a valid price.")

	_, err = f.uc.SaveVehicle(ctx, owner, validVehicle())
	require.NoError(t, err)
	draft, err := f.uc.Advance(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, entity.StepPhotos, draft.Step)

	// Photos step requires at least one slot.
	_, err = f.uc.Advance(ctx, owner)
	require.EqualError(t, err, "Add at least one photo.")

	addTestPhotos(t, f, owner, "front.jpg")
	draft, err = f.uc.Advance(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, entity.StepContact, draft.Step)

	_, err = f.uc.Advance(ctx, owner)
	require.EqualError(t, err, "Add a contact name.")

	_, err = f.uc.SaveContact(ctx, owner, entity.Contact{Name: "Sam", Phone: "07700 900123", Postcode: "not a postcode"})
	require.NoError(t, err)
	_, err = f.uc.Advance(ctx, owner)
	require.EqualError(t, err, "Enter a valid UK postcode (e.g. SW1A 1AA).")

	_, err = f.uc.SaveContact(ctx, owner, validContact())
	require.NoError(t, err)
	draft, err = f.uc.Advance(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, entity.StepReview, draft.Step)

	// Review is the last step.
	draft, err = f.uc.Advance(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, entity.StepReview, draft.Step)
}

func TestBack_AlwaysAllowed(t *testing.T) {
	f := setupDraftUseCase(t)
	ctx := context.Background()
	owner := "owner-1"

	_, err := f.uc.SaveVehicle(ctx, owner, validVehicle())
	require.NoError(t, err)
	_, err = f.uc.Advance(ctx, owner)
	require.NoError(t, err)

	// Going back never validates, and bottoms out at step one.
	draft, err := f.uc.Back(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, entity.StepVehicle, draft.Step)

	draft, err = f.uc.Back(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, entity.StepVehicle, draft.Step)
}

func TestPublish_HappyPath(t *testing.T) {
	f := setupDraftUseCase(t)
	ctx := context.Background()
	owner := "owner-1"

	_, err := f.uc.SaveVehicle(ctx, owner, validVehicle())
	require.NoError(t, err)
	addTestPhotos(t, f, owner, "front.jpg", "rear.jpg")
	_, err = f.uc.SaveContact(ctx, owner, validContact())
	require.NoError(t, err)

	listing, err := f.uc.Publish(ctx, owner)
	require.NoError(t, err)

	assert.Equal(t, "2017 Ford Fiesta", listing.Title)
	assert.Equal(t, entity.StatusLive, listing.Status)
	assert.Equal(t, owner, listing.OwnerUID)
	assert.False(t, listing.IsPremium)
	assert.Nil(t, listing.PremiumUntil)
	require.Len(t, listing.Images, 2)
	assert.Equal(t, "https://cdn.example/"+f.uploader.keys[0], listing.Images[0])

	// Photos upload sequentially in slot order under the owner's prefix.
	require.Len(t, f.uploader.keys, 2)
	assert.True(t, strings.HasPrefix(f.uploader.keys[0], "user_uploads/owner-1/"))
	assert.Contains(t, f.uploader.keys[0], "_0_front.jpg")
	assert.Contains(t, f.uploader.keys[1], "_1_rear.jpg")

	// The postcode lands normalized in the private record only.
	var private models.ListingPrivate
	require.NoError(t, f.db.Where("listing_id = ?", listing.ID).First(&private).Error)
	assert.Equal(t, "SW1A1AA", private.Postcode)
	assert.Equal(t, owner, private.OwnerUID)

	// Published event fired.
	require.Len(t, f.events.published, 1)
	assert.Equal(t, listing.ID, f.events.published[0].ListingID)

	// Staged files cleaned up, draft reset to step one.
	assert.Len(t, f.stager.removed, 2)
	draft, err := f.uc.GetDraft(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, entity.StepVehicle, draft.Step)
	assert.Empty(t, draft.Photos)
	assert.Empty(t, draft.Vehicle.Make)
}

func TestPublish_NotSignedIn(t *testing.T) {
	f := setupDraftUseCase(t)

	_, err := f.uc.Publish(context.Background(), "")
	require.ErrorIs(t, err, ErrNotSignedIn)
	assert.Equal(t, "Please sign in first.", err.Error())
}

func TestPublish_RevalidatesEveryStep(t *testing.T) {
	f := setupDraftUseCase(t)
	ctx := context.Background()
	owner := "owner-1"

	_, err := f.uc.SaveVehicle(ctx, owner, validVehicle())
	require.NoError(t, err)
	_, err = f.uc.SaveContact(ctx, owner, validContact())
	require.NoError(t, err)

	// No photos: publish refuses regardless of the current step.
	_, err = f.uc.Publish(ctx, owner)
	require.EqualError(t, err, "Add at least one photo.")

	var count int64
	f.db.Model(&models.Listing{}).Count(&count)
	assert.Zero(t, count)
}

func TestPublish_UploadFailureKeepsDraft(t *testing.T) {
	f := setupDraftUseCase(t)
	ctx := context.Background()
	owner := "owner-1"
	f.uploader.failKey = "_1_rear.jpg"

	_, err := f.uc.SaveVehicle(ctx, owner, validVehicle())
	require.NoError(t, err)
	addTestPhotos(t, f, owner, "front.jpg", "rear.jpg")
	_, err = f.uc.SaveContact(ctx, owner, validContact())
	require.NoError(t, err)

	_, err = f.uc.Publish(ctx, owner)
	require.Error(t, err)

	// Nothing committed, draft intact for a retry.
	var count int64
	f.db.Model(&models.Listing{}).Count(&count)
	assert.Zero(t, count)

	draft, err := f.uc.GetDraft(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, draft.Photos, 2)
	assert.Equal(t, "Ford", draft.Vehicle.Make)
	assert.Empty(t, f.events.published)
}

func TestAddPhotos_CapAcrossSelections(t *testing.T) {
	f := setupDraftUseCase(t)
	ctx := context.Background()
	owner := "owner-1"

	var first []string
	for i := 0; i < 18; i++ {
		first = append(first, fmt.Sprintf("a%02d.jpg", i))
	}
	addTestPhotos(t, f, owner, first...)

	addTestPhotos(t, f, owner, "b1.jpg", "b2.jpg", "b3.jpg", "b4.jpg", "b5.jpg")

	draft, err := f.uc.GetDraft(ctx, owner)
	require.NoError(t, err)
	require.Len(t, draft.Photos, entity.MaxPhotos)
	assert.Equal(t, "b1.jpg", draft.Photos[18].FileName)
	assert.Equal(t, "b2.jpg", draft.Photos[19].FileName)

	// The three that fell off the cap were unstaged.
	assert.Len(t, f.stager.removed, 3)
}

func TestSetCover_ChangesUploadOrder(t *testing.T) {
	f := setupDraftUseCase(t)
	ctx := context.Background()
	owner := "owner-1"

	_, err := f.uc.SaveVehicle(ctx, owner, validVehicle())
	require.NoError(t, err)
	addTestPhotos(t, f, owner, "a.jpg", "b.jpg", "c.jpg")
	_, err = f.uc.SaveContact(ctx, owner, validContact())
	require.NoError(t, err)

	_, err = f.uc.SetCover(ctx, owner, 2)
	require.NoError(t, err)

	listing, err := f.uc.Publish(ctx, owner)
	require.NoError(t, err)

	require.Len(t, f.uploader.keys, 3)
	assert.Contains(t, f.uploader.keys[0], "_0_c.jpg")
	assert.Contains(t, f.uploader.keys[1], "_1_a.jpg")
	assert.Contains(t, f.uploader.keys[2], "_2_b.jpg")
	assert.Contains(t, listing.Images[0], "c.jpg")
}
