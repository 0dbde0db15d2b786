package draftstore

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/Chopaholic/MotorAdverts/services/listing/internal/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) DraftStore {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewDraftStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

func TestGet_CreatesFreshDraft(t *testing.T) {
	store := setupStore(t)

	draft, err := store.Get(context.Background(), "owner-1")
	require.NoError(t, err)

	assert.Equal(t, "owner-1", draft.OwnerUID)
	assert.Equal(t, entity.StepVehicle, draft.Step)
	assert.Equal(t, entity.CategoryCars, draft.Vehicle.Category)
	assert.Empty(t, draft.Photos)
}

func TestUpdate_PersistsChanges(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	_, err := store.Update(ctx, "owner-1", func(d *entity.Draft) error {
		d.Vehicle.Make = "Ford"
		d.Step = entity.StepPhotos
		return nil
	})
	require.NoError(t, err)

	draft, err := store.Get(ctx, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, "Ford", draft.Vehicle.Make)
	assert.Equal(t, entity.StepPhotos, draft.Step)
}

func TestUpdate_ErrorAbortsSave(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	_, err := store.Update(ctx, "owner-1", func(d *entity.Draft) error {
		d.Vehicle.Make = "Ford"
		return fmt.Errorf("nope")
	})
	require.Error(t, err)

	draft, err := store.Get(ctx, "owner-1")
	require.NoError(t, err)
	assert.Empty(t, draft.Vehicle.Make)
}

func TestUpdate_SerializesPerOwner(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Update(ctx, "owner-1", func(d *entity.Draft) error {
				d.Photos = append(d.Photos, entity.UploadItem{ID: "x"})
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	draft, err := store.Get(ctx, "owner-1")
	require.NoError(t, err)
	assert.Len(t, draft.Photos, 20)
}

func TestReset_DropsDraft(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	_, err := store.Update(ctx, "owner-1", func(d *entity.Draft) error {
		d.Vehicle.Make = "Ford"
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, store.Reset(ctx, "owner-1"))

	draft, err := store.Get(ctx, "owner-1")
	require.NoError(t, err)
	assert.Empty(t, draft.Vehicle.Make)
	assert.Equal(t, entity.StepVehicle, draft.Step)
}
