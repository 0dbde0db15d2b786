package usecase

import (
	"fmt"
	"testing"

	"github.com/Chopaholic/MotorAdverts/services/listing/internal/entity"

	"github.com/stretchr/testify/assert"
)

func slots(names ...string) []entity.UploadItem {
	items := make([]entity.UploadItem, 0, len(names))
	for _, n := range names {
		items = append(items, entity.UploadItem{ID: n, FileName: n + ".jpg"})
	}
	return items
}

func slotIDs(items []entity.UploadItem) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}

func TestSetCover_MovesToFront(t *testing.T) {
	photos := slots("A", "B", "C", "D")

	next := ApplyPhotoEvent(photos, SetCover{Index: 2})

	assert.Equal(t, []string{"C", "A", "B", "D"}, slotIDs(next))
	// Original slice untouched.
	assert.Equal(t, []string{"A", "B", "C", "D"}, slotIDs(photos))
}

func TestMovePhoto_RemoveThenReinsert(t *testing.T) {
	photos := slots("A", "B", "C", "D", "E")

	next := ApplyPhotoEvent(photos, MovePhoto{From: 0, To: 3})
	assert.Equal(t, []string{"B", "C", "D", "A", "E"}, slotIDs(next))

	next = ApplyPhotoEvent(photos, MovePhoto{From: 4, To: 0})
	assert.Equal(t, []string{"E", "A", "B", "C", "D"}, slotIDs(next))
}

func TestMovePhoto_OutOfRangeIsNoop(t *testing.T) {
	photos := slots("A", "B", "C")

	assert.Equal(t, slotIDs(photos), slotIDs(ApplyPhotoEvent(photos, MovePhoto{From: -1, To: 1})))
	assert.Equal(t, slotIDs(photos), slotIDs(ApplyPhotoEvent(photos, MovePhoto{From: 0, To: 3})))
	assert.Equal(t, slotIDs(photos), slotIDs(ApplyPhotoEvent(photos, MovePhoto{From: 1, To: 1})))
}

func TestAddPhotos_CapsAtTwenty(t *testing.T) {
	var names []string
	for i := 0; i < 25; i++ {
		names = append(names, fmt.Sprintf("p%02d", i))
	}

	next := ApplyPhotoEvent(nil, AddPhotos{Items: slots(names...)})
	assert.Len(t, next, entity.MaxPhotos)
	assert.Equal(t, "p00", next[0].ID)
	assert.Equal(t, "p19", next[19].ID)
}

func TestAddPhotos_TopUpTruncates(t *testing.T) {
	var existing []string
	for i := 0; i < 18; i++ {
		existing = append(existing, fmt.Sprintf("e%02d", i))
	}
	photos := slots(existing...)

	next := ApplyPhotoEvent(photos, AddPhotos{Items: slots("n1", "n2", "n3", "n4", "n5")})
	assert.Len(t, next, entity.MaxPhotos)
	assert.Equal(t, "n1", next[18].ID)
	assert.Equal(t, "n2", next[19].ID)
}

func TestPhotoProgress_ClampsAndTargetsSlot(t *testing.T) {
	photos := slots("A", "B")

	next := ApplyPhotoEvent(photos, PhotoProgress{Index: 1, Pct: 45})
	assert.Equal(t, 0, next[0].Progress)
	assert.Equal(t, 45, next[1].Progress)

	next = ApplyPhotoEvent(next, PhotoProgress{Index: 1, Pct: 180})
	assert.Equal(t, 100, next[1].Progress)

	next = ApplyPhotoEvent(next, PhotoProgress{Index: 5, Pct: 50})
	assert.Equal(t, 100, next[1].Progress)
}

func TestPhotoUploaded_SetsURLAndCompletes(t *testing.T) {
	photos := slots("A")

	next := ApplyPhotoEvent(photos, PhotoUploaded{Index: 0, URL: "https://img.example/a.jpg"})
	assert.Equal(t, "https://img.example/a.jpg", next[0].URL)
	assert.Equal(t, 100, next[0].Progress)
}
