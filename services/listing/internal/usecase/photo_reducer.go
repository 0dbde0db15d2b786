package usecase

import "github.com/Chopaholic/MotorAdverts/services/listing/internal/entity"

// Photo slot mutations all flow through ApplyPhotoEvent so user actions
// (reorder, set-cover) and async upload callbacks (progress, url) serialize
// against the same ordered list instead of clobbering each other.

type PhotoEvent interface {
	isPhotoEvent()
}

type AddPhotos struct {
	Items []entity.UploadItem
}

type MovePhoto struct {
	From int
	To   int
}

type SetCover struct {
	Index int
}

type PhotoProgress struct {
	Index int
	Pct   int
}

type PhotoUploaded struct {
	Index int
	URL   string
}

func (AddPhotos) isPhotoEvent()     {}
func (MovePhoto) isPhotoEvent()     {}
func (SetCover) isPhotoEvent()      {}
func (PhotoProgress) isPhotoEvent() {}
func (PhotoUploaded) isPhotoEvent() {}

// ApplyPhotoEvent returns a new slot list with the event applied. Events
// with out-of-range indices leave the list unchanged.
func ApplyPhotoEvent(photos []entity.UploadItem, event PhotoEvent) []entity.UploadItem {
	next := make([]entity.UploadItem, len(photos))
	copy(next, photos)

	switch e := event.(type) {
	case AddPhotos:
		next = append(next, e.Items...)
		if len(next) > entity.MaxPhotos {
			next = next[:entity.MaxPhotos]
		}

	case MovePhoto:
		if e.From < 0 || e.From >= len(next) || e.To < 0 || e.To >= len(next) || e.From == e.To {
			return next
		}
		// Remove then reinsert so intervening items shift, matching
		// drag-and-drop semantics rather than a positional swap.
		item := next[e.From]
		next = append(next[:e.From], next[e.From+1:]...)
		next = append(next[:e.To], append([]entity.UploadItem{item}, next[e.To:]...)...)

	case SetCover:
		if e.Index < 0 || e.Index >= len(next) {
			return next
		}
		item := next[e.Index]
		next = append(next[:e.Index], next[e.Index+1:]...)
		next = append([]entity.UploadItem{item}, next...)

	case PhotoProgress:
		if e.Index < 0 || e.Index >= len(next) {
			return next
		}
		next[e.Index].Progress = clampPct(e.Pct)

	case PhotoUploaded:
		if e.Index < 0 || e.Index >= len(next) {
			return next
		}
		next[e.Index].URL = e.URL
		next[e.Index].Progress = 100
	}

	return next
}

func clampPct(pct int) int {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
