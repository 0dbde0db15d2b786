package persistent

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Chopaholic/MotorAdverts/pkg/models"
	"github.com/Chopaholic/MotorAdverts/services/feed/internal/entity"

	"gorm.io/gorm"
)

// Cursor marks the last row of a page. Continuation is strictly after it in
// (created_at DESC, id DESC) order.
type Cursor struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
}

// EncodeCursor renders a cursor opaque for the wire.
func EncodeCursor(c *Cursor) string {
	if c == nil {
		return ""
	}
	data, _ := json.Marshal(c)
	return base64.RawURLEncoding.EncodeToString(data)
}

func DecodeCursor(s string) (*Cursor, error) {
	if s == "" {
		return nil, nil
	}
	data, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid cursor: %w", err)
	}
	var c Cursor
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("invalid cursor: %w", err)
	}
	return &c, nil
}

type FeedRepository interface {
	// ListPage returns up to limit live listings matching the filters,
	// newest first, starting strictly after the cursor.
	ListPage(filters entity.Filters, cursor *Cursor, limit int) ([]entity.Item, *Cursor, error)
}

type feedRepository struct {
	db *gorm.DB
}

func NewFeedRepository(db *gorm.DB) FeedRepository {
	return &feedRepository{db: db}
}

func (r *feedRepository) ListPage(filters entity.Filters, cursor *Cursor, limit int) ([]entity.Item, *Cursor, error) {
	query := r.db.Model(&models.Listing{}).
		Where("status = ?", models.StatusLive)

	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}

	switch filters.Quick {
	case entity.QuickBargains:
		query = query.Where("price <= ?", 1500)
	case entity.QuickSeats7:
		query = query.Where("seats >= ?", 7)
	case entity.QuickElectric:
		query = query.Where("fuel = ?", "Electric")
	case entity.QuickTow:
		query = query.Where("has_tow_bar = ?", true)
	case entity.QuickWarranty:
		query = query.Where("has_warranty = ?", true)
	case entity.QuickWithin30:
		// TODO: add geospatial query
	}

	if cursor != nil {
		query = query.Where(
			"created_at < ? OR (created_at = ? AND id < ?)",
			cursor.CreatedAt, cursor.CreatedAt, cursor.ID,
		)
	}

	var rows []models.Listing
	if err := query.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to list feed page: %w", err)
	}

	items := make([]entity.Item, 0, len(rows))
	for i := range rows {
		items = append(items, ToFeedItem(&rows[i]))
	}

	var next *Cursor
	if len(rows) > 0 {
		last := rows[len(rows)-1]
		next = &Cursor{CreatedAt: last.CreatedAt, ID: last.ID}
	}
	return items, next, nil
}
