package persistent

import (
	"github.com/Chopaholic/MotorAdverts/pkg/models"
	"github.com/Chopaholic/MotorAdverts/services/feed/internal/entity"
)

func ToFeedItem(m *models.Listing) entity.Item {
	return entity.Item{
		ID:        m.ID,
		Title:     m.Title,
		Year:      m.Year,
		Price:     m.Price,
		Images:    []string(m.Images),
		Category:  string(m.Category),
		PostTown:  m.PostTown,
		CreatedAt: m.CreatedAt,
	}
}
