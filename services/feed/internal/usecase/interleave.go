package usecase

import "github.com/Chopaholic/MotorAdverts/services/feed/internal/entity"

// Interleave tags an ordered item sequence for rendering: within every block
// of fifteen, the eleventh slot renders as a premium tile. The tag is purely
// positional, so re-tagging any accumulated prefix is stable. A partial
// final block follows the same rule.
func Interleave(items []entity.Item) []entity.Node {
	nodes := make([]entity.Node, 0, len(items))
	for i, item := range items {
		nodeType := entity.NodeListing
		if i%entity.BlockSize == entity.PremiumSlotInBlock-1 {
			nodeType = entity.NodePremium
		}
		nodes = append(nodes, entity.Node{Type: nodeType, Data: item})
	}
	return nodes
}
