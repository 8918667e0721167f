package inventory

import "strings"

// SearchResult lists the matching items found in one box.
type SearchResult struct {
	Box   Box
	Items []Item
}

// Search finds placed items whose name contains query, ignoring case. Boxes
// without a match are left out. An empty query matches every placed item.
func (m *Model) Search(query string) []SearchResult {
	needle := strings.ToLower(query)
	var results []SearchResult
	for _, box := range m.Boxes() {
		var matches []Item
		for _, itemID := range m.boxes[box.ID].items {
			item := m.items[itemID]
			if strings.Contains(strings.ToLower(item.Name), needle) {
				matches = append(matches, *item)
			}
		}
		if len(matches) > 0 {
			results = append(results, SearchResult{Box: box, Items: matches})
		}
	}
	return results
}
