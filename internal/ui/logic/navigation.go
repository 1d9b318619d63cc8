package logic

// Navigator handles card grid navigation and the visible row window.
// The viewport is measured in grid rows, not terminal lines.
type Navigator struct {
	selectedIndex  int
	viewportOffset int
	viewportHeight int
	columns        int
	total          int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{columns: 1, viewportHeight: 1}
}

// UpdateState updates the navigator's state
func (n *Navigator) UpdateState(selectedIndex, viewportOffset, viewportHeight, columns, total int) {
	n.selectedIndex = selectedIndex
	n.viewportOffset = viewportOffset
	n.viewportHeight = max(viewportHeight, 1)
	n.columns = max(columns, 1)
	n.total = total
	n.clamp()
}

// GetSelectedIndex returns the current selected index
func (n *Navigator) GetSelectedIndex() int {
	return n.selectedIndex
}

// GetViewportOffset returns the first visible row
func (n *Navigator) GetViewportOffset() int {
	return n.viewportOffset
}

// Rows returns the number of grid rows
func (n *Navigator) Rows() int {
	if n.total == 0 {
		return 0
	}
	return (n.total + n.columns - 1) / n.columns
}

// SetSelectedIndex sets the selected index and ensures it's visible
func (n *Navigator) SetSelectedIndex(index int) (int, int) {
	n.selectedIndex = index
	n.clamp()
	return n.selectedIndex, n.viewportOffset
}

// Navigate moves the selection and returns the new index and viewport offset
func (n *Navigator) Navigate(direction string) (int, int) {
	if n.total == 0 {
		return 0, 0
	}

	switch direction {
	case "up":
		if n.selectedIndex-n.columns >= 0 {
			n.selectedIndex -= n.columns
		}
	case "down":
		if n.selectedIndex+n.columns < n.total {
			n.selectedIndex += n.columns
		} else if n.selectedIndex/n.columns < n.Rows()-1 {
			// Short last row: land on its last card
			n.selectedIndex = n.total - 1
		}
	case "left":
		if n.selectedIndex > 0 {
			n.selectedIndex--
		}
	case "right":
		if n.selectedIndex < n.total-1 {
			n.selectedIndex++
		}
	case "pageup":
		n.selectedIndex -= n.columns * n.viewportHeight
	case "pagedown":
		n.selectedIndex += n.columns * n.viewportHeight
	case "home":
		n.selectedIndex = 0
	case "end":
		n.selectedIndex = n.total - 1
	}

	n.clamp()
	return n.selectedIndex, n.viewportOffset
}

func (n *Navigator) clamp() {
	if n.selectedIndex >= n.total {
		n.selectedIndex = n.total - 1
	}
	if n.selectedIndex < 0 {
		n.selectedIndex = 0
	}
	n.ensureSelectedVisible()
}

// ensureSelectedVisible adjusts the viewport to keep the selected row visible
func (n *Navigator) ensureSelectedVisible() {
	row := n.selectedIndex / n.columns

	if row < n.viewportOffset {
		n.viewportOffset = row
	}
	if row >= n.viewportOffset+n.viewportHeight {
		n.viewportOffset = row - n.viewportHeight + 1
	}

	maxOffset := n.Rows() - n.viewportHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}
