package tui

// updateLayout updates component sizes based on window size
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}

	contentHeight := max(m.Height-ChromeHeight, 0)

	m.Grid.SetSize(m.Width, contentHeight)
	m.Viewer.SetSize(m.Width, max(m.Height-FooterHeight, 0))
	m.Search.Width = max(m.Width-len(m.Search.Prompt)-12, 10)
	m.Help.Width = m.Width
}
