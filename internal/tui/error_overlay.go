package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	content := "Error\n\n" + m.message + "\n\nesc: close"
	return overlayBoxStyle.Render(content)
}
