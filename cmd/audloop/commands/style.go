// SPDX-License-Identifier: EPL-2.0

package commands

import "github.com/charmbracelet/lipgloss"

var (
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff9f"))
)
