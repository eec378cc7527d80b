// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/jeranaias/genx-tui/internal/model"
)

// =============================================================================
// MARKDOWN EXPORTER
// =============================================================================

// MarkdownExporter exports conversations to Markdown format.
type MarkdownExporter struct{}

// Export converts a conversation to Markdown format.
func (e *MarkdownExporter) Export(conv *model.Conversation) ([]byte, error) {
	if conv == nil {
		return nil, fmt.Errorf("conversation is nil")
	}
	if conv.IsEmpty() {
		return nil, fmt.Errorf("conversation has no turns")
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n\n", conv.Title(80)))
	sb.WriteString(fmt.Sprintf("- **Created**: %s\n", conv.CreatedAt.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("- **Updated**: %s\n", conv.UpdatedAt.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("- **Turns**: %d\n", conv.TurnCount()))
	sb.WriteString(fmt.Sprintf("- **Exported**: %s\n", time.Now().Format(time.RFC3339)))
	sb.WriteString("\n---\n\n")

	for _, turn := range conv.Turns {
		sb.WriteString(fmt.Sprintf("### %s <sub>%s</sub>\n\n",
			turn.Role.DisplayName(),
			turn.Timestamp.Format("2006-01-02 15:04"),
		))
		sb.WriteString(turn.Content)
		sb.WriteString("\n\n")
	}

	return []byte(sb.String()), nil
}

// FileExtension returns the file extension for Markdown.
func (e *MarkdownExporter) FileExtension() string {
	return ".md"
}
