package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SixArm/ssh-keygen-pro/internal/util"
)

// KeyPairReport is one produced key pair for report display.
// It mirrors keygen.KeyPair so the UI layer stays free of domain imports.
type KeyPairReport struct {
	Label       string // "passphrase" or "automation"
	PrivatePath string
	PublicPath  string
}

// ReportRenderer formats generation results for terminal display.
type ReportRenderer struct {
	successStyle lipgloss.Style
	labelStyle   lipgloss.Style
	pathStyle    lipgloss.Style
}

// NewReportRenderer creates a renderer with default styles.
func NewReportRenderer() *ReportRenderer {
	return &ReportRenderer{
		successStyle: SuccessStyle(),
		labelStyle:   lipgloss.NewStyle().Foreground(ColorSecondary),
		pathStyle:    InfoStyle(),
	}
}

// RenderReport generates the formatted report of produced key files.
func RenderReport(pairs []KeyPairReport) string {
	return NewReportRenderer().Render(pairs)
}

// Render lists every produced file path under its variant heading. The
// paths are the contract here: callers and scripts read them back.
func (r *ReportRenderer) Render(pairs []KeyPairReport) string {
	if len(pairs) == 0 {
		return ""
	}

	var sb strings.Builder

	fileCount := 2 * len(pairs)
	sb.WriteString(r.successStyle.Render(fmt.Sprintf("%s Generated %d key %s",
		SymbolSuccess, fileCount, util.Pluralize(fileCount, "file", "files"))))
	sb.WriteString("\n")

	for _, pair := range pairs {
		sb.WriteString("\n")
		sb.WriteString("  ")
		sb.WriteString(r.labelStyle.Render("with " + pair.Label))
		sb.WriteString("\n")
		sb.WriteString("    ")
		sb.WriteString(r.pathStyle.Render(pair.PrivatePath))
		sb.WriteString("\n")
		sb.WriteString("    ")
		sb.WriteString(r.pathStyle.Render(pair.PublicPath))
		sb.WriteString("\n")
	}

	return sb.String()
}
