package commands

import (
	"fmt"
	"strings"
)

// formatWriteSummary creates the message printed after a document is written
func formatWriteSummary(action, path string, count int, noun string) string {
	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("✅ %s %s with %d %s\n", action, path, count, pluralize(noun, count)))
	return msg.String()
}

// DisplayWriteSummary displays a formatted success message for a written document
func DisplayWriteSummary(action, path string, count int, noun string) {
	fmt.Print(formatWriteSummary(action, path, count, noun))
}

// formatSkipped lists items that could not be fetched
func formatSkipped(skipped []string) string {
	if len(skipped) == 0 {
		return ""
	}
	return fmt.Sprintf("⚠️  Skipped %d %s: %s\n", len(skipped), pluralize("PR", len(skipped)), strings.Join(skipped, ", "))
}

// DisplaySkipped prints the skipped items, if any
func DisplaySkipped(skipped []string) {
	fmt.Print(formatSkipped(skipped))
}

func pluralize(noun string, count int) string {
	if count == 1 {
		return noun
	}
	return noun + "s"
}
