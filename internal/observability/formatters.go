// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/maya/adcopy-agent/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintClassifiedFragments outputs per-category fragment counts and the top
// fragment of each non-empty category.
func (p *Printer) PrintClassifiedFragments(frags *types.CategorizedFragments) {
	if frags == nil || frags.Total() == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total fragments: %d\n\n", frags.Total()))

	categories := append(append([]types.Category{}, types.ScoredCategories...), types.CategoryGeneral)
	for _, category := range categories {
		bucket := frags.ByCategory(category)
		if len(bucket) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s (%d):\n", category, len(bucket)))
		top := bucket[0]
		text := top.Content
		if len(text) > 44 {
			text = text[:41] + "..."
		}
		sb.WriteString(fmt.Sprintf("  • %s\n", text))
		sb.WriteString(fmt.Sprintf("    sim %.2f, conf %.2f\n", top.Similarity, top.Confidence))
	}

	p.printBox("CLASSIFIED FRAGMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintClientProfile outputs a human-readable summary of the synthesized profile.
func (p *Printer) PrintClientProfile(profile *types.ClientProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	if profile.Property.CommunityName != "" {
		sb.WriteString(fmt.Sprintf("Community: %s\n", profile.Property.CommunityName))
	}
	sb.WriteString(fmt.Sprintf("Completeness: %d/100\n", profile.CompletenessScore))
	sb.WriteString(fmt.Sprintf("Intake data: %v, Vector data: %v\n\n", profile.HasIntakeData, profile.HasVectorData))

	if len(profile.BrandVoice.Tone) > 0 {
		sb.WriteString(fmt.Sprintf("Tone: %s\n", strings.Join(profile.BrandVoice.Tone, ", ")))
	}
	if profile.Demographics.PrimaryAudience != "" {
		sb.WriteString(fmt.Sprintf("Audience: %s\n", profile.Demographics.PrimaryAudience))
	}
	if len(profile.Property.Amenities) > 0 {
		count := min(len(profile.Property.Amenities), maxItemsToShow)
		sb.WriteString("Amenities:\n")
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.Property.Amenities[i]))
		}
		if len(profile.Property.Amenities) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Property.Amenities)-maxItemsToShow))
		}
	}

	p.printBox("CLIENT PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCampaignContext outputs the six context sections with their scores.
func (p *Printer) PrintCampaignContext(campaignCtx *types.CampaignContext) {
	if campaignCtx == nil {
		return
	}

	names := []string{
		"Brand Voice", "Target Audience", "Property Highlights",
		"Location Benefits", "Competitive Advantages", "Pricing Strategy",
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall: %d (%s)\n\n", campaignCtx.OverallRelevanceScore, campaignCtx.ContextStrength))

	for i, section := range campaignCtx.Sections() {
		sb.WriteString(fmt.Sprintf("%-22s %3d  %-6s %s\n",
			names[i], section.RelevanceScore, section.Priority, section.DataSource))
	}

	if len(campaignCtx.CampaignInstructions) > 0 {
		sb.WriteString("\nInstructions:\n")
		for _, inst := range campaignCtx.CampaignInstructions {
			text := inst
			if len(text) > 50 {
				text = text[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", text))
		}
	}

	p.printBox("CAMPAIGN CONTEXT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintConstraintReport outputs the validation and repair outcome per string.
func (p *Printer) PrintConstraintReport(report *types.ConstraintReport) {
	if report == nil {
		return
	}

	var sb strings.Builder

	repaired := 0
	bestEffort := 0
	for _, res := range report.Headlines {
		if res.Repaired {
			repaired++
		}
		if res.BestEffort {
			bestEffort++
		}
	}
	for _, res := range report.Descriptions {
		if res.Repaired {
			repaired++
		}
		if res.BestEffort {
			bestEffort++
		}
	}

	sb.WriteString(fmt.Sprintf("Headlines:    %d\n", len(report.Headlines)))
	sb.WriteString(fmt.Sprintf("Descriptions: %d\n", len(report.Descriptions)))
	sb.WriteString(fmt.Sprintf("Repaired:     %d\n", repaired))
	if bestEffort > 0 {
		sb.WriteString(fmt.Sprintf("Best effort:  %d\n", bestEffort))
	}

	shown := 0
	for _, res := range report.Headlines {
		if !res.Repaired || shown >= maxItemsToShow {
			continue
		}
		sb.WriteString(fmt.Sprintf("\n%q\n  -> %q (%d)\n", res.Original, res.Final, res.Length))
		shown++
	}

	p.printBox("CONSTRAINT REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAdCopy outputs the final generated ad copy.
func (p *Printer) PrintAdCopy(adCopy *types.AdCopy) {
	if adCopy == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString("Headlines:\n")
	for _, h := range adCopy.Headlines {
		sb.WriteString(fmt.Sprintf("  %2d  %s\n", len(h), h))
	}
	sb.WriteString("\nDescriptions:\n")
	for _, d := range adCopy.Descriptions {
		text := d
		if len(text) > 48 {
			text = text[:45] + "..."
		}
		sb.WriteString(fmt.Sprintf("  %2d  %s\n", len(d), text))
	}
	if adCopy.FinalURLPath != "" {
		sb.WriteString(fmt.Sprintf("\nURL path: %s\n", adCopy.FinalURLPath))
	}

	p.printBox("GENERATED AD COPY", strings.TrimSuffix(sb.String(), "\n"))
}
