// Package profile merges structured intake data with classified knowledge
// fragments into a weighted client profile.
package profile

import (
	"regexp"
	"strings"
)

// agePattern matches mentions like "Sarah, 28 years old" in demographic fragments
var agePattern = regexp.MustCompile(`(?i)\b\w+,\s*(\d{1,3})\s*years?\s*old\b`)

// pricePattern matches dollar amounts like "$1,850" or "$2100/month"
var pricePattern = regexp.MustCompile(`\$\d{1,3}(?:,\d{3})*(?:\.\d{2})?`)

// Age bracket labels. Extracted ages map into exactly one of these four.
const (
	ageBracketYoungAdult = "18-24"
	ageBracketEarly      = "25-34"
	ageBracketMid        = "35-54"
	ageBracketSenior     = "55+"
)

// incomeTitles maps job-title substrings found in fragments to income-level labels
var incomeTitles = []struct {
	title string
	level string
}{
	{"executive", "High income"},
	{"physician", "High income"},
	{"doctor", "High income"},
	{"attorney", "High income"},
	{"engineer", "Upper-middle income"},
	{"manager", "Upper-middle income"},
	{"nurse", "Middle income"},
	{"teacher", "Middle income"},
	{"technician", "Middle income"},
	{"student", "Entry-level income"},
	{"server", "Entry-level income"},
	{"retail", "Entry-level income"},
}

// amenityKeywords maps keyword substrings to canonical amenity names
var amenityKeywords = []struct {
	keyword  string
	amenity  string
}{
	{"pool", "Swimming Pool"},
	{"fitness", "Fitness Center"},
	{"gym", "Fitness Center"},
	{"clubhouse", "Resident Clubhouse"},
	{"dog park", "Dog Park"},
	{"pet", "Pet-Friendly Community"},
	{"garage", "Covered Parking"},
	{"parking", "Covered Parking"},
	{"washer", "In-Unit Laundry"},
	{"laundry", "In-Unit Laundry"},
	{"balcony", "Private Balcony"},
	{"granite", "Granite Countertops"},
	{"stainless", "Stainless Steel Appliances"},
	{"hardwood", "Hardwood Floors"},
	{"rooftop", "Rooftop Lounge"},
	{"concierge", "Concierge Service"},
}

// toneKeywords maps descriptive words in brand-voice fragments to tone labels
var toneKeywords = []struct {
	keyword string
	tone    string
}{
	{"luxur", "Upscale"},
	{"upscale", "Upscale"},
	{"sophisticated", "Sophisticated"},
	{"elegant", "Sophisticated"},
	{"warm", "Warm"},
	{"welcoming", "Warm"},
	{"friendly", "Friendly"},
	{"casual", "Casual"},
	{"playful", "Playful"},
	{"professional", "Professional"},
	{"modern", "Modern"},
}

// ExtractAgeRanges scans text for age mentions and maps each into one of the
// four age-bracket labels. Returns deduplicated brackets in first-seen order.
func ExtractAgeRanges(text string) []string {
	matches := agePattern.FindAllStringSubmatch(text, -1)
	var brackets []string
	seen := make(map[string]bool)
	for _, m := range matches {
		bracket := bracketForAge(m[1])
		if bracket != "" && !seen[bracket] {
			seen[bracket] = true
			brackets = append(brackets, bracket)
		}
	}
	return brackets
}

// bracketForAge maps a numeric age string to its bracket label
func bracketForAge(ageStr string) string {
	age := 0
	for _, r := range ageStr {
		age = age*10 + int(r-'0')
	}
	switch {
	case age < 18:
		return ""
	case age <= 24:
		return ageBracketYoungAdult
	case age <= 34:
		return ageBracketEarly
	case age <= 54:
		return ageBracketMid
	default:
		return ageBracketSenior
	}
}

// ExtractIncomeLevels maps job-title substrings in text to income-level labels
func ExtractIncomeLevels(text string) []string {
	lowered := strings.ToLower(text)
	var levels []string
	seen := make(map[string]bool)
	for _, entry := range incomeTitles {
		if strings.Contains(lowered, entry.title) && !seen[entry.level] {
			seen[entry.level] = true
			levels = append(levels, entry.level)
		}
	}
	return levels
}

// ExtractAmenities maps amenity keywords in text to canonical amenity names
func ExtractAmenities(text string) []string {
	lowered := strings.ToLower(text)
	var amenities []string
	seen := make(map[string]bool)
	for _, entry := range amenityKeywords {
		if strings.Contains(lowered, entry.keyword) && !seen[entry.amenity] {
			seen[entry.amenity] = true
			amenities = append(amenities, entry.amenity)
		}
	}
	return amenities
}

// ExtractTones maps descriptive brand-voice words in text to tone labels
func ExtractTones(text string) []string {
	lowered := strings.ToLower(text)
	var tones []string
	seen := make(map[string]bool)
	for _, entry := range toneKeywords {
		if strings.Contains(lowered, entry.keyword) && !seen[entry.tone] {
			seen[entry.tone] = true
			tones = append(tones, entry.tone)
		}
	}
	return tones
}

// ExtractPricePoint returns the first dollar amount mentioned in text,
// or empty string if none is present.
func ExtractPricePoint(text string) string {
	return pricePattern.FindString(text)
}
