package profile

// Fixed fallback values applied to list fields left empty after both merge
// phases. Downstream consumers rely on these fields being non-empty.
var (
	defaultTone        = []string{"Professional", "Friendly"}
	defaultPersonality = []string{"Trustworthy", "Attentive"}
	defaultCommStyle   = []string{"Clear", "Direct"}
	defaultMotivations = []string{"Quality of life", "Convenience"}
	defaultLifestyle   = []string{"Active", "Community-oriented"}
)

// defaultPrimaryAudience fills the scalar audience field when neither intake
// nor fragments name one.
const defaultPrimaryAudience = "Prospective renters"

// applyDefaults fills still-empty common fields so no downstream consumer
// needs to null-check them. Runs after completeness scoring so defaults do
// not inflate the score.
func applyDefaults(p *profileDraft) {
	if len(p.profile.BrandVoice.Tone) == 0 {
		p.profile.BrandVoice.Tone = append([]string(nil), defaultTone...)
	}
	if len(p.profile.BrandVoice.Personality) == 0 {
		p.profile.BrandVoice.Personality = append([]string(nil), defaultPersonality...)
	}
	if len(p.profile.BrandVoice.CommunicationStyle) == 0 {
		p.profile.BrandVoice.CommunicationStyle = append([]string(nil), defaultCommStyle...)
	}
	if p.profile.Demographics.PrimaryAudience == "" {
		p.profile.Demographics.PrimaryAudience = defaultPrimaryAudience
	}
	if len(p.profile.Demographics.Motivations) == 0 {
		p.profile.Demographics.Motivations = append([]string(nil), defaultMotivations...)
	}
	if len(p.profile.Demographics.Lifestyle) == 0 {
		p.profile.Demographics.Lifestyle = append([]string(nil), defaultLifestyle...)
	}
}
