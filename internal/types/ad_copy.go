//nolint:revive // types is a standard Go package name pattern
package types

// Expected cardinality of the text-generation payload. Any other count is a
// hard failure of the generation stage.
const (
	ExpectedHeadlineCount    = 15
	ExpectedDescriptionCount = 4
)

// AdCopy is the parsed payload returned by the text-generation collaborator
type AdCopy struct {
	Headlines    []string `json:"headlines"`
	Descriptions []string `json:"descriptions"`
	Keywords     []string `json:"keywords,omitempty"`
	FinalURLPath string   `json:"final_url_path,omitempty"`
}
