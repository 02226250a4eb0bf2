// Package export serializes resume and portfolio state into downloadable
// artifacts: a word-processor document, a self-contained HTML page, a
// printable PDF, and a shareable URL-encoded blob.
package export

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/jonathan/resume-booster/internal/schemas"
	"github.com/jonathan/resume-booster/internal/types"
)

// Share-link parameter names. Resume state travels in a query parameter,
// portfolio state in the URL fragment; both carry the same encoding.
const (
	ResumeParam       = "r"
	PortfolioFragment = "p"
)

// EncodeState serializes v to JSON and base64-encodes the UTF-8 bytes.
// This matches what the original web client produced, so links cut both
// ways.
func EncodeState(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode state: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// MakeShareURL embeds the resume state as the `r` query parameter on the
// given page URL.
func MakeShareURL(pageURL string, data types.ResumeData) (string, error) {
	blob, err := EncodeState(data)
	if err != nil {
		return "", err
	}
	u, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("invalid page URL: %w", err)
	}
	q := u.Query()
	q.Set(ResumeParam, blob)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// PortfolioShareURL embeds the portfolio state as a `p=` URL fragment on
// the given page URL.
func PortfolioShareURL(pageURL string, state types.PortfolioState) (string, error) {
	blob, err := EncodeState(state)
	if err != nil {
		return "", err
	}
	u, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("invalid page URL: %w", err)
	}
	u.Fragment = PortfolioFragment + "=" + blob
	return u.String(), nil
}

// DecodeResume decodes a share-link parameter back into resume state. A
// missing, corrupt, or structurally invalid blob silently falls back to
// the empty template: the decoder never fails.
func DecodeResume(param string) (types.ResumeData, bool) {
	doc, ok := decodeBlob(param)
	if !ok || !schemas.ValidResume(doc) {
		return types.DefaultResume(), false
	}
	data := types.DefaultResume()
	if err := json.Unmarshal(doc, &data); err != nil {
		return types.DefaultResume(), false
	}
	return data, true
}

// DecodePortfolio is the portfolio counterpart of DecodeResume.
func DecodePortfolio(param string) (types.PortfolioState, bool) {
	doc, ok := decodeBlob(param)
	if !ok || !schemas.ValidPortfolio(doc) {
		return types.DefaultPortfolio(), false
	}
	state := types.DefaultPortfolio()
	if err := json.Unmarshal(doc, &state); err != nil {
		return types.DefaultPortfolio(), false
	}
	state.Template = state.Template.OrDefault()
	return state, true
}

// ResumeFromURL extracts and decodes the `r` parameter from a full URL.
func ResumeFromURL(raw string) (types.ResumeData, bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return types.DefaultResume(), false
	}
	return DecodeResume(u.Query().Get(ResumeParam))
}

// PortfolioFromURL extracts and decodes the `p=` fragment from a full URL.
func PortfolioFromURL(raw string) (types.PortfolioState, bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return types.DefaultPortfolio(), false
	}
	frag := u.Fragment
	if !strings.HasPrefix(frag, PortfolioFragment+"=") {
		return types.DefaultPortfolio(), false
	}
	return DecodePortfolio(strings.TrimPrefix(frag, PortfolioFragment+"="))
}

// decodeBlob base64-decodes a share parameter, accepting both padded and
// unpadded standard encoding since fragments survive copy-paste poorly.
func decodeBlob(param string) ([]byte, bool) {
	param = strings.TrimSpace(param)
	if param == "" {
		return nil, false
	}
	if doc, err := base64.StdEncoding.DecodeString(param); err == nil {
		return doc, true
	}
	doc, err := base64.RawStdEncoding.DecodeString(strings.TrimRight(param, "="))
	if err != nil {
		return nil, false
	}
	return doc, true
}
