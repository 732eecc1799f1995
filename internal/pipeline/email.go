package pipeline

import (
	"fmt"
	"strings"
)

// atMarker renders as " at " without a literal "@" in the markup.
const atMarker = "&#32;&#97;t&#32;"

// MaskEmail renders local and domain as "local at domain" using entities,
// so naive harvesters never see an address.
func MaskEmail(local, domain string) string {
	return safeAddressPart(local) + atMarker + safeAddressPart(domain)
}

// LinkEmail renders a mailto anchor whose subject names the PEP and whose
// visible text is the masked address.
func LinkEmail(local, domain, pep string) string {
	return fmt.Sprintf(`<a href="mailto:%s&#64;%s?subject=PEP%%20%s">%s</a>`,
		safeAddressPart(local), safeAddressPart(domain), escapeAttr(pep), MaskEmail(local, domain))
}

// safeAddressPart escapes s and hides any remaining "@".
func safeAddressPart(s string) string {
	return hideAt(escapeAttr(s))
}

// hideAt replaces "@" in already escaped markup with its entity.
func hideAt(s string) string {
	return strings.ReplaceAll(s, "@", "&#64;")
}

// splitAddress splits an address at its first "@".
func splitAddress(address string) (local, domain string) {
	local, domain, _ = strings.Cut(address, "@")
	return local, domain
}

// EmailPolicy decides whether an address is masked or linked.
type EmailPolicy struct {
	unmasked map[string]struct{}
}

// NewEmailPolicy creates a policy linking the given addresses and masking
// every other one. Comparison is case-insensitive.
func NewEmailPolicy(unmasked []string) *EmailPolicy {
	p := &EmailPolicy{unmasked: make(map[string]struct{}, len(unmasked))}
	for _, a := range unmasked {
		p.unmasked[strings.ToLower(strings.TrimSpace(a))] = struct{}{}
	}
	return p
}

// IsUnmasked reports whether address is on the allow-list.
func (p *EmailPolicy) IsUnmasked(address string) bool {
	_, ok := p.unmasked[strings.ToLower(address)]
	return ok
}

// Render returns a mailto link for allow-listed addresses and the masked
// form for everything else.
func (p *EmailPolicy) Render(address, pep string) string {
	local, domain := splitAddress(address)
	if p.IsUnmasked(address) {
		return LinkEmail(local, domain, pep)
	}
	return MaskEmail(local, domain)
}

// Link always returns a mailto link, as used for Discussions-To.
func (p *EmailPolicy) Link(address, pep string) string {
	local, domain := splitAddress(address)
	return LinkEmail(local, domain, pep)
}
