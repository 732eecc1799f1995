package pipeline

// Settings holds the process-wide constants used while rendering.
// URL fields are fmt templates taking a single integer argument.
type Settings struct {
	RFCURL         string   // e.g. "http://www.faqs.org/rfcs/rfc%d.html"
	PEPURL         string   // e.g. "pep-%04d.html"
	SourceURL      string   // e.g. "pep-%04d.txt"
	RevisionURL    string   // revision history of a PEP source file
	ContentTypeRef int      // PEP describing the Content-Type header
	HomeURL        string   // target of the banner and "Home" link
	IndexURL       string   // target of the "PEP Index" link
	Stylesheet     string   // href of the page stylesheet
	BannerURL      string   // banner image template, one %d (the image index)
	BannerCount    int      // banner index is chosen in [0, BannerCount)
	DateLayout     string   // Go time layout for the last-modified fallback
	UnmaskedEmails []string // addresses always rendered as mailto links
}

// Default settings values.
const (
	DefaultRFCURL      = "http://www.faqs.org/rfcs/rfc%d.html"
	DefaultPEPURL      = "pep-%04d.html"
	DefaultSourceURL   = "pep-%04d.txt"
	DefaultRevisionURL = "http://cvs.sourceforge.net/cgi-bin/viewcvs.cgi/python/python/nondist/peps/pep-%04d.txt"
	DefaultHomeURL     = "../"
	DefaultIndexURL    = "."
	DefaultStylesheet  = "style.css"
	DefaultBannerURL   = "../pics/PyBanner%03d.gif"
	DefaultBannerCount = 64
	DefaultDateLayout  = "02-Jan-2006"

	// contentTypePEP documents the Content-Type header field.
	contentTypePEP = 9
)

// DefaultUnmaskedEmails lists the project addresses that are never masked.
var DefaultUnmaskedEmails = []string{
	"peps@python.org",
	"python-list@python.org",
	"python-dev@python.org",
}

// DefaultSettings returns the settings used by python.org's PEP pages.
func DefaultSettings() Settings {
	return Settings{
		RFCURL:         DefaultRFCURL,
		PEPURL:         DefaultPEPURL,
		SourceURL:      DefaultSourceURL,
		RevisionURL:    DefaultRevisionURL,
		ContentTypeRef: contentTypePEP,
		HomeURL:        DefaultHomeURL,
		IndexURL:       DefaultIndexURL,
		Stylesheet:     DefaultStylesheet,
		BannerURL:      DefaultBannerURL,
		BannerCount:    DefaultBannerCount,
		DateLayout:     DefaultDateLayout,
		UnmaskedEmails: append([]string(nil), DefaultUnmaskedEmails...),
	}
}
