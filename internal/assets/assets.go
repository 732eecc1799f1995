package assets

// DefaultStyleName is the name of the built-in stylesheet matching the
// classic python.org PEP pages.
const DefaultStyleName = "pep"
