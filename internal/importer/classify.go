package importer

import "strings"

// Kind is the resolved transport of an incoming URI. Classification happens
// once, up front, so the dispatch order and the content-ref fallback are
// explicit instead of buried in string-prefix checks.
type Kind int

const (
	KindUnknown Kind = iota

	// KindAppScheme is a deep link in the app's custom scheme, carrying the
	// real location in its url query parameter.
	KindAppScheme

	// KindRemoteURL is a direct http(s) location of a preset file.
	KindRemoteURL

	// KindContentRef is a platform-opaque content reference that must be
	// copied out before it can be read.
	KindContentRef

	// KindFilePath is a file:// URI or a bare path ending in the preset
	// file extension.
	KindFilePath
)

func (k Kind) String() string {
	switch k {
	case KindAppScheme:
		return "app-scheme"
	case KindRemoteURL:
		return "remote-url"
	case KindContentRef:
		return "content-ref"
	case KindFilePath:
		return "file-path"
	default:
		return "unknown"
	}
}

// Source is a classified incoming URI.
type Source struct {
	Kind Kind
	Raw  string
}

// Classify resolves uri to a Source. scheme is the app's deep-link scheme
// without the "://" (ex: "spiewnik"). Priority follows the original handler:
// app scheme first, then content references, then file paths; direct http(s)
// locations are accepted as well.
func Classify(uri, scheme string) Source {
	switch {
	case strings.HasPrefix(uri, scheme+"://"):
		return Source{Kind: KindAppScheme, Raw: uri}
	case strings.HasPrefix(uri, "content://"):
		return Source{Kind: KindContentRef, Raw: uri}
	case strings.HasPrefix(uri, "http://"), strings.HasPrefix(uri, "https://"):
		return Source{Kind: KindRemoteURL, Raw: uri}
	case strings.HasPrefix(uri, "file://"), strings.HasSuffix(uri, fileExtension):
		return Source{Kind: KindFilePath, Raw: uri}
	default:
		return Source{Kind: KindUnknown, Raw: uri}
	}
}
