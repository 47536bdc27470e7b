package core

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strings"
	"time"
)

// TTL tiers. Collaborators enforce expiry; the engine owns the policy so
// every backend applies the same one.
const (
	ContentTTLDefault = 24 * time.Hour
	ContentTTLSocial  = 1 * time.Hour
	ContentTTLNews    = 6 * time.Hour

	AuthorTTLDefault     = 6 * time.Hour
	AuthorTTLHighQuality = 7 * 24 * time.Hour
	AuthorTTLSocial      = 12 * time.Hour
)

var socialHosts = map[string]struct{}{
	"twitter.com":   {},
	"x.com":         {},
	"facebook.com":  {},
	"instagram.com": {},
	"reddit.com":    {},
	"tiktok.com":    {},
	"youtube.com":   {},
	"threads.net":   {},
}

var newsHosts = map[string]struct{}{
	"cnn.com":         {},
	"foxnews.com":     {},
	"nytimes.com":     {},
	"washingtonpost.com": {},
	"bbc.co.uk":       {},
	"bbc.com":         {},
	"reuters.com":     {},
	"apnews.com":      {},
	"theguardian.com": {},
	"npr.org":         {},
}

// ContentCacheKey derives the content cache key: SHA-256 hex of the
// canonical URL. Unparseable URLs are hashed as-is so the key is still
// stable.
func ContentCacheKey(rawURL string) string {
	sum := sha256.Sum256([]byte(CanonicalURL(rawURL)))
	return hex.EncodeToString(sum[:])
}

// CanonicalURL lower-cases the scheme and host and drops the fragment.
func CanonicalURL(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" {
		return strings.TrimSpace(rawURL)
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	return u.String()
}

// AuthorCacheKey derives the author cache key, the literal
// platform:identifier string.
func AuthorCacheKey(platform, identifier string) string {
	return strings.ToLower(platform) + ":" + identifier
}

// HostOf extracts the lower-cased host from a URL, without port.
func HostOf(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}

// ContentTTL picks the freshness tier for a content entry from the URL
// shape: social-media domains churn fastest, news next, everything else
// gets the default.
func ContentTTL(rawURL string) time.Duration {
	host := strings.TrimPrefix(HostOf(rawURL), "www.")
	if host == "" {
		return ContentTTLDefault
	}
	if _, ok := socialHosts[host]; ok {
		return ContentTTLSocial
	}
	if _, ok := newsHosts[host]; ok {
		return ContentTTLNews
	}
	return ContentTTLDefault
}

// AuthorTTL picks the freshness tier for an author entry. High-quality
// classifications are stable enough to keep for a week; social-platform
// identities sit in between.
func AuthorTTL(quality DataQuality, platform string) time.Duration {
	if quality == QualityHigh {
		return AuthorTTLHighQuality
	}
	if _, ok := socialHosts[strings.ToLower(platform)]; ok {
		return AuthorTTLSocial
	}
	switch strings.ToLower(platform) {
	case "twitter", "x", "facebook", "instagram", "reddit", "tiktok", "youtube":
		return AuthorTTLSocial
	}
	return AuthorTTLDefault
}
