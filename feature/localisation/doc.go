// Package localisation implements the display text lookup used by every loader.
//
// Definition files reference display text with keys such as
// "@item_NameKLWE_LaserRepeater_S3". Load reads one language's global.ini
// (key=value lines) into an immutable Service.
//
// # Lookup contract
//
// Lookup never fails: an unknown key is returned unchanged and counted. The
// counter (Misses) is the only failure signal, so callers never branch on a
// lookup result. Text only looks up values that start with '@' and passes
// literal text through untouched.
//
// # Errors
//
// Load returns a *LoadError when the language file is absent or malformed.
// LoadError matches content.ErrFatalConfig: a run without display text is
// aborted before any other stage starts.
package localisation
