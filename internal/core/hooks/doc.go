// Package hooks provides the extension points services expose to add behavior without
// editing them: constraints checked when fields of a record change, and ordered handler
// chains where the first handler that claims a request answers it.
package hooks
