package cache

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// bypassParam is the request flag that skips cache lookup. It is excluded
// from key material so a bypassed request maps to the same key as a cached
// one and the results stay interchangeable.
const bypassParam = "no_cache"

// DeriveKey builds a deterministic cache key from a namespace, positional
// arguments, and named parameters. Named parameters are sorted by name, so
// argument order never changes the key. The assembled material is hashed
// with MD5 for a fixed-width, restart-stable digest; collision resistance,
// not secrecy, is what the key needs.
func DeriveKey(namespace string, args []any, params map[string]any) string {
	parts := make([]string, 0, 1+len(args)+len(params))
	parts = append(parts, namespace)
	for _, arg := range args {
		parts = append(parts, fmt.Sprint(arg))
	}

	names := make([]string, 0, len(params))
	for name := range params {
		if name == bypassParam {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s:%v", name, params[name]))
	}

	sum := md5.Sum([]byte(strings.Join(parts, ":")))
	return namespace + ":" + hex.EncodeToString(sum[:])
}
