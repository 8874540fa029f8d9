// Package codecs is the registry of every RLE variant in this module.
package codecs

import (
	"fmt"
	"sort"

	"github.com/dargueta/rlezoo"
	"github.com/dargueta/rlezoo/codecs/goldbox"
	"github.com/dargueta/rlezoo/codecs/icns"
	"github.com/dargueta/rlezoo/codecs/packbits"
	"github.com/dargueta/rlezoo/codecs/pcx"
)

var builtinCodecs = map[string]rlezoo.Codec{
	"goldbox":  goldbox.New(),
	"icns":     icns.New(),
	"packbits": packbits.New(),
	"pcx":      pcx.New(),
}

// Get returns the codec with the given name, or an error wrapping
// [rlezoo.ErrUnknownVariant].
func Get(name string) (rlezoo.Codec, error) {
	if codec, ok := builtinCodecs[name]; ok {
		return codec, nil
	}
	return nil, rlezoo.ErrUnknownVariant.WithMessage(
		fmt.Sprintf("%q (available: %v)", name, Names()))
}

// Names returns the names of all variants in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtinCodecs))
	for name := range builtinCodecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every codec, sorted by name.
func All() []rlezoo.Codec {
	names := Names()
	result := make([]rlezoo.Codec, len(names))
	for i, name := range names {
		result[i] = builtinCodecs[name]
	}
	return result
}
