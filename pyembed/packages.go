package pyembed

import (
	"iter"
	"strings"
)

// DerivePackages computes the set of package names implied by the given
// module names.
//
// A name X is a package when some name begins with X followed by a dot:
// registering "a.b.c" implies packages "a" and "a.b". The result is a set
// union over all sequences, so repeated names are harmless and input order
// does not matter.
func DerivePackages(seqs ...iter.Seq[string]) map[string]struct{} {
	packages := make(map[string]struct{})
	for _, seq := range seqs {
		for name := range seq {
			for {
				dot := strings.LastIndexByte(name, '.')
				if dot < 0 {
					break
				}
				name = name[:dot]
				packages[name] = struct{}{}
			}
		}
	}
	return packages
}
