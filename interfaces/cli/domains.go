package cli

import (
	"sort"

	"github.com/go-htn/htngo/domain/catalog"
	"github.com/go-htn/htngo/example/blocksworld"
)

// builtinDomains maps a scenario's domain: name to a constructor for the
// compiled-in *catalog.Domain it names (spec.md §6: the library never
// parses or loads caller behavior, only data — a scenario file picks
// among domains already linked into the binary).
var builtinDomains = map[string]func() *catalog.Domain{
	"blocksworld": func() *catalog.Domain {
		return blocksworld.WithSplitMultigoal(blocksworld.WithMoveMethod(blocksworld.New()))
	},
	"blocksworld-backtracking": func() *catalog.Domain {
		dom := blocksworld.New()
		dom = blocksworld.WithBadMoveMethod(dom)
		dom = blocksworld.WithMoveMethod(dom)
		return blocksworld.WithSplitMultigoal(dom)
	},
	"blocksworld-buggy": func() *catalog.Domain {
		dom := blocksworld.New()
		dom = blocksworld.WithBuggyMoveMethod(dom)
		return blocksworld.WithSplitMultigoal(dom)
	},
}

// lookupDomain builds a fresh named built-in domain, or reports that name
// isn't registered.
func lookupDomain(name string) (*catalog.Domain, bool) {
	ctor, ok := builtinDomains[name]
	if !ok {
		return nil, false
	}
	return ctor(), true
}

// domainNames returns the registered built-in domain names, sorted for
// stable CLI output.
func domainNames() []string {
	names := make([]string, 0, len(builtinDomains))
	for name := range builtinDomains {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
