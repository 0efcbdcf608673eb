package urlbuilder

import "errors"

// ErrUnresolvableBase is returned when no resolution rule produced a base
// origin and the supplied path is not itself an absolute URL. It is the only
// failure mode of URL construction; badly-shaped candidates never error on
// their own, they simply fail to match a rule.
var ErrUnresolvableBase = errors.New("unresolvable base URL")
