package search

import "errors"

// ErrNoPreferredReachable is returned when the problem declares preferred
// behaviors but D_max is empty: none of them survives even the
// maximal-authority solve, so there is nothing for the search to weaken
// into brackets (§8 scenario 3). A problem with no preferred behaviors at
// all is not an error: the search runs the single empty bracket.
var ErrNoPreferredReachable = errors.New("search: no preferred behavior is enforceable under the maximal authority assignment")
