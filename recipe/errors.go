package recipe

import "errors"

// ErrNoLabel reports a slot lookup against a table with no entry for it.
var ErrNoLabel = errors.New("recipe: no label for slot")
